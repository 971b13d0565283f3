package view

// ViewError is returned by Handle implementations
type ViewError string

// Error implements the error interface
func (e ViewError) Error() string {
	return string(e)
}

const (
	ErrElementNotFound ViewError = "element not found"
	ErrNotGrouped      ViewError = "element does not belong to a group"
	ErrDuplicateID     ViewError = "duplicate element id"
	ErrEmptyID         ViewError = "element id cannot be empty"
)
