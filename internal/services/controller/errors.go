package controller

// ControllerError is a custom error type for the interaction controller
type ControllerError string

// Error implements the error interface
func (e ControllerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig      ControllerError = "config cannot be nil"
	ErrNilView        ControllerError = "view cannot be nil"
	ErrNilAuth        ControllerError = "auth client cannot be nil"
	ErrNilTokens      ControllerError = "token repository cannot be nil"
	ErrNilInput       ControllerError = "input cannot be nil"
	ErrEmptyButtonID  ControllerError = "button ID cannot be empty"
	ErrNotFilter      ControllerError = "element is not a filter button"
	ErrEmptyLinkID    ControllerError = "link ID cannot be empty"
	ErrInvalidHref    ControllerError = "link does not target an in-page section"
	ErrInvalidModal   ControllerError = "unknown modal"
	ErrEmptySessionID ControllerError = "session ID cannot be empty"
)
