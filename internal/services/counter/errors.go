package counter

// CounterError is a custom error type for counter animations
type CounterError string

// Error implements the error interface
func (e CounterError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig       CounterError = "config cannot be nil"
	ErrNilView         CounterError = "view cannot be nil"
	ErrNilScheduler    CounterError = "scheduler cannot be nil"
	ErrNilInput        CounterError = "input cannot be nil"
	ErrEmptyElementID  CounterError = "element ID cannot be empty"
	ErrElementNotFound CounterError = "element not found"
	ErrInvalidTarget   CounterError = "target must be a finite number >= 0"
)
