package signup

// SignupError is a custom error type for the signup validator
type SignupError string

// Error implements the error interface
func (e SignupError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilInput SignupError = "input cannot be nil"
)
