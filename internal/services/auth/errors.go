package auth

// AuthError is a custom error type for form submission
type AuthError string

// Error implements the error interface
func (e AuthError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig      AuthError = "config cannot be nil"
	ErrEmptyLoginURL  AuthError = "login URL cannot be empty"
	ErrEmptySignupURL AuthError = "signup URL cannot be empty"
	ErrNilInput       AuthError = "input cannot be nil"
)
