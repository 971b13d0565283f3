package loader

// LoaderError is a custom error type for resource loading
type LoaderError string

// Error implements the error interface
func (e LoaderError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig    LoaderError = "config cannot be nil"
	ErrEmptyBaseURL LoaderError = "base URL cannot be empty"
	ErrNilRenderer  LoaderError = "renderer cannot be nil"
	ErrEmptyPayload LoaderError = "response body decoded to null"
	ErrInvalidStats LoaderError = "stats counts cannot be negative"
)
