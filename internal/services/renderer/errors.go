package renderer

// RendererError is a custom error type for rendering
type RendererError string

// Error implements the error interface
func (e RendererError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig   RendererError = "config cannot be nil"
	ErrNilView     RendererError = "view cannot be nil"
	ErrNilAnimator RendererError = "animator cannot be nil"
	ErrNilInput    RendererError = "input cannot be nil"
	ErrNilStats    RendererError = "stats cannot be nil"
)
