package portal

// PortalError is a custom error type for session assembly
type PortalError string

// Error implements the error interface
func (e PortalError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig     PortalError = "config cannot be nil"
	ErrEmptyBaseURL  PortalError = "API base URL cannot be empty"
	ErrNilAuth       PortalError = "auth client cannot be nil"
	ErrNilTokens     PortalError = "token repository cannot be nil"
	ErrNilScheduler  PortalError = "scheduler cannot be nil"
	ErrNilUUID       PortalError = "UUID generator cannot be nil"
	ErrNilDocument   PortalError = "document cannot be nil"
	ErrNilLoader     PortalError = "loader cannot be nil"
	ErrNilController PortalError = "controller cannot be nil"
)
