package signup

import "net/http"

// Form field names
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
)

// Verdicts
const (
	MessageInvalidMethod    = "Invalid request method."
	MessageFieldsRequired   = "All fields are required."
	MessageInvalidEmail     = "Invalid email format."
	MessagePasswordMismatch = "Passwords do not match."
	messageSuccess          = "Sign up successful! Welcome, %s."
)

// ValidateInput contains a form submission
type ValidateInput struct {
	// Method is the HTTP method the form arrived with
	Method string

	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// ValidateOutput contains the verdict
type ValidateOutput struct {
	Valid   bool
	Message string
}

// FromRequest reads the form fields of a request
func FromRequest(r *http.Request) *ValidateInput {
	input := &ValidateInput{Method: r.Method}
	if r.Method != http.MethodPost {
		return input
	}

	input.Name = r.PostFormValue(FieldName)
	input.Email = r.PostFormValue(FieldEmail)
	input.Password = r.PostFormValue(FieldPassword)
	input.ConfirmPassword = r.PostFormValue(FieldConfirmPassword)
	return input
}
