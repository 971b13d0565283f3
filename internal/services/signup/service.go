package signup

import (
	"fmt"
	"net/http"
	"net/mail"
	"strings"
)

// specialChars escapes the five HTML special characters with the entities
// htmlspecialchars produces
var specialChars = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#039;",
	"<", "&lt;",
	">", "&gt;",
)

// service implements the Validator interface
type service struct{}

// New creates a new signup validator
func New() *service {
	return &service{}
}

// Validate applies the rules in order and stops at the first that fails
func (s *service) Validate(input *ValidateInput) (*ValidateOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Method != http.MethodPost {
		return &ValidateOutput{Message: MessageInvalidMethod}, nil
	}

	name := specialChars.Replace(input.Name)
	email := specialChars.Replace(input.Email)

	if isEmpty(name) || isEmpty(email) || isEmpty(input.Password) || isEmpty(input.ConfirmPassword) {
		return &ValidateOutput{Message: MessageFieldsRequired}, nil
	}

	if !validEmail(email) {
		return &ValidateOutput{Message: MessageInvalidEmail}, nil
	}

	if input.Password != input.ConfirmPassword {
		return &ValidateOutput{Message: MessagePasswordMismatch}, nil
	}

	return &ValidateOutput{
		Valid:   true,
		Message: fmt.Sprintf(messageSuccess, name),
	}, nil
}

// isEmpty reports whether a field is blank; "0" counts as blank
func isEmpty(value string) bool {
	return value == "" || value == "0"
}

// validEmail accepts a bare local@domain address whose domain has a dot
func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Name != "" || addr.Address != email {
		return false
	}

	at := strings.LastIndexByte(email, '@')
	domain := email[at+1:]
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	return !strings.Contains(domain, "..")
}
