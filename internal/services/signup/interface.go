package signup

//go:generate mockgen -package=mocks -destination=mocks/mock_validator.go github.com/KirkDiggler/gameportal/internal/services/signup Validator

// Validator checks a signup form submission without storing anything
type Validator interface {
	// Validate returns the plain-text verdict shown to the visitor
	Validate(input *ValidateInput) (*ValidateOutput, error)
}
