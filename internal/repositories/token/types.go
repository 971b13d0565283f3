package token

// SaveTokenInput contains parameters for saving a token
type SaveTokenInput struct {
	SessionID string
	Token     string
}

// GetTokenInput contains parameters for retrieving a token
type GetTokenInput struct {
	SessionID string
}

// DeleteTokenInput contains parameters for deleting a token
type DeleteTokenInput struct {
	SessionID string
}
