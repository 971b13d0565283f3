package token

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/gameportal/internal/repositories/token Repository

// Repository defines the interface for the visitor's string-keyed token store
type Repository interface {
	// SaveToken stores the login token for a session, replacing any previous one
	SaveToken(ctx context.Context, input *SaveTokenInput) error

	// GetToken retrieves the login token for a session
	GetToken(ctx context.Context, input *GetTokenInput) (string, error)

	// DeleteToken forgets a session's token
	DeleteToken(ctx context.Context, input *DeleteTokenInput) error
}
