package portal

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_factory.go github.com/KirkDiggler/gameportal/internal/services/portal Factory

// Factory assembles the page state and services for one visitor
type Factory interface {
	// NewSession creates a session with a fresh document; nothing is loaded yet
	NewSession(ctx context.Context, input *NewSessionInput) (*Session, error)
}
