package auth

import (
	"context"

	"github.com/KirkDiggler/gameportal/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_client.go github.com/KirkDiggler/gameportal/internal/services/auth Client

// Client submits the login and signup forms to their endpoints
type Client interface {
	// Login posts the login form fields
	Login(ctx context.Context, input *SubmitInput) (*models.AuthResponse, error)

	// Signup posts the signup form fields
	Signup(ctx context.Context, input *SubmitInput) (*models.AuthResponse, error)
}
