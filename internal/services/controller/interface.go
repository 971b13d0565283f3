package controller

import (
	"context"

	"github.com/KirkDiggler/gameportal/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_controller.go github.com/KirkDiggler/gameportal/internal/services/controller Controller

// Controller reacts to visitor interactions on the portal page
type Controller interface {
	// SelectFilter activates a category filter and shows only matching game cards
	SelectFilter(ctx context.Context, input *SelectFilterInput) (*SelectFilterOutput, error)

	// Navigate activates a nav link and scrolls to its section
	Navigate(ctx context.Context, input *NavigateInput) error

	// ScrollToGames scrolls to the games section
	ScrollToGames(ctx context.Context) error

	// OpenModal shows a dialog
	OpenModal(ctx context.Context, input *ModalInput) error

	// CloseModal hides a dialog
	CloseModal(ctx context.Context, input *ModalInput) error

	// ModalState reports whether a dialog is open
	ModalState(ctx context.Context, input *ModalInput) (models.ModalState, error)

	// HandleClick closes an open dialog when its backdrop is clicked
	HandleClick(ctx context.Context, input *HandleClickInput) (*HandleClickOutput, error)

	// SubmitLogin posts the login form and reports the outcome
	SubmitLogin(ctx context.Context, input *SubmitInput) (*SubmitOutput, error)

	// SubmitSignup posts the signup form and reports the outcome
	SubmitSignup(ctx context.Context, input *SubmitInput) (*SubmitOutput, error)

	// PlayGame announces a game launch
	PlayGame(ctx context.Context, input *PlayGameInput) error
}
