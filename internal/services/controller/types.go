package controller

import (
	"github.com/KirkDiggler/gameportal/internal/models"
	"github.com/KirkDiggler/gameportal/internal/repositories/token"
	"github.com/KirkDiggler/gameportal/internal/services/auth"
	"github.com/KirkDiggler/gameportal/internal/view"
)

// Visitor notices
const (
	MessageLoginNetworkError  = "Login failed due to network error"
	MessageSignupNetworkError = "Signup failed due to network error"
	messagePlayGame           = "Launching game %d! (This would redirect to the game)"
)

// Config holds configuration for the controller
type Config struct {
	// View is the display surface
	View view.Handle

	// Auth posts the login and signup forms
	Auth auth.Client

	// Tokens stores the login token per session
	Tokens token.Repository

	// GamesContainerID defaults to the games grid
	GamesContainerID string
}

// SelectFilterInput names the clicked filter button
type SelectFilterInput struct {
	ButtonID string
}

// SelectFilterOutput lists the game cards left visible, in display order
type SelectFilterOutput struct {
	Category models.GameCategory
	Shown    []string
}

// NavigateInput names the clicked nav link
type NavigateInput struct {
	LinkID string
}

// ModalInput names a dialog
type ModalInput struct {
	Modal models.Modal
}

// HandleClickInput names the element that received a click
type HandleClickInput struct {
	TargetID string
}

// HandleClickOutput reports the dialog closed by the click, if any
type HandleClickOutput struct {
	Closed models.Modal
}

// SubmitInput contains a form submission
type SubmitInput struct {
	// SessionID keys the stored login token
	SessionID string

	Fields map[string]string
}

// SubmitOutput contains the outcome shown to the visitor
type SubmitOutput struct {
	Success bool
	Message string
}

// PlayGameInput names the game whose play button was clicked
type PlayGameInput struct {
	GameID int
}
