package controller

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/gameportal/internal/models"
	"github.com/KirkDiggler/gameportal/internal/repositories/token"
	"github.com/KirkDiggler/gameportal/internal/services/auth"
	"github.com/KirkDiggler/gameportal/internal/view"
)

// service implements the Controller interface
type service struct {
	view             view.Handle
	auth             auth.Client
	tokens           token.Repository
	gamesContainerID string
}

// New creates a new interaction controller
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.View == nil {
		return nil, ErrNilView
	}
	if cfg.Auth == nil {
		return nil, ErrNilAuth
	}
	if cfg.Tokens == nil {
		return nil, ErrNilTokens
	}

	gamesContainerID := cfg.GamesContainerID
	if gamesContainerID == "" {
		gamesContainerID = view.ElementGamesGrid
	}

	return &service{
		view:             cfg.View,
		auth:             cfg.Auth,
		tokens:           cfg.Tokens,
		gamesContainerID: gamesContainerID,
	}, nil
}

// SelectFilter marks the button active, then shows a card iff its category
// matches the button's or the button is "all"
func (s *service) SelectFilter(ctx context.Context, input *SelectFilterInput) (*SelectFilterOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.ButtonID == "" {
		return nil, ErrEmptyButtonID
	}

	value, err := s.view.Attr(input.ButtonID, view.AttrCategory)
	if err != nil {
		return nil, fmt.Errorf("failed to read filter %s: %w", input.ButtonID, err)
	}
	// every filter button carries a category, "all" included
	if value == "" {
		return nil, ErrNotFilter
	}
	filter := models.GameCategory(value)

	if err := s.view.SetActive(input.ButtonID); err != nil {
		return nil, fmt.Errorf("failed to activate filter %s: %w", input.ButtonID, err)
	}

	cards, err := s.view.Children(s.gamesContainerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list game cards: %w", err)
	}

	output := &SelectFilterOutput{
		Category: filter,
		Shown:    []string{},
	}
	for _, card := range cards {
		if card.ID == "" {
			continue
		}

		show := models.GameCategory(card.Data[view.AttrCategory]).Matches(filter)
		if err := s.view.SetVisible(card.ID, show); err != nil {
			return nil, fmt.Errorf("failed to toggle %s: %w", card.ID, err)
		}
		if show {
			output.Shown = append(output.Shown, card.ID)
		}
	}

	return output, nil
}

// Navigate marks the link active and scrolls to the section its href names
func (s *service) Navigate(ctx context.Context, input *NavigateInput) error {
	if input == nil {
		return ErrNilInput
	}
	if input.LinkID == "" {
		return ErrEmptyLinkID
	}

	href, err := s.view.Attr(input.LinkID, view.AttrHref)
	if err != nil {
		return fmt.Errorf("failed to read link %s: %w", input.LinkID, err)
	}

	target, ok := strings.CutPrefix(href, "#")
	if !ok || target == "" {
		return ErrInvalidHref
	}

	if err := s.view.SetActive(input.LinkID); err != nil {
		return fmt.Errorf("failed to activate link %s: %w", input.LinkID, err)
	}

	return s.view.ScrollTo(target)
}

// ScrollToGames scrolls to the games section
func (s *service) ScrollToGames(ctx context.Context) error {
	return s.view.ScrollTo(view.SectionGames)
}

// OpenModal shows a dialog; opening an open dialog is a no-op
func (s *service) OpenModal(ctx context.Context, input *ModalInput) error {
	return s.setModal(input, true)
}

// CloseModal hides a dialog; closing a closed dialog is a no-op
func (s *service) CloseModal(ctx context.Context, input *ModalInput) error {
	return s.setModal(input, false)
}

func (s *service) setModal(input *ModalInput, visible bool) error {
	if input == nil {
		return ErrNilInput
	}
	if !input.Modal.IsValid() {
		return ErrInvalidModal
	}

	return s.view.SetVisible(input.Modal.ElementID(), visible)
}

// ModalState reports a dialog's visibility
func (s *service) ModalState(ctx context.Context, input *ModalInput) (models.ModalState, error) {
	if input == nil {
		return "", ErrNilInput
	}
	if !input.Modal.IsValid() {
		return "", ErrInvalidModal
	}

	visible, err := s.view.Visible(input.Modal.ElementID())
	if err != nil {
		return "", err
	}
	if visible {
		return models.ModalStateVisible, nil
	}
	return models.ModalStateHidden, nil
}

// HandleClick closes the open dialog whose backdrop is the click target
func (s *service) HandleClick(ctx context.Context, input *HandleClickInput) (*HandleClickOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	for _, modal := range []models.Modal{models.ModalLogin, models.ModalSignup} {
		if input.TargetID != modal.ElementID() {
			continue
		}

		state, err := s.ModalState(ctx, &ModalInput{Modal: modal})
		if err != nil {
			return nil, err
		}
		if !state.IsVisible() {
			break
		}

		if err := s.CloseModal(ctx, &ModalInput{Modal: modal}); err != nil {
			return nil, err
		}
		return &HandleClickOutput{Closed: modal}, nil
	}

	return &HandleClickOutput{}, nil
}

// SubmitLogin posts the login form. Every outcome ends in exactly one alert.
func (s *service) SubmitLogin(ctx context.Context, input *SubmitInput) (*SubmitOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	resp, err := s.auth.Login(ctx, &auth.SubmitInput{Fields: input.Fields})
	if err != nil {
		slog.Warn("login submission failed",
			"session_id", input.SessionID,
			"error", err)
		s.view.Alert(MessageLoginNetworkError)
		return &SubmitOutput{Message: MessageLoginNetworkError}, nil
	}

	if resp.Success {
		if resp.Token != "" {
			err := s.tokens.SaveToken(ctx, &token.SaveTokenInput{
				SessionID: input.SessionID,
				Token:     resp.Token,
			})
			if err != nil {
				slog.Warn("failed to store login token",
					"session_id", input.SessionID,
					"error", err)
			}
		}

		s.view.Alert(resp.Message)
		if err := s.CloseModal(ctx, &ModalInput{Modal: models.ModalLogin}); err != nil {
			return nil, err
		}
	} else {
		s.view.Alert(resp.Message)
	}

	return &SubmitOutput{
		Success: resp.Success,
		Message: resp.Message,
	}, nil
}

// SubmitSignup posts the signup form; a successful signup leads into login
func (s *service) SubmitSignup(ctx context.Context, input *SubmitInput) (*SubmitOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	resp, err := s.auth.Signup(ctx, &auth.SubmitInput{Fields: input.Fields})
	if err != nil {
		slog.Warn("signup submission failed",
			"session_id", input.SessionID,
			"error", err)
		s.view.Alert(MessageSignupNetworkError)
		return &SubmitOutput{Message: MessageSignupNetworkError}, nil
	}

	s.view.Alert(resp.Message)

	if resp.Success {
		if err := s.CloseModal(ctx, &ModalInput{Modal: models.ModalSignup}); err != nil {
			return nil, err
		}
		if err := s.OpenModal(ctx, &ModalInput{Modal: models.ModalLogin}); err != nil {
			return nil, err
		}
	}

	return &SubmitOutput{
		Success: resp.Success,
		Message: resp.Message,
	}, nil
}

// PlayGame alerts the launch notice
func (s *service) PlayGame(ctx context.Context, input *PlayGameInput) error {
	if input == nil {
		return ErrNilInput
	}

	s.view.Alert(fmt.Sprintf(messagePlayGame, input.GameID))
	return nil
}
