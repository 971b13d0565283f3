package portal

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/gameportal/internal/common/locale"
	"github.com/KirkDiggler/gameportal/internal/repositories/token"
	"github.com/KirkDiggler/gameportal/internal/services/controller"
	"github.com/KirkDiggler/gameportal/internal/services/loader"
	"github.com/KirkDiggler/gameportal/internal/view"
	"golang.org/x/sync/errgroup"
)

// Session is one visitor's page
type Session struct {
	ID         string
	Document   *view.Document
	Printer    *locale.Printer
	Loader     loader.Loader
	Controller controller.Controller
	Tokens     token.Repository
}

// SessionConfig holds the parts of a session
type SessionConfig struct {
	ID         string
	Document   *view.Document
	Printer    *locale.Printer
	Loader     loader.Loader
	Controller controller.Controller

	// Tokens holds the login token stored for this session
	Tokens token.Repository
}

// NewSession assembles a session from already built parts
func NewSession(cfg *SessionConfig) (*Session, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Document == nil {
		return nil, ErrNilDocument
	}
	if cfg.Loader == nil {
		return nil, ErrNilLoader
	}
	if cfg.Controller == nil {
		return nil, ErrNilController
	}
	if cfg.Tokens == nil {
		return nil, ErrNilTokens
	}

	printer := cfg.Printer
	if printer == nil {
		printer = locale.New(locale.DefaultTag)
	}

	return &Session{
		ID:         cfg.ID,
		Document:   cfg.Document,
		Printer:    printer,
		Loader:     cfg.Loader,
		Controller: cfg.Controller,
		Tokens:     cfg.Tokens,
	}, nil
}

// Boot runs the three resource loads concurrently. Each load falls back on
// its own; a render failure in one does not stop the others.
func (s *Session) Boot(ctx context.Context) (*BootOutput, error) {
	output := &BootOutput{}

	var g errgroup.Group

	g.Go(func() error {
		out, err := s.Loader.LoadStats(ctx)
		if err != nil {
			return fmt.Errorf("stats: %w", err)
		}
		output.Stats = out
		return nil
	})

	g.Go(func() error {
		out, err := s.Loader.LoadGames(ctx)
		if err != nil {
			return fmt.Errorf("games: %w", err)
		}
		output.Games = out
		return nil
	})

	g.Go(func() error {
		out, err := s.Loader.LoadLeaderboard(ctx)
		if err != nil {
			return fmt.Errorf("leaderboard: %w", err)
		}
		output.Leaderboard = out
		return nil
	})

	if err := g.Wait(); err != nil {
		return output, err
	}

	return output, nil
}

// Close deletes the session's login token; ids are never reused
func (s *Session) Close(ctx context.Context) error {
	err := s.Tokens.DeleteToken(ctx, &token.DeleteTokenInput{SessionID: s.ID})
	if err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}
