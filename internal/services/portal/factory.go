package portal

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/KirkDiggler/gameportal/internal/common/clock"
	"github.com/KirkDiggler/gameportal/internal/common/locale"
	"github.com/KirkDiggler/gameportal/internal/common/uuid"
	"github.com/KirkDiggler/gameportal/internal/repositories/token"
	"github.com/KirkDiggler/gameportal/internal/services/auth"
	"github.com/KirkDiggler/gameportal/internal/services/controller"
	"github.com/KirkDiggler/gameportal/internal/services/counter"
	"github.com/KirkDiggler/gameportal/internal/services/loader"
	"github.com/KirkDiggler/gameportal/internal/services/renderer"
	"github.com/KirkDiggler/gameportal/internal/view"
)

// factory implements the Factory interface
type factory struct {
	apiBaseURL      string
	httpClient      *http.Client
	auth            auth.Client
	tokens          token.Repository
	scheduler       clock.Scheduler
	uuid            uuid.UUID
	counterSteps    int
	counterInterval time.Duration
	defaultPrinter  *locale.Printer
}

// New creates a new session factory
func New(cfg *Config) (*factory, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if strings.TrimSpace(cfg.APIBaseURL) == "" {
		return nil, ErrEmptyBaseURL
	}
	if cfg.Auth == nil {
		return nil, ErrNilAuth
	}
	if cfg.Tokens == nil {
		return nil, ErrNilTokens
	}
	if cfg.Scheduler == nil {
		return nil, ErrNilScheduler
	}
	if cfg.UUID == nil {
		return nil, ErrNilUUID
	}

	printer := cfg.DefaultPrinter
	if printer == nil {
		printer = locale.New(locale.DefaultTag)
	}

	return &factory{
		apiBaseURL:      cfg.APIBaseURL,
		httpClient:      cfg.HTTPClient,
		auth:            cfg.Auth,
		tokens:          cfg.Tokens,
		scheduler:       cfg.Scheduler,
		uuid:            cfg.UUID,
		counterSteps:    cfg.CounterSteps,
		counterInterval: cfg.CounterInterval,
		defaultPrinter:  printer,
	}, nil
}

// NewSession wires a fresh document to its own animator, renderer, loader and controller
func (f *factory) NewSession(ctx context.Context, input *NewSessionInput) (*Session, error) {
	printer := f.defaultPrinter
	if input != nil && input.Printer != nil {
		printer = input.Printer
	}

	doc := view.NewPortalDocument()

	animator, err := counter.New(&counter.Config{
		View:      doc,
		Scheduler: f.scheduler,
		Printer:   printer,
		Steps:     f.counterSteps,
		Interval:  f.counterInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create animator: %w", err)
	}

	rend, err := renderer.New(&renderer.Config{
		View:     doc,
		Animator: animator,
		Printer:  printer,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	load, err := loader.New(&loader.Config{
		BaseURL:    f.apiBaseURL,
		HTTPClient: f.httpClient,
		Renderer:   rend,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create loader: %w", err)
	}

	ctrl, err := controller.New(&controller.Config{
		View:   doc,
		Auth:   f.auth,
		Tokens: f.tokens,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create controller: %w", err)
	}

	session, err := NewSession(&SessionConfig{
		ID:         f.uuid.NewUUID(),
		Document:   doc,
		Printer:    printer,
		Loader:     load,
		Controller: ctrl,
		Tokens:     f.tokens,
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("session created",
		"session_id", session.ID,
		"locale", printer.Tag().String())

	return session, nil
}
