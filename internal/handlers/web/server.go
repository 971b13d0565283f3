package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/KirkDiggler/gameportal/internal/common/locale"
	"github.com/KirkDiggler/gameportal/internal/services/portal"
	"github.com/KirkDiggler/gameportal/internal/services/signup"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Routes
const (
	RouteIndex   = "/"
	RouteLive    = "/live"
	RouteStatic  = "/static/"
	RouteSignup  = "/process.php"
	RouteHealthz = "/healthz"
)

// Server serves the portal page, its live socket and the signup validator
type Server struct {
	srv            *http.Server
	router         *mux.Router
	page           *template.Template
	upgrader       websocket.Upgrader
	factory        portal.Factory
	validator      signup.Validator
	defaultPrinter *locale.Printer
}

// Config holds the configuration for the server
type Config struct {
	// Addr to listen on, e.g. ":8080"
	Addr string

	// Factory creates a session per live socket
	Factory portal.Factory

	// Validator answers /process.php
	Validator signup.Validator

	// DefaultPrinter is used when Accept-Language matches nothing supported
	DefaultPrinter *locale.Printer
}

// New creates a new web server
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Factory == nil {
		return nil, errors.New("session factory cannot be nil")
	}

	if cfg.Validator == nil {
		return nil, errors.New("signup validator cannot be nil")
	}

	page, err := template.ParseFS(templateFS, "templates/index.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}

	printer := cfg.DefaultPrinter
	if printer == nil {
		printer = locale.New(locale.DefaultTag)
	}

	s := &Server{
		router:         mux.NewRouter(),
		page:           page,
		factory:        cfg.Factory,
		validator:      cfg.Validator,
		defaultPrinter: printer,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}

	if err := s.routes(); err != nil {
		return nil, err
	}

	s.srv = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s, nil
}

func (s *Server) routes() error {
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return fmt.Errorf("failed to open static files: %w", err)
	}

	s.router.HandleFunc(RouteIndex, s.handleIndex).Methods(http.MethodGet, http.MethodHead)
	s.router.HandleFunc(RouteLive, s.handleLive).Methods(http.MethodGet)
	s.router.PathPrefix(RouteStatic).Handler(http.StripPrefix(RouteStatic, http.FileServer(http.FS(static)))).Methods(http.MethodGet, http.MethodHead)
	s.router.HandleFunc(RouteSignup, s.handleSignup)
	s.router.HandleFunc(RouteHealthz, s.handleHealthz).Methods(http.MethodGet)

	return nil
}

// Handler returns the routed handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start begins serving in the background. Listen errors other than a clean
// shutdown are logged.
func (s *Server) Start() {
	go func() {
		slog.Info("web server listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("web server stopped", "error", err)
		}
	}()
}

// Stop gracefully shuts down the server
func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// handleSignup always answers 200 with a plain-text verdict
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	out, err := s.validator.Validate(signup.FromRequest(r))
	if err != nil {
		slog.Error("signup validation failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(out.Message))
}
