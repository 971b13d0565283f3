// Command portal serves the gaming portal landing page.
//
// It starts the HTTP surface (page shell, live socket, signup validator) and
// connects the per-session token store to Redis.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/gameportal/internal/common/clock"
	"github.com/KirkDiggler/gameportal/internal/common/locale"
	"github.com/KirkDiggler/gameportal/internal/common/uuid"
	"github.com/KirkDiggler/gameportal/internal/config"
	"github.com/KirkDiggler/gameportal/internal/handlers/web"
	"github.com/KirkDiggler/gameportal/internal/repositories/token"
	"github.com/KirkDiggler/gameportal/internal/services/auth"
	"github.com/KirkDiggler/gameportal/internal/services/portal"
	"github.com/KirkDiggler/gameportal/internal/services/signup"
	"github.com/redis/go-redis/v9"
)

func fatal(msg string, err error, attrs ...any) {
	args := make([]any, 0, 2+len(attrs))
	args = append(args, "error", err)
	args = append(args, attrs...)
	slog.Error(msg, args...)
	os.Exit(1)
}

func main() {
	ids := uuid.New()
	runID := ids.NewUUID()

	cfg, err := config.Load()
	if err != nil {
		slog.Default().With("run_id", runID).Error("config load failed", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	})).With("run_id", runID))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	// Test Redis connection
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	err = redisClient.Ping(pingCtx).Err()
	cancel()
	if err != nil {
		fatal("failed to connect to Redis", err, "addr", cfg.RedisAddr)
	}

	tokenRepo, err := token.NewRedis(&token.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		fatal("failed to create token repository", err)
	}

	httpClient := &http.Client{Timeout: cfg.APITimeout}

	authClient, err := auth.New(&auth.Config{
		LoginURL:   cfg.LoginURL,
		SignupURL:  cfg.SignupURL,
		HTTPClient: httpClient,
	})
	if err != nil {
		fatal("failed to create auth client", err)
	}

	printer := locale.Parse(cfg.Locale)

	factory, err := portal.New(&portal.Config{
		APIBaseURL:      cfg.APIBaseURL,
		HTTPClient:      httpClient,
		Auth:            authClient,
		Tokens:          tokenRepo,
		Scheduler:       clock.NewTickerScheduler(),
		UUID:            ids,
		CounterSteps:    cfg.CounterSteps,
		CounterInterval: cfg.CounterInterval,
		DefaultPrinter:  printer,
	})
	if err != nil {
		fatal("failed to create session factory", err)
	}

	server, err := web.New(&web.Config{
		Addr:           cfg.HTTPAddr,
		Factory:        factory,
		Validator:      signup.New(),
		DefaultPrinter: printer,
	})
	if err != nil {
		fatal("failed to create web server", err)
	}

	slog.Info("starting portal",
		"addr", cfg.HTTPAddr,
		"api", cfg.APIBaseURL,
		"locale", printer.Tag().String())

	server.Start()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Stop(shutdownCtx); err != nil {
		slog.Error("error stopping web server", "error", err)
	}

	slog.Info("portal has been shut down")
}
