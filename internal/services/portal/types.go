package portal

import (
	"net/http"
	"time"

	"github.com/KirkDiggler/gameportal/internal/common/clock"
	"github.com/KirkDiggler/gameportal/internal/common/locale"
	"github.com/KirkDiggler/gameportal/internal/common/uuid"
	"github.com/KirkDiggler/gameportal/internal/repositories/token"
	"github.com/KirkDiggler/gameportal/internal/services/auth"
	"github.com/KirkDiggler/gameportal/internal/services/loader"
)

// Config holds configuration for the session factory
type Config struct {
	// APIBaseURL is the data API root
	APIBaseURL string

	// HTTPClient performs the data fetches
	HTTPClient *http.Client

	// Auth posts the login and signup forms
	Auth auth.Client

	// Tokens stores login tokens
	Tokens token.Repository

	// Scheduler drives the counter animations
	Scheduler clock.Scheduler

	// UUID generates session ids
	UUID uuid.UUID

	// CounterSteps and CounterInterval tune the animation, zero means default
	CounterSteps    int
	CounterInterval time.Duration

	// DefaultPrinter is used when a session asks for no locale
	DefaultPrinter *locale.Printer
}

// NewSessionInput contains per-visitor settings
type NewSessionInput struct {
	// Printer formats the visitor's numbers, defaults to the factory printer
	Printer *locale.Printer
}

// BootOutput contains what each resource resolved to
type BootOutput struct {
	Stats       *loader.LoadStatsOutput
	Games       *loader.LoadGamesOutput
	Leaderboard *loader.LoadLeaderboardOutput
}
