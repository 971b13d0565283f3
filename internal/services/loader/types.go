package loader

import (
	"net/http"

	"github.com/KirkDiggler/gameportal/internal/fallback"
	"github.com/KirkDiggler/gameportal/internal/models"
	"github.com/KirkDiggler/gameportal/internal/services/renderer"
)

// Resource names, appended to the API base URL
const (
	ResourceStats       = "stats"
	ResourceGames       = "games"
	ResourceLeaderboard = "leaderboard"
)

// Config holds configuration for the loader
type Config struct {
	// BaseURL is the API root, e.g. http://localhost:5000/api
	BaseURL string

	// HTTPClient performs the fetches, defaults to a client with no timeout
	HTTPClient *http.Client

	// Renderer receives whichever dataset was resolved
	Renderer renderer.Renderer

	// Fallback provides the demo datasets, defaults to fallback.Demo
	Fallback func() *fallback.Datasets
}

// LoadStatsOutput contains the resolved statistics
type LoadStatsOutput struct {
	Stats  *models.Stats
	Source models.Source

	// Done has one channel per counter, closed when that counter settles
	Done []<-chan struct{}
}

// LoadGamesOutput contains the resolved catalog
type LoadGamesOutput struct {
	Games  []*models.Game
	Source models.Source
}

// LoadLeaderboardOutput contains the resolved leaderboard
type LoadLeaderboardOutput struct {
	Entries []*models.LeaderboardEntry
	Source  models.Source
}
