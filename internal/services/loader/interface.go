package loader

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_loader.go github.com/KirkDiggler/gameportal/internal/services/loader Loader

// Loader fetches a remote resource, falls back to demo data on any failure,
// and hands the result to the renderer. Fetch failures never reach the caller.
type Loader interface {
	// LoadStats fetches /stats and starts the counters
	LoadStats(ctx context.Context) (*LoadStatsOutput, error)

	// LoadGames fetches /games and renders the catalog
	LoadGames(ctx context.Context) (*LoadGamesOutput, error)

	// LoadLeaderboard fetches /leaderboard and renders the rows
	LoadLeaderboard(ctx context.Context) (*LoadLeaderboardOutput, error)
}
