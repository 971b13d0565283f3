package renderer

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_renderer.go github.com/KirkDiggler/gameportal/internal/services/renderer Renderer

// Renderer turns loaded records into display fragments
type Renderer interface {
	// RenderStats starts the hero counter animations
	RenderStats(ctx context.Context, input *RenderStatsInput) (*RenderStatsOutput, error)

	// RenderGames replaces the catalog grid with one card per game
	RenderGames(ctx context.Context, input *RenderGamesInput) error

	// RenderLeaderboard replaces the leaderboard body with one row per entry
	RenderLeaderboard(ctx context.Context, input *RenderLeaderboardInput) error
}
