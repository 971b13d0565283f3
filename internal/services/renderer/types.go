package renderer

import (
	"github.com/KirkDiggler/gameportal/internal/common/locale"
	"github.com/KirkDiggler/gameportal/internal/models"
	"github.com/KirkDiggler/gameportal/internal/services/counter"
	"github.com/KirkDiggler/gameportal/internal/view"
)

// Config holds configuration for the renderer
type Config struct {
	// View is the display surface
	View view.Handle

	// Animator runs the stats counters
	Animator counter.Animator

	// Printer formats scores, defaults to American English
	Printer *locale.Printer
}

// RenderStatsInput contains the snapshot to display
type RenderStatsInput struct {
	Stats *models.Stats
}

// RenderStatsOutput contains the started counter animations
type RenderStatsOutput struct {
	// Done has one channel per counter, closed when that counter settles
	Done []<-chan struct{}
}

// RenderGamesInput contains the catalog to display
type RenderGamesInput struct {
	// ContainerID defaults to the games grid
	ContainerID string

	Games []*models.Game
}

// RenderLeaderboardInput contains the leaderboard to display
type RenderLeaderboardInput struct {
	// ContainerID defaults to the leaderboard body
	ContainerID string

	Entries []*models.LeaderboardEntry
}

// gameCard is the template model for one catalog card
type gameCard struct {
	ID       int
	Title    string
	Category string
	Players  string
	Rating   string
	Icon     string
}

// leaderboardRow is the template model for one leaderboard row
type leaderboardRow struct {
	Rank     int
	Tag      models.RankTag
	Avatar   string
	Username string
	Score    string
	Wins     int
	Level    int
}
