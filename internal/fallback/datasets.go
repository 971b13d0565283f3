// Package fallback holds the demo datasets shown when the API cannot be reached.
package fallback

import "github.com/KirkDiggler/gameportal/internal/models"

// Datasets groups one fallback per resource kind
type Datasets struct {
	Stats       *models.Stats
	Games       []*models.Game
	Leaderboard []*models.LeaderboardEntry
}

// Demo returns a fresh copy of the built-in demo data. Callers may keep or
// modify the result without affecting later calls.
func Demo() *Datasets {
	return &Datasets{
		Stats:       Stats(),
		Games:       Games(),
		Leaderboard: Leaderboard(),
	}
}

// Stats returns the demo statistics snapshot
func Stats() *models.Stats {
	return &models.Stats{
		ActivePlayers: 15420,
		TotalGames:    87,
		Tournaments:   24,
	}
}

// Games returns the demo game catalog
func Games() []*models.Game {
	return []*models.Game{
		{ID: 1, Title: "Cyber Warfare", Category: models.GameCategoryAction, Players: "12.5K", Rating: 4.8, Icon: "🎮"},
		{ID: 2, Title: "Kingdom Builder", Category: models.GameCategoryStrategy, Players: "8.2K", Rating: 4.6, Icon: "🏰"},
		{ID: 3, Title: "Dragon Quest", Category: models.GameCategoryRPG, Players: "15.1K", Rating: 4.9, Icon: "🐉"},
		{ID: 4, Title: "Space Raiders", Category: models.GameCategoryAction, Players: "10.3K", Rating: 4.7, Icon: "🚀"},
		{ID: 5, Title: "Mystic Legends", Category: models.GameCategoryRPG, Players: "9.8K", Rating: 4.5, Icon: "⚔"},
		{ID: 6, Title: "Battle Arena", Category: models.GameCategoryAction, Players: "11.7K", Rating: 4.8, Icon: "⚡"},
	}
}

// Leaderboard returns the demo leaderboard, sorted by rank
func Leaderboard() []*models.LeaderboardEntry {
	return []*models.LeaderboardEntry{
		{Rank: 1, Username: "GULSHAN4530", Score: 15420, Wins: 234, Level: 87, Avatar: "👑"},
		{Rank: 2, Username: "TUSHARBHONDU", Score: 14890, Wins: 221, Level: 85, Avatar: "🐲"},
		{Rank: 3, Username: "JASSADON", Score: 13750, Wins: 198, Level: 82, Avatar: "🥷"},
		{Rank: 4, Username: "VINEETKADOST", Score: 12540, Wins: 187, Level: 79, Avatar: "🔥"},
		{Rank: 5, Username: "CHOCO", Score: 11320, Wins: 165, Level: 76, Avatar: "❄"},
	}
}
