package models

// LeaderboardEntry is one row of the leaderboard. Entries arrive sorted
// ascending by Rank and are displayed in that order.
type LeaderboardEntry struct {
	// Rank is the 1-based position of the player
	Rank int `json:"rank"`

	// Username is the display name of the player
	Username string `json:"username"`

	// Score is the player's total score
	Score int64 `json:"score"`

	// Wins is the number of matches won
	Wins int `json:"wins"`

	// Level is the player's account level
	Level int `json:"level"`

	// Avatar is a single glyph used as the player picture
	Avatar string `json:"avatar"`
}

// RankTag is the podium highlight for a rank
type RankTag string

const (
	RankTagNone   RankTag = ""
	RankTagGold   RankTag = "gold"
	RankTagSilver RankTag = "silver"
	RankTagBronze RankTag = "bronze"
)

// Tag returns the podium tag for the entry's rank; ranks past 3 are untagged
func (e *LeaderboardEntry) Tag() RankTag {
	switch e.Rank {
	case 1:
		return RankTagGold
	case 2:
		return RankTagSilver
	case 3:
		return RankTagBronze
	default:
		return RankTagNone
	}
}
