package models

// GameCategory is the genre used by the catalog filter
type GameCategory string

const (
	GameCategoryAll      GameCategory = "all"
	GameCategoryAction   GameCategory = "action"
	GameCategoryStrategy GameCategory = "strategy"
	GameCategoryRPG      GameCategory = "rpg"
)

// Matches returns true if a game of category c is shown under filter f
func (c GameCategory) Matches(f GameCategory) bool {
	return f == GameCategoryAll || c == f
}

// Game is one entry of the game catalog
type Game struct {
	// ID is the unique identifier for the game
	ID int `json:"id"`

	// Title is the display name
	Title string `json:"title"`

	// Category is the genre of the game
	Category GameCategory `json:"category"`

	// Players is a preformatted player count such as "12.5K"
	Players string `json:"players"`

	// Rating is the average rating out of 5
	Rating float64 `json:"rating"`

	// Icon is a single glyph shown in place of artwork
	Icon string `json:"icon"`
}
