package models

// Stats is the headline statistics snapshot shown in the hero counters
type Stats struct {
	// ActivePlayers is the number of players currently online
	ActivePlayers int64 `json:"activePlayers"`

	// TotalGames is the size of the game catalog
	TotalGames int64 `json:"totalGames"`

	// Tournaments is the number of running tournaments
	Tournaments int64 `json:"tournaments"`
}

// Source records where a loaded dataset came from
type Source string

const (
	// SourceLive indicates the dataset was decoded from the API
	SourceLive Source = "live"

	// SourceFallback indicates the built-in demo dataset was substituted
	SourceFallback Source = "fallback"
)

// IsFallback returns true if the demo dataset was used
func (s Source) IsFallback() bool {
	return s == SourceFallback
}

// IsValid returns true when every count can be displayed, i.e. none is negative
func (s *Stats) IsValid() bool {
	return s.ActivePlayers >= 0 && s.TotalGames >= 0 && s.Tournaments >= 0
}
