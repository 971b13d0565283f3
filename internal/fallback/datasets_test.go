package fallback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoReturnsFreshCopies(t *testing.T) {
	a := Demo()
	a.Stats.ActivePlayers = 1
	a.Games[0].Title = "changed"
	a.Leaderboard[0].Username = "changed"

	b := Demo()
	assert.Equal(t, int64(15420), b.Stats.ActivePlayers)
	assert.Equal(t, "Cyber Warfare", b.Games[0].Title)
	assert.Equal(t, "GULSHAN4530", b.Leaderboard[0].Username)
}

func TestLeaderboardIsDenselyRanked(t *testing.T) {
	entries := Leaderboard()
	require.NotEmpty(t, entries)
	for i, e := range entries {
		assert.Equal(t, i+1, e.Rank)
	}
}

func TestGameIDsAreUnique(t *testing.T) {
	seen := map[int]bool{}
	for _, g := range Games() {
		assert.False(t, seen[g.ID], "duplicate id %d", g.ID)
		seen[g.ID] = true
	}
}
