package renderer

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"strconv"

	"golang.org/x/text/cases"

	"github.com/KirkDiggler/gameportal/internal/common/locale"
	"github.com/KirkDiggler/gameportal/internal/services/counter"
	"github.com/KirkDiggler/gameportal/internal/view"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

const (
	gameCardClass = "game-card"

	dataGameID = "game-id"
)

// service implements the Renderer interface
type service struct {
	view     view.Handle
	animator counter.Animator
	printer  *locale.Printer

	gameCard       *template.Template
	leaderboardRow *template.Template
}

// New creates a new renderer
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.View == nil {
		return nil, ErrNilView
	}
	if cfg.Animator == nil {
		return nil, ErrNilAnimator
	}

	printer := cfg.Printer
	if printer == nil {
		printer = locale.New(locale.DefaultTag)
	}

	gameCard, err := loadTemplate("game_card.tmpl")
	if err != nil {
		return nil, err
	}
	leaderboardRow, err := loadTemplate("leaderboard_row.tmpl")
	if err != nil {
		return nil, err
	}

	return &service{
		view:           cfg.View,
		animator:       cfg.Animator,
		printer:        printer,
		gameCard:       gameCard,
		leaderboardRow: leaderboardRow,
	}, nil
}

func loadTemplate(name string) (*template.Template, error) {
	b, err := templatesFS.ReadFile("templates/" + name)
	if err != nil {
		return nil, fmt.Errorf("read embedded template %s: %w", name, err)
	}
	t, err := template.New(name).Option("missingkey=zero").Parse(string(b))
	if err != nil {
		return nil, fmt.Errorf("parse embedded template %s: %w", name, err)
	}
	return t, nil
}

// RenderStats animates the three hero counters
func (s *service) RenderStats(ctx context.Context, input *RenderStatsInput) (*RenderStatsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.Stats == nil {
		return nil, ErrNilStats
	}

	counters := []struct {
		elementID string
		value     int64
	}{
		{view.ElementActivePlayers, input.Stats.ActivePlayers},
		{view.ElementGamesCount, input.Stats.TotalGames},
		{view.ElementTournaments, input.Stats.Tournaments},
	}

	output := &RenderStatsOutput{}
	for _, c := range counters {
		started, err := s.animator.Animate(ctx, &counter.AnimateInput{
			ElementID: c.elementID,
			Target:    float64(c.value),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to animate %s: %w", c.elementID, err)
		}
		output.Done = append(output.Done, started.Done)
	}

	return output, nil
}

// RenderGames replaces the catalog grid
func (s *service) RenderGames(ctx context.Context, input *RenderGamesInput) error {
	if input == nil {
		return ErrNilInput
	}

	containerID := input.ContainerID
	if containerID == "" {
		containerID = view.ElementGamesGrid
	}

	// Casers are stateful; one per call keeps concurrent renders apart
	upper := cases.Upper(s.printer.Tag())

	fragments := make([]*view.Fragment, 0, len(input.Games))
	for _, game := range input.Games {
		if game == nil {
			continue
		}

		body, err := s.execute(s.gameCard, &gameCard{
			ID:       game.ID,
			Title:    game.Title,
			Category: upper.String(string(game.Category)),
			Players:  game.Players,
			Rating:   strconv.FormatFloat(game.Rating, 'f', -1, 64),
			Icon:     game.Icon,
		})
		if err != nil {
			return fmt.Errorf("failed to render game %d: %w", game.ID, err)
		}

		fragments = append(fragments, &view.Fragment{
			ID:    GameFragmentID(game.ID),
			Class: gameCardClass,
			Data: map[string]string{
				view.AttrCategory: string(game.Category),
				dataGameID:        strconv.Itoa(game.ID),
			},
			Body: body,
		})
	}

	return s.view.ReplaceChildren(containerID, fragments)
}

// RenderLeaderboard replaces the leaderboard body. Entries are shown in the
// order given; the podium tag comes from each entry's rank alone.
func (s *service) RenderLeaderboard(ctx context.Context, input *RenderLeaderboardInput) error {
	if input == nil {
		return ErrNilInput
	}

	containerID := input.ContainerID
	if containerID == "" {
		containerID = view.ElementLeaderboardBody
	}

	fragments := make([]*view.Fragment, 0, len(input.Entries))
	for i, entry := range input.Entries {
		if entry == nil {
			continue
		}

		body, err := s.execute(s.leaderboardRow, &leaderboardRow{
			Rank:     entry.Rank,
			Tag:      entry.Tag(),
			Avatar:   entry.Avatar,
			Username: entry.Username,
			Score:    s.printer.Int(entry.Score),
			Wins:     entry.Wins,
			Level:    entry.Level,
		})
		if err != nil {
			return fmt.Errorf("failed to render leaderboard rank %d: %w", entry.Rank, err)
		}

		fragments = append(fragments, &view.Fragment{
			ID:   LeaderboardFragmentID(i),
			Tag:  "tr",
			Body: body,
		})
	}

	return s.view.ReplaceChildren(containerID, fragments)
}

func (s *service) execute(t *template.Template, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// GameFragmentID returns the fragment id of a game card
func GameFragmentID(gameID int) string {
	return "game-" + strconv.Itoa(gameID)
}

// LeaderboardFragmentID returns the fragment id of the row at a display position
func LeaderboardFragmentID(position int) string {
	return "leaderboard-row-" + strconv.Itoa(position)
}
