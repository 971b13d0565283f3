package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/KirkDiggler/gameportal/internal/fallback"
	"github.com/KirkDiggler/gameportal/internal/models"
	"github.com/KirkDiggler/gameportal/internal/services/renderer"
)

// service implements the Loader interface
type service struct {
	baseURL    string
	httpClient *http.Client
	renderer   renderer.Renderer
	fallback   func() *fallback.Datasets
}

// New creates a new resource loader
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, ErrEmptyBaseURL
	}
	if cfg.Renderer == nil {
		return nil, ErrNilRenderer
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	fb := cfg.Fallback
	if fb == nil {
		fb = fallback.Demo
	}

	return &service{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		renderer:   cfg.Renderer,
		fallback:   fb,
	}, nil
}

// LoadStats resolves the statistics snapshot and starts the counters
func (s *service) LoadStats(ctx context.Context) (*LoadStatsOutput, error) {
	output := &LoadStatsOutput{Source: models.SourceLive}

	var stats *models.Stats
	if err := s.fetch(ctx, ResourceStats, &stats); err != nil {
		s.logFallback(ResourceStats, err)
		stats = s.fallback().Stats
		output.Source = models.SourceFallback
	}
	output.Stats = stats

	rendered, err := s.renderer.RenderStats(ctx, &renderer.RenderStatsInput{Stats: stats})
	if err != nil {
		return nil, fmt.Errorf("failed to render stats: %w", err)
	}
	output.Done = rendered.Done

	return output, nil
}

// LoadGames resolves the game catalog and renders it
func (s *service) LoadGames(ctx context.Context) (*LoadGamesOutput, error) {
	output := &LoadGamesOutput{Source: models.SourceLive}

	var games []*models.Game
	if err := s.fetch(ctx, ResourceGames, &games); err != nil {
		s.logFallback(ResourceGames, err)
		games = s.fallback().Games
		output.Source = models.SourceFallback
	}
	output.Games = games

	if err := s.renderer.RenderGames(ctx, &renderer.RenderGamesInput{Games: games}); err != nil {
		return nil, fmt.Errorf("failed to render games: %w", err)
	}

	return output, nil
}

// LoadLeaderboard resolves the leaderboard and renders it
func (s *service) LoadLeaderboard(ctx context.Context) (*LoadLeaderboardOutput, error) {
	output := &LoadLeaderboardOutput{Source: models.SourceLive}

	var entries []*models.LeaderboardEntry
	if err := s.fetch(ctx, ResourceLeaderboard, &entries); err != nil {
		s.logFallback(ResourceLeaderboard, err)
		entries = s.fallback().Leaderboard
		output.Source = models.SourceFallback
	}
	output.Entries = entries

	if err := s.renderer.RenderLeaderboard(ctx, &renderer.RenderLeaderboardInput{Entries: entries}); err != nil {
		return nil, fmt.Errorf("failed to render leaderboard: %w", err)
	}

	return output, nil
}

// fetch GETs {baseURL}/{resource} and decodes the JSON body into out, which
// must be a pointer to a pointer or slice so a null body can be detected
func (s *service) fetch(ctx context.Context, resource string, out any) error {
	url := s.baseURL + "/" + resource
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("api status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", resource, err)
	}

	switch v := out.(type) {
	case **models.Stats:
		if *v == nil {
			return ErrEmptyPayload
		}
		if !(*v).IsValid() {
			return ErrInvalidStats
		}
	case *[]*models.Game:
		if *v == nil {
			return ErrEmptyPayload
		}
	case *[]*models.LeaderboardEntry:
		if *v == nil {
			return ErrEmptyPayload
		}
	}

	return nil
}

func (s *service) logFallback(resource string, err error) {
	slog.Warn("resource load failed, showing demo data",
		"resource", resource,
		"url", s.baseURL+"/"+resource,
		"error", err,
	)
}
