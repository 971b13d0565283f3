package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/KirkDiggler/gameportal/internal/fallback"
	"github.com/KirkDiggler/gameportal/internal/models"
	"github.com/KirkDiggler/gameportal/internal/services/renderer"
	rendererMocks "github.com/KirkDiggler/gameportal/internal/services/renderer/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LoaderTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockRenderer *rendererMocks.MockRenderer
	ctx          context.Context

	// responses maps a request path to a handler for the fake API
	mu        sync.Mutex
	responses map[string]http.HandlerFunc
	requests  []*http.Request
	api       *httptest.Server
	loader    Loader

	liveStats       *models.Stats
	liveGames       []*models.Game
	liveLeaderboard []*models.LeaderboardEntry
}

func (s *LoaderTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRenderer = rendererMocks.NewMockRenderer(s.mockCtrl)
	s.ctx = context.Background()
	s.responses = map[string]http.HandlerFunc{}
	s.requests = nil

	s.api = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, r)
		h, ok := s.responses[r.URL.Path]
		s.mu.Unlock()
		if ok {
			h(w, r)
			return
		}
		http.NotFound(w, r)
	}))

	l, err := New(&Config{
		BaseURL:  s.api.URL + "/api/",
		Renderer: s.mockRenderer,
	})
	s.Require().NoError(err)
	s.loader = l

	s.liveStats = &models.Stats{ActivePlayers: 3, TotalGames: 2, Tournaments: 1}
	s.liveGames = []*models.Game{
		{ID: 10, Title: "Live Game", Category: models.GameCategoryStrategy, Players: "1K", Rating: 3.5, Icon: "♟"},
	}
	s.liveLeaderboard = []*models.LeaderboardEntry{
		{Rank: 1, Username: "live", Score: 99, Wins: 9, Level: 9, Avatar: "★"},
	}
}

func (s *LoaderTestSuite) TearDownTest() {
	s.api.Close()
	s.mockCtrl.Finish()
}

func TestLoaderTestSuite(t *testing.T) {
	suite.Run(t, new(LoaderTestSuite))
}

func (s *LoaderTestSuite) setResponse(path string, h http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[path] = h
}

func (s *LoaderTestSuite) resetResponses() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses = map[string]http.HandlerFunc{}
}

func (s *LoaderTestSuite) respondJSON(path string, body any) {
	s.setResponse(path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	})
}

func (s *LoaderTestSuite) respondRaw(path string, status int, body string) {
	s.setResponse(path, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

func (s *LoaderTestSuite) TestLoadStatsLive() {
	s.respondJSON("/api/stats", s.liveStats)
	s.mockRenderer.EXPECT().
		RenderStats(s.ctx, &renderer.RenderStatsInput{Stats: s.liveStats}).
		Return(&renderer.RenderStatsOutput{}, nil)

	output, err := s.loader.LoadStats(s.ctx)
	s.Require().NoError(err)
	s.Equal(models.SourceLive, output.Source)
	s.Equal(s.liveStats, output.Stats)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.Require().Len(s.requests, 1)
	s.Equal("application/json", s.requests[0].Header.Get("Accept"))
	s.Equal(http.MethodGet, s.requests[0].Method)
}

func (s *LoaderTestSuite) TestLoadGamesLive() {
	s.respondJSON("/api/games", s.liveGames)
	s.mockRenderer.EXPECT().
		RenderGames(s.ctx, &renderer.RenderGamesInput{Games: s.liveGames}).
		Return(nil)

	output, err := s.loader.LoadGames(s.ctx)
	s.Require().NoError(err)
	s.Equal(models.SourceLive, output.Source)
	s.Equal(s.liveGames, output.Games)
}

func (s *LoaderTestSuite) TestLoadLeaderboardLive() {
	s.respondJSON("/api/leaderboard", s.liveLeaderboard)
	s.mockRenderer.EXPECT().
		RenderLeaderboard(s.ctx, &renderer.RenderLeaderboardInput{Entries: s.liveLeaderboard}).
		Return(nil)

	output, err := s.loader.LoadLeaderboard(s.ctx)
	s.Require().NoError(err)
	s.Equal(models.SourceLive, output.Source)
}

func (s *LoaderTestSuite) TestLiveEmptyCatalogIsNotAFailure() {
	s.respondRaw("/api/games", http.StatusOK, "[]")
	s.mockRenderer.EXPECT().
		RenderGames(s.ctx, &renderer.RenderGamesInput{Games: []*models.Game{}}).
		Return(nil)

	output, err := s.loader.LoadGames(s.ctx)
	s.Require().NoError(err)
	s.Equal(models.SourceLive, output.Source)
}

// failures lists every way a fetch can go wrong
func (s *LoaderTestSuite) failures() map[string]func(path string) {
	return map[string]func(path string){
		"server error":   func(path string) { s.respondRaw(path, http.StatusInternalServerError, `{"error":"boom"}`) },
		"not found":      func(path string) {},
		"malformed json": func(path string) { s.respondRaw(path, http.StatusOK, "<html>oops</html>") },
		"truncated json": func(path string) { s.respondRaw(path, http.StatusOK, `[{"id": 1,`) },
		"null body":      func(path string) { s.respondRaw(path, http.StatusOK, "null") },
		"wrong shape":    func(path string) { s.respondRaw(path, http.StatusOK, `"just a string"`) },
	}
}

func (s *LoaderTestSuite) TestLoadStatsFallsBack() {
	for name, fail := range s.failures() {
		s.Run(name, func() {
			s.resetResponses()
			fail("/api/stats")
			s.mockRenderer.EXPECT().
				RenderStats(s.ctx, &renderer.RenderStatsInput{Stats: fallback.Stats()}).
				Return(&renderer.RenderStatsOutput{}, nil)

			output, err := s.loader.LoadStats(s.ctx)
			s.Require().NoError(err)
			s.Equal(models.SourceFallback, output.Source)
			s.Equal(fallback.Stats(), output.Stats)
		})
	}
}

func (s *LoaderTestSuite) TestLoadStatsNegativeCountFallsBack() {
	bodies := map[string]string{
		"active players": `{"activePlayers":-5,"totalGames":3,"tournaments":2}`,
		"total games":    `{"activePlayers":5,"totalGames":-1,"tournaments":2}`,
		"tournaments":    `{"activePlayers":5,"totalGames":3,"tournaments":-2}`,
	}

	for name, body := range bodies {
		s.Run(name, func() {
			s.resetResponses()
			s.respondRaw("/api/stats", http.StatusOK, body)
			s.mockRenderer.EXPECT().
				RenderStats(s.ctx, &renderer.RenderStatsInput{Stats: fallback.Stats()}).
				Return(&renderer.RenderStatsOutput{}, nil)

			output, err := s.loader.LoadStats(s.ctx)
			s.Require().NoError(err)
			s.Equal(models.SourceFallback, output.Source)
			s.Equal(fallback.Stats(), output.Stats)
		})
	}
}

func (s *LoaderTestSuite) TestFallbackLogsCause() {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	s.respondRaw("/api/stats", http.StatusOK, "null")
	s.mockRenderer.EXPECT().
		RenderStats(s.ctx, gomock.Any()).
		Return(&renderer.RenderStatsOutput{}, nil)

	_, err := s.loader.LoadStats(s.ctx)
	s.Require().NoError(err)

	var record map[string]any
	s.Require().NoError(json.Unmarshal(buf.Bytes(), &record))
	s.Equal("WARN", record["level"])
	s.Equal(ResourceStats, record["resource"])
	s.Equal(ErrEmptyPayload.Error(), record["error"])
}

func (s *LoaderTestSuite) TestLoadGamesFallsBack() {
	for name, fail := range s.failures() {
		s.Run(name, func() {
			s.resetResponses()
			fail("/api/games")
			s.mockRenderer.EXPECT().
				RenderGames(s.ctx, &renderer.RenderGamesInput{Games: fallback.Games()}).
				Return(nil)

			output, err := s.loader.LoadGames(s.ctx)
			s.Require().NoError(err)
			s.Equal(models.SourceFallback, output.Source)
			s.Len(output.Games, 6)
		})
	}
}

func (s *LoaderTestSuite) TestLoadLeaderboardFallsBack() {
	for name, fail := range s.failures() {
		s.Run(name, func() {
			s.resetResponses()
			fail("/api/leaderboard")
			s.mockRenderer.EXPECT().
				RenderLeaderboard(s.ctx, &renderer.RenderLeaderboardInput{Entries: fallback.Leaderboard()}).
				Return(nil)

			output, err := s.loader.LoadLeaderboard(s.ctx)
			s.Require().NoError(err)
			s.Equal(models.SourceFallback, output.Source)
		})
	}
}

func (s *LoaderTestSuite) TestNetworkFailureFallsBack() {
	s.api.Close()

	s.mockRenderer.EXPECT().
		RenderGames(s.ctx, &renderer.RenderGamesInput{Games: fallback.Games()}).
		Return(nil)

	output, err := s.loader.LoadGames(s.ctx)
	s.Require().NoError(err)
	s.Equal(models.SourceFallback, output.Source)
}

func (s *LoaderTestSuite) TestInjectedFallback() {
	custom := &fallback.Datasets{Games: []*models.Game{{ID: 42, Title: "Injected"}}}
	l, err := New(&Config{
		BaseURL:  s.api.URL,
		Renderer: s.mockRenderer,
		Fallback: func() *fallback.Datasets { return custom },
	})
	s.Require().NoError(err)

	s.mockRenderer.EXPECT().
		RenderGames(s.ctx, &renderer.RenderGamesInput{Games: custom.Games}).
		Return(nil)

	output, err := l.LoadGames(s.ctx)
	s.Require().NoError(err)
	s.Equal(custom.Games, output.Games)
}

func (s *LoaderTestSuite) TestRenderFailureIsReturned() {
	renderErr := errors.New("container missing")
	s.respondJSON("/api/games", s.liveGames)
	s.mockRenderer.EXPECT().RenderGames(gomock.Any(), gomock.Any()).Return(renderErr)

	_, err := s.loader.LoadGames(s.ctx)
	s.ErrorIs(err, renderErr)
}

func (s *LoaderTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Renderer: s.mockRenderer})
	s.ErrorIs(err, ErrEmptyBaseURL)

	_, err = New(&Config{BaseURL: "http://example.test"})
	s.ErrorIs(err, ErrNilRenderer)
}
