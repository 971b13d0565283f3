package web

import (
	"bytes"
	"log/slog"
	"net/http"
	"strings"

	"github.com/KirkDiggler/gameportal/internal/models"
	"github.com/KirkDiggler/gameportal/internal/view"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// pageData is the model of the page shell
type pageData struct {
	Lang      string
	NavLinks  []*pageControl
	Filters   []*pageControl
	Counters  []*pageCounter
	GamesGrid string
	Board     string
	Modals    []*pageModal
	LivePath  string
}

type pageControl struct {
	ID     string
	Value  string
	Label  string
	Active bool
}

type pageCounter struct {
	ID    string
	Label string
}

type pageModal struct {
	ID     string
	Modal  string
	FormID string
	Title  string
	Fields []string
}

// newPageData builds the shell from the same layout the live document starts from
func newPageData(lang string) *pageData {
	data := &pageData{
		Lang: lang,
		Counters: []*pageCounter{
			{ID: view.ElementActivePlayers, Label: "Active Players"},
			{ID: view.ElementGamesCount, Label: "Games"},
			{ID: view.ElementTournaments, Label: "Tournaments"},
		},
		GamesGrid: view.ElementGamesGrid,
		Board:     view.ElementLeaderboardBody,
		Modals: []*pageModal{
			{
				ID:     models.ModalLogin.ElementID(),
				Modal:  string(models.ModalLogin),
				FormID: "loginForm",
				Title:  "Login",
				Fields: []string{"email", "password"},
			},
			{
				ID:     models.ModalSignup.ElementID(),
				Modal:  string(models.ModalSignup),
				FormID: "signupForm",
				Title:  "Sign Up",
				Fields: []string{"username", "email", "password"},
			},
		},
		LivePath: RouteLive,
	}

	for _, el := range view.PortalLayout() {
		switch el.Group {
		case view.GroupNav:
			data.NavLinks = append(data.NavLinks, &pageControl{
				ID:     el.ID,
				Value:  el.Attrs[view.AttrHref],
				Label:  title(strings.TrimPrefix(el.Attrs[view.AttrHref], "#")),
				Active: el.Active,
			})
		case view.GroupFilter:
			data.Filters = append(data.Filters, &pageControl{
				ID:     el.ID,
				Value:  el.Attrs[view.AttrCategory],
				Label:  title(el.Attrs[view.AttrCategory]),
				Active: el.Active,
			})
		}
	}

	return data
}

// title labels a control; "rpg" is an initialism
func title(s string) string {
	if s == string(models.GameCategoryRPG) {
		return cases.Upper(language.English).String(s)
	}
	return cases.Title(language.English).String(s)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	printer := s.printerFor(r)

	var buf bytes.Buffer
	if err := s.page.Execute(&buf, newPageData(printer.Tag().String())); err != nil {
		slog.Error("failed to render page", "error", err)
		http.Error(w, "Page Template Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
