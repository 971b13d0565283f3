package view

import "github.com/KirkDiggler/gameportal/internal/models"

// Element ids of the portal page
const (
	ElementActivePlayers   = "activePlayersCount"
	ElementGamesCount      = "gamesCount"
	ElementTournaments     = "tournamentsCount"
	ElementGamesGrid       = "gamesGrid"
	ElementLeaderboardBody = "leaderboardBody"

	SectionHome        = "home"
	SectionGames       = "games"
	SectionLeaderboard = "leaderboard"

	GroupNav    = "nav"
	GroupFilter = "filter"

	// AttrHref is the in-page anchor a nav link scrolls to, e.g. "#games"
	AttrHref = "href"

	// AttrCategory is the filter value carried by filter buttons and game cards
	AttrCategory = "category"
)

// NavLinkID returns the nav link element for a section
func NavLinkID(section string) string {
	return "nav-" + section
}

// FilterButtonID returns the filter button element for a category
func FilterButtonID(category models.GameCategory) string {
	return "filter-" + string(category)
}

// PortalLayout returns the element set of the landing page
func PortalLayout() []*Element {
	layout := []*Element{
		{ID: SectionHome},
		{ID: SectionGames},
		{ID: SectionLeaderboard},
		{ID: ElementActivePlayers, Text: "0"},
		{ID: ElementGamesCount, Text: "0"},
		{ID: ElementTournaments, Text: "0"},
		{ID: ElementGamesGrid},
		{ID: ElementLeaderboardBody},
		{ID: models.ModalLogin.ElementID(), Hidden: true},
		{ID: models.ModalSignup.ElementID(), Hidden: true},
	}

	for i, section := range []string{SectionHome, SectionGames, SectionLeaderboard} {
		layout = append(layout, &Element{
			ID:     NavLinkID(section),
			Group:  GroupNav,
			Attrs:  map[string]string{AttrHref: "#" + section},
			Active: i == 0,
		})
	}

	categories := []models.GameCategory{
		models.GameCategoryAll,
		models.GameCategoryAction,
		models.GameCategoryStrategy,
		models.GameCategoryRPG,
	}
	for _, c := range categories {
		layout = append(layout, &Element{
			ID:     FilterButtonID(c),
			Group:  GroupFilter,
			Attrs:  map[string]string{AttrCategory: string(c)},
			Active: c == models.GameCategoryAll,
		})
	}

	return layout
}

// NewPortalDocument creates a document with the landing page layout
func NewPortalDocument() *Document {
	d, err := NewDocument(PortalLayout())
	if err != nil {
		// PortalLayout is static; a failure here is a programming error
		panic(err)
	}
	return d
}
