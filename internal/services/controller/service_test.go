package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/gameportal/internal/models"
	"github.com/KirkDiggler/gameportal/internal/repositories/token"
	tokenmocks "github.com/KirkDiggler/gameportal/internal/repositories/token/mocks"
	"github.com/KirkDiggler/gameportal/internal/services/auth"
	authmocks "github.com/KirkDiggler/gameportal/internal/services/auth/mocks"
	"github.com/KirkDiggler/gameportal/internal/view"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ControllerTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockAuth   *authmocks.MockClient
	mockTokens *tokenmocks.MockRepository
	doc        *view.Document
	controller Controller
	ctx        context.Context
}

func (s *ControllerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockAuth = authmocks.NewMockClient(s.mockCtrl)
	s.mockTokens = tokenmocks.NewMockRepository(s.mockCtrl)
	s.doc = view.NewPortalDocument()
	s.ctx = context.Background()

	c, err := New(&Config{
		View:   s.doc,
		Auth:   s.mockAuth,
		Tokens: s.mockTokens,
	})
	s.Require().NoError(err)
	s.controller = c
}

func (s *ControllerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestControllerTestSuite(t *testing.T) {
	suite.Run(t, new(ControllerTestSuite))
}

func (s *ControllerTestSuite) setGames(categories ...models.GameCategory) {
	fragments := make([]*view.Fragment, 0, len(categories))
	for i, c := range categories {
		fragments = append(fragments, &view.Fragment{
			ID:   "game-" + string(rune('a'+i)),
			Data: map[string]string{view.AttrCategory: string(c)},
		})
	}
	s.Require().NoError(s.doc.ReplaceChildren(view.ElementGamesGrid, fragments))
}

func (s *ControllerTestSuite) visible(id string) bool {
	v, err := s.doc.Visible(id)
	s.Require().NoError(err)
	return v
}

func (s *ControllerTestSuite) active(id string) bool {
	a, err := s.doc.Active(id)
	s.Require().NoError(err)
	return a
}

func (s *ControllerTestSuite) TestSelectFilterShowsMatchingCategory() {
	s.setGames(models.GameCategoryAction, models.GameCategoryAction, models.GameCategoryRPG)

	out, err := s.controller.SelectFilter(s.ctx, &SelectFilterInput{
		ButtonID: view.FilterButtonID(models.GameCategoryAction),
	})
	s.Require().NoError(err)
	s.Equal(models.GameCategoryAction, out.Category)
	s.Equal([]string{"game-a", "game-b"}, out.Shown)
	s.True(s.visible("game-a"))
	s.True(s.visible("game-b"))
	s.False(s.visible("game-c"))

	s.True(s.active(view.FilterButtonID(models.GameCategoryAction)))
	s.False(s.active(view.FilterButtonID(models.GameCategoryAll)))
}

func (s *ControllerTestSuite) TestSelectFilterAllShowsEverything() {
	s.setGames(models.GameCategoryAction, models.GameCategoryAction, models.GameCategoryRPG)

	_, err := s.controller.SelectFilter(s.ctx, &SelectFilterInput{
		ButtonID: view.FilterButtonID(models.GameCategoryRPG),
	})
	s.Require().NoError(err)

	out, err := s.controller.SelectFilter(s.ctx, &SelectFilterInput{
		ButtonID: view.FilterButtonID(models.GameCategoryAll),
	})
	s.Require().NoError(err)
	s.Len(out.Shown, 3)
	for _, id := range []string{"game-a", "game-b", "game-c"} {
		s.True(s.visible(id), id)
	}
	s.True(s.active(view.FilterButtonID(models.GameCategoryAll)))
	s.False(s.active(view.FilterButtonID(models.GameCategoryRPG)))
}

func (s *ControllerTestSuite) TestSelectFilterNoMatches() {
	s.setGames(models.GameCategoryAction, models.GameCategoryRPG)

	out, err := s.controller.SelectFilter(s.ctx, &SelectFilterInput{
		ButtonID: view.FilterButtonID(models.GameCategoryStrategy),
	})
	s.Require().NoError(err)
	s.Empty(out.Shown)
}

func (s *ControllerTestSuite) TestSelectFilterErrors() {
	_, err := s.controller.SelectFilter(s.ctx, nil)
	s.Equal(ErrNilInput, err)

	_, err = s.controller.SelectFilter(s.ctx, &SelectFilterInput{})
	s.Equal(ErrEmptyButtonID, err)

	_, err = s.controller.SelectFilter(s.ctx, &SelectFilterInput{ButtonID: "filter-missing"})
	s.ErrorIs(err, view.ErrElementNotFound)
}

func (s *ControllerTestSuite) TestSelectFilterRejectsNonFilterElement() {
	s.setGames(models.GameCategoryAction, models.GameCategoryRPG)

	for _, id := range []string{view.NavLinkID(view.SectionHome), view.NavLinkID(view.SectionGames), view.SectionGames} {
		s.Run(id, func() {
			out, err := s.controller.SelectFilter(s.ctx, &SelectFilterInput{ButtonID: id})
			s.Equal(ErrNotFilter, err)
			s.Nil(out)

			s.True(s.active(view.NavLinkID(view.SectionHome)))
			s.False(s.active(view.NavLinkID(view.SectionGames)))
			s.True(s.active(view.FilterButtonID(models.GameCategoryAll)))
			s.True(s.visible("game-a"))
			s.True(s.visible("game-b"))
		})
	}
}

func (s *ControllerTestSuite) TestNavigate() {
	err := s.controller.Navigate(s.ctx, &NavigateInput{LinkID: view.NavLinkID(view.SectionLeaderboard)})
	s.Require().NoError(err)

	s.Equal(view.SectionLeaderboard, s.doc.ScrolledTo())
	s.True(s.active(view.NavLinkID(view.SectionLeaderboard)))
	s.False(s.active(view.NavLinkID(view.SectionHome)))
}

func (s *ControllerTestSuite) TestNavigateErrors() {
	s.Equal(ErrNilInput, s.controller.Navigate(s.ctx, nil))
	s.Equal(ErrEmptyLinkID, s.controller.Navigate(s.ctx, &NavigateInput{}))

	// The games section has no href
	s.Equal(ErrInvalidHref, s.controller.Navigate(s.ctx, &NavigateInput{LinkID: view.SectionGames}))
	s.True(s.active(view.NavLinkID(view.SectionHome)))
}

func (s *ControllerTestSuite) TestScrollToGames() {
	s.Require().NoError(s.controller.ScrollToGames(s.ctx))
	s.Equal(view.SectionGames, s.doc.ScrolledTo())
}

func (s *ControllerTestSuite) TestModalStateMachine() {
	login := &ModalInput{Modal: models.ModalLogin}

	state, err := s.controller.ModalState(s.ctx, login)
	s.Require().NoError(err)
	s.Equal(models.ModalStateHidden, state)

	s.Require().NoError(s.controller.OpenModal(s.ctx, login))
	s.Require().NoError(s.controller.OpenModal(s.ctx, login))
	state, err = s.controller.ModalState(s.ctx, login)
	s.Require().NoError(err)
	s.Equal(models.ModalStateVisible, state)

	// The other dialog is untouched
	s.False(s.visible(models.ModalSignup.ElementID()))

	s.Require().NoError(s.controller.CloseModal(s.ctx, login))
	state, err = s.controller.ModalState(s.ctx, login)
	s.Require().NoError(err)
	s.Equal(models.ModalStateHidden, state)
}

func (s *ControllerTestSuite) TestModalErrors() {
	s.Equal(ErrNilInput, s.controller.OpenModal(s.ctx, nil))
	s.Equal(ErrInvalidModal, s.controller.OpenModal(s.ctx, &ModalInput{Modal: "profile"}))
	s.Equal(ErrInvalidModal, s.controller.CloseModal(s.ctx, &ModalInput{}))
}

func (s *ControllerTestSuite) TestHandleClickOnBackdropClosesModal() {
	s.Require().NoError(s.controller.OpenModal(s.ctx, &ModalInput{Modal: models.ModalSignup}))

	out, err := s.controller.HandleClick(s.ctx, &HandleClickInput{TargetID: models.ModalSignup.ElementID()})
	s.Require().NoError(err)
	s.Equal(models.ModalSignup, out.Closed)
	s.False(s.visible(models.ModalSignup.ElementID()))
}

func (s *ControllerTestSuite) TestHandleClickElsewhereKeepsModal() {
	s.Require().NoError(s.controller.OpenModal(s.ctx, &ModalInput{Modal: models.ModalLogin}))

	for _, target := range []string{"loginForm", models.ModalSignup.ElementID(), ""} {
		out, err := s.controller.HandleClick(s.ctx, &HandleClickInput{TargetID: target})
		s.Require().NoError(err)
		s.Empty(out.Closed)
	}
	s.True(s.visible(models.ModalLogin.ElementID()))
}

func (s *ControllerTestSuite) TestSubmitLoginSuccess() {
	fields := map[string]string{"email": "a@b.com", "password": "secret"}
	s.Require().NoError(s.controller.OpenModal(s.ctx, &ModalInput{Modal: models.ModalLogin}))

	s.mockAuth.EXPECT().
		Login(s.ctx, &auth.SubmitInput{Fields: fields}).
		Return(&models.AuthResponse{Success: true, Message: "Welcome back!", Token: "tok-123"}, nil)
	s.mockTokens.EXPECT().
		SaveToken(s.ctx, &token.SaveTokenInput{SessionID: "session-1", Token: "tok-123"}).
		Return(nil)

	out, err := s.controller.SubmitLogin(s.ctx, &SubmitInput{SessionID: "session-1", Fields: fields})
	s.Require().NoError(err)
	s.True(out.Success)
	s.Equal([]string{"Welcome back!"}, s.doc.Alerts())
	s.False(s.visible(models.ModalLogin.ElementID()))
}

func (s *ControllerTestSuite) TestSubmitLoginSuccessWithoutToken() {
	s.mockAuth.EXPECT().
		Login(s.ctx, gomock.Any()).
		Return(&models.AuthResponse{Success: true, Message: "Welcome back!"}, nil)

	out, err := s.controller.SubmitLogin(s.ctx, &SubmitInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.True(out.Success)
}

func (s *ControllerTestSuite) TestSubmitLoginTokenStoreFailureStillCompletes() {
	s.mockAuth.EXPECT().
		Login(s.ctx, gomock.Any()).
		Return(&models.AuthResponse{Success: true, Message: "Welcome back!", Token: "tok"}, nil)
	s.mockTokens.EXPECT().
		SaveToken(s.ctx, gomock.Any()).
		Return(errors.New("redis down"))

	out, err := s.controller.SubmitLogin(s.ctx, &SubmitInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.True(out.Success)
	s.Equal([]string{"Welcome back!"}, s.doc.Alerts())
}

func (s *ControllerTestSuite) TestSubmitLoginRejected() {
	s.Require().NoError(s.controller.OpenModal(s.ctx, &ModalInput{Modal: models.ModalLogin}))

	s.mockAuth.EXPECT().
		Login(s.ctx, gomock.Any()).
		Return(&models.AuthResponse{Success: false, Message: "Invalid credentials"}, nil)

	out, err := s.controller.SubmitLogin(s.ctx, &SubmitInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.False(out.Success)
	s.Equal([]string{"Invalid credentials"}, s.doc.Alerts())
	s.True(s.visible(models.ModalLogin.ElementID()))
}

func (s *ControllerTestSuite) TestSubmitLoginNetworkError() {
	s.mockAuth.EXPECT().
		Login(s.ctx, gomock.Any()).
		Return(nil, errors.New("connection refused"))

	out, err := s.controller.SubmitLogin(s.ctx, &SubmitInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.False(out.Success)
	s.Equal([]string{MessageLoginNetworkError}, s.doc.Alerts())
}

func (s *ControllerTestSuite) TestSubmitLoginRequiresSession() {
	_, err := s.controller.SubmitLogin(s.ctx, &SubmitInput{})
	s.Equal(ErrEmptySessionID, err)

	_, err = s.controller.SubmitLogin(s.ctx, nil)
	s.Equal(ErrNilInput, err)
}

func (s *ControllerTestSuite) TestSubmitSignupSuccessOpensLogin() {
	s.Require().NoError(s.controller.OpenModal(s.ctx, &ModalInput{Modal: models.ModalSignup}))

	s.mockAuth.EXPECT().
		Signup(s.ctx, gomock.Any()).
		Return(&models.AuthResponse{Success: true, Message: "Account created"}, nil)

	out, err := s.controller.SubmitSignup(s.ctx, &SubmitInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.True(out.Success)
	s.Equal([]string{"Account created"}, s.doc.Alerts())
	s.False(s.visible(models.ModalSignup.ElementID()))
	s.True(s.visible(models.ModalLogin.ElementID()))
}

func (s *ControllerTestSuite) TestSubmitSignupRejected() {
	s.Require().NoError(s.controller.OpenModal(s.ctx, &ModalInput{Modal: models.ModalSignup}))

	s.mockAuth.EXPECT().
		Signup(s.ctx, gomock.Any()).
		Return(&models.AuthResponse{Success: false, Message: "Username taken"}, nil)

	out, err := s.controller.SubmitSignup(s.ctx, &SubmitInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.False(out.Success)
	s.Equal([]string{"Username taken"}, s.doc.Alerts())
	s.True(s.visible(models.ModalSignup.ElementID()))
	s.False(s.visible(models.ModalLogin.ElementID()))
}

func (s *ControllerTestSuite) TestSubmitSignupNetworkError() {
	s.mockAuth.EXPECT().
		Signup(s.ctx, gomock.Any()).
		Return(nil, errors.New("not json"))

	_, err := s.controller.SubmitSignup(s.ctx, &SubmitInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.Equal([]string{MessageSignupNetworkError}, s.doc.Alerts())
}

func (s *ControllerTestSuite) TestPlayGame() {
	s.Require().NoError(s.controller.PlayGame(s.ctx, &PlayGameInput{GameID: 3}))
	s.Equal([]string{"Launching game 3! (This would redirect to the game)"}, s.doc.Alerts())

	s.Equal(ErrNilInput, s.controller.PlayGame(s.ctx, nil))
}

func (s *ControllerTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{Auth: s.mockAuth, Tokens: s.mockTokens})
	s.Equal(ErrNilView, err)

	_, err = New(&Config{View: s.doc, Tokens: s.mockTokens})
	s.Equal(ErrNilAuth, err)

	_, err = New(&Config{View: s.doc, Auth: s.mockAuth})
	s.Equal(ErrNilTokens, err)
}
