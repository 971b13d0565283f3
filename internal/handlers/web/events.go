package web

import (
	"context"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/gameportal/internal/models"
	"github.com/KirkDiggler/gameportal/internal/services/controller"
	"github.com/KirkDiggler/gameportal/internal/services/portal"
)

// EventType is the kind of browser interaction sent over the live socket
type EventType string

const (
	EventFilter      EventType = "filter"
	EventNavigate    EventType = "navigate"
	EventScrollGames EventType = "scroll_games"
	EventOpenModal   EventType = "open_modal"
	EventCloseModal  EventType = "close_modal"
	EventClick       EventType = "click"
	EventLogin       EventType = "login"
	EventSignup      EventType = "signup"
	EventPlay        EventType = "play"
)

// Event is one browser interaction
type Event struct {
	Type   EventType         `json:"type"`
	Target string            `json:"target"`
	Fields map[string]string `json:"fields,omitempty"`
}

// dispatch routes an event to the session's controller
func dispatch(ctx context.Context, session *portal.Session, event *Event) error {
	c := session.Controller

	switch event.Type {
	case EventFilter:
		_, err := c.SelectFilter(ctx, &controller.SelectFilterInput{ButtonID: event.Target})
		return err
	case EventNavigate:
		return c.Navigate(ctx, &controller.NavigateInput{LinkID: event.Target})
	case EventScrollGames:
		return c.ScrollToGames(ctx)
	case EventOpenModal:
		return c.OpenModal(ctx, &controller.ModalInput{Modal: models.Modal(event.Target)})
	case EventCloseModal:
		return c.CloseModal(ctx, &controller.ModalInput{Modal: models.Modal(event.Target)})
	case EventClick:
		_, err := c.HandleClick(ctx, &controller.HandleClickInput{TargetID: event.Target})
		return err
	case EventLogin:
		_, err := c.SubmitLogin(ctx, &controller.SubmitInput{
			SessionID: session.ID,
			Fields:    event.Fields,
		})
		return err
	case EventSignup:
		_, err := c.SubmitSignup(ctx, &controller.SubmitInput{
			SessionID: session.ID,
			Fields:    event.Fields,
		})
		return err
	case EventPlay:
		gameID, err := strconv.Atoi(event.Target)
		if err != nil {
			return fmt.Errorf("invalid game id %q: %w", event.Target, err)
		}
		return c.PlayGame(ctx, &controller.PlayGameInput{GameID: gameID})
	default:
		return fmt.Errorf("unknown event type %q", event.Type)
	}
}
