package web

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/KirkDiggler/gameportal/internal/common/locale"
	"github.com/KirkDiggler/gameportal/internal/services/portal"
	"github.com/KirkDiggler/gameportal/internal/view"
	"github.com/gorilla/websocket"
)

const (
	writeWait = 10 * time.Second

	// patchBuffer bounds the patches queued for a slow socket
	patchBuffer = 256
)

func (s *Server) printerFor(r *http.Request) *locale.Printer {
	return locale.FromRequest(r, s.defaultPrinter)
}

// handleLive upgrades to a websocket and runs one visitor session on it.
// Patches flow out through a single writer; events are handled in arrival order.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	printer := s.printerFor(r)

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	session, err := s.factory.NewSession(ctx, &portal.NewSessionInput{Printer: printer})
	if err != nil {
		slog.Error("failed to create session", "error", err)
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "session unavailable"),
			time.Now().Add(writeWait))
		return
	}

	logger := slog.With("session_id", session.ID)
	logger.Info("live session opened", "locale", printer.Tag().String())

	patches := make(chan view.Patch, patchBuffer)
	unsubscribe := session.Document.Subscribe(func(p view.Patch) {
		select {
		case patches <- p:
		default:
			logger.Warn("patch buffer full, dropping session")
			cancel()
		}
	})

	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		s.writePatches(ctx, cancel, conn, patches, logger)
	}()

	go func() {
		if _, err := session.Boot(ctx); err != nil {
			logger.Error("session boot failed", "error", err)
		}
	}()

	s.readEvents(ctx, cancel, conn, session, logger)

	unsubscribe()
	close(patches)
	<-writerDone

	closeCtx, closeCancel := context.WithTimeout(context.Background(), writeWait)
	defer closeCancel()
	if err := session.Close(closeCtx); err != nil {
		logger.Warn("failed to close session", "error", err)
	}
	logger.Info("live session closed")
}

// writePatches is the only goroutine that writes data frames to conn
func (s *Server) writePatches(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, patches <-chan view.Patch, logger *slog.Logger) {
	for {
		select {
		case <-ctx.Done():
			// Unblock the reader
			_ = conn.SetReadDeadline(time.Now())
			for range patches {
			}
			return
		case p, ok := <-patches:
			if !ok {
				return
			}
			if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				cancel()
				continue
			}
			if err := conn.WriteJSON(p); err != nil {
				logger.Debug("patch write failed", "error", err)
				cancel()
			}
		}
	}
}

// readEvents handles browser events until the socket closes or ctx ends
func (s *Server) readEvents(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, session *portal.Session, logger *slog.Logger) {
	defer cancel()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) && ctx.Err() == nil {
				logger.Debug("live socket read failed", "error", err)
			}
			return
		}

		var event Event
		if err := json.Unmarshal(data, &event); err != nil {
			logger.Warn("malformed event", "error", err)
			continue
		}

		if err := dispatch(ctx, session, &event); err != nil {
			logger.Warn("failed to handle event",
				"type", event.Type,
				"target", event.Target,
				"error", err)
		}
	}
}
