package web

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/dharshanroshanth/snake/internal/ctxlog"
	"github.com/dharshanroshanth/snake/internal/game"
	"github.com/dharshanroshanth/snake/internal/snake"
	"github.com/gorilla/websocket"
)

const maxMessageSize = 512

// session is one browser tab playing one game.
type session struct {
	id      string
	conn    *websocket.Conn
	ctrl    *game.Controller
	loop    *game.Loop
	display *socketDisplay
	logger  *slog.Logger
}

func newSession(ctx context.Context, id string, conn *websocket.Conn, settings game.Settings) (*session, error) {
	logger := ctxlog.FromContext(ctx).With("session", id, "remote_addr", conn.RemoteAddr().String())
	ctx = ctxlog.WithLogger(ctx, logger)

	display := &socketDisplay{conn: conn}
	ctrl, err := game.New(ctx, settings, display)
	if err != nil {
		return nil, err
	}
	return &session{
		id:      id,
		conn:    conn,
		ctrl:    ctrl,
		loop:    game.NewLoop(ctrl, display, nil),
		display: display,
		logger:  logger,
	}, nil
}

// run plays until ctx is done, the browser goes away or a write fails.
func (s *session) run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.display.onError = func(err error) {
		s.logger.Info("Write to browser failed, ending session.", "error", err)
		cancel()
	}
	s.conn.SetReadLimit(maxMessageSize)
	s.conn.SetCloseHandler(func(code int, text string) error {
		s.logger.Info("Connection closed by browser.", "code", code)
		err := s.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(code, ""), time.Now().Add(writeWait))
		if err != nil {
			s.logger.Debug("Failed to echo close frame.", "error", err)
		}
		cancel()
		return nil
	})

	go s.readLoop(cancel)

	s.logger.Info("Session started.")
	s.display.ShowScore(0)
	err := s.loop.Run(ctx)
	s.logger.Info("Session ended.", "score", s.ctrl.Score(), "reason", err)
}

// readLoop forwards key presses and reset requests to the game loop. It
// never touches the controller directly.
func (s *session) readLoop(cancel context.CancelFunc) {
	defer cancel()
	for {
		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			s.logger.Debug("Stopped reading from browser.", "error", err)
			return
		}

		var req request
		if err := json.Unmarshal(msg, &req); err != nil {
			s.logger.Debug("Ignoring malformed message.", "error", err)
			continue
		}
		if req.Action == "reset" {
			s.loop.RequestReset()
			continue
		}
		if d, ok := snake.ParseDirection(req.Direction); ok {
			s.loop.Input().Post(d)
		}
	}
}
