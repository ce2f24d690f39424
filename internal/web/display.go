package web

import (
	"time"

	"github.com/dharshanroshanth/snake/internal/game"
	"github.com/dharshanroshanth/snake/internal/snake"
	"github.com/gorilla/websocket"
)

const writeWait = time.Second

// Message types sent to the browser.
const (
	typeFrame    = "frame"
	typeScore    = "score"
	typeGameOver = "gameover"
	typeFull     = "full"
)

// message is the envelope for everything sent down the socket.
type message struct {
	Type    string       `json:"type"`
	Width   int          `json:"width,omitempty"`
	Height  int          `json:"height,omitempty"`
	Body    []snake.Cell `json:"body,omitempty"`
	Food    *snake.Cell  `json:"food,omitempty"`
	Score   int          `json:"score"`
	Visible bool         `json:"visible"`
}

// request is what the browser sends up the socket.
type request struct {
	Direction string `json:"direction"`
	Action    string `json:"action"`
}

// socketDisplay is a game.Display that serializes every call as JSON onto a
// websocket. Only the session's loop goroutine may use it. The first write
// error is handed to onError and later calls are dropped.
type socketDisplay struct {
	conn    *websocket.Conn
	onError func(error)
	err     error
}

var _ game.Display = (*socketDisplay)(nil)

func (d *socketDisplay) Draw(s game.State) {
	food := s.Food
	d.send(message{
		Type:   typeFrame,
		Width:  s.Width,
		Height: s.Height,
		Body:   s.Body,
		Food:   &food,
		Score:  s.Score,
	})
}

func (d *socketDisplay) ShowScore(score int) {
	d.send(message{Type: typeScore, Score: score})
}

func (d *socketDisplay) ShowGameOver(visible bool, score int) {
	d.send(message{Type: typeGameOver, Visible: visible, Score: score})
}

func (d *socketDisplay) send(msg message) {
	if d.err != nil {
		return
	}
	if err := writeJSON(d.conn, msg); err != nil {
		d.err = err
		if d.onError != nil {
			d.onError(err)
		}
	}
}

func writeJSON(conn *websocket.Conn, v any) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteJSON(v)
}
