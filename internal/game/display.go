package game

import (
	"time"

	"github.com/dharshanroshanth/snake/internal/snake"
)

// State is a snapshot of a game handed to renderers. It shares nothing with
// the controller, so it may be kept or sent to another goroutine.
type State struct {
	Width  int           `json:"width"`
	Height int           `json:"height"`
	Body   []snake.Cell  `json:"body"`
	Food   snake.Cell    `json:"food"`
	Score  int           `json:"score"`
	Over   bool          `json:"over"`
	Speed  time.Duration `json:"-"`
}

// Renderer redraws the whole scene. It is called once per tick.
type Renderer interface {
	Draw(State)
}

// ScoreDisplay shows the running score.
type ScoreDisplay interface {
	ShowScore(score int)
}

// GameOverDisplay toggles the game-over panel.
type GameOverDisplay interface {
	ShowGameOver(visible bool, score int)
}

// Display is everything a frontend has to provide.
type Display interface {
	Renderer
	ScoreDisplay
	GameOverDisplay
}

// NopDisplay ignores every call.
type NopDisplay struct{}

func (NopDisplay) Draw(State)             {}
func (NopDisplay) ShowScore(int)          {}
func (NopDisplay) ShowGameOver(bool, int) {}
