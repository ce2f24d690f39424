// Package game runs a snake game: it owns the snake, the food, the score
// and the tick interval, and tells a Display what changed.
package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/dharshanroshanth/snake/internal/ctxlog"
	"github.com/dharshanroshanth/snake/internal/snake"
)

// Controller holds one game session. It is not safe for concurrent use;
// frontends hand input over through a Mailbox and let a Loop drive ticks.
type Controller struct {
	settings Settings
	display  Display
	logger   *slog.Logger
	rng      *rand.Rand

	snake *snake.Snake
	food  snake.Cell
	score int
	over  bool
	speed time.Duration
}

// Option customizes a Controller.
type Option func(*Controller)

// WithRand sets the source used for food placement.
func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) {
		c.rng = rng
	}
}

// New validates settings and starts a fresh game. The logger is taken from
// ctx. A nil display is replaced with NopDisplay.
func New(ctx context.Context, settings Settings, display Display, opts ...Option) (*Controller, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if display == nil {
		display = NopDisplay{}
	}

	c := &Controller{
		settings: settings,
		display:  display,
		logger:   ctxlog.FromContext(ctx),
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		snake:    snake.New(settings.Start),
		speed:    settings.InitialSpeed,
	}
	for _, opt := range opts {
		opt(c)
	}

	food, ok := c.GenerateFood()
	if !ok {
		return nil, fmt.Errorf("%w: no free cell for food", ErrInvalidSettings)
	}
	c.food = food
	return c, nil
}

// GenerateFood picks a random cell not covered by the snake. It probes random
// cells first and, when those keep hitting the body, chooses uniformly among
// the free cells. It reports false only when the snake fills the grid.
func (c *Controller) GenerateFood() (snake.Cell, bool) {
	w, h := c.settings.Width, c.settings.Height
	for i := 0; i < c.settings.FoodAttempts; i++ {
		cell := snake.Cell{X: c.rng.IntN(w), Y: c.rng.IntN(h)}
		if !c.snake.Occupies(cell) {
			return cell, true
		}
	}

	free := make([]snake.Cell, 0, w*h-c.snake.Len())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cell := snake.Cell{X: x, Y: y}
			if !c.snake.Occupies(cell) {
				free = append(free, cell)
			}
		}
	}
	if len(free) == 0 {
		return snake.Cell{}, false
	}
	c.logger.Debug("Food placed from free cells.", "free", len(free), "attempts", c.settings.FoodAttempts)
	return free[c.rng.IntN(len(free))], true
}

// Update advances the game by one tick. It does nothing once the game is over.
func (c *Controller) Update() {
	if c.over {
		return
	}

	c.snake.Move()
	if c.snake.CheckCollision(c.settings.Width, c.settings.Height) {
		c.EndGame()
		return
	}

	head := c.snake.Head()
	if !head.In(c.settings.Width, c.settings.Height) {
		panic(fmt.Sprintf("game: head %v escaped the grid without a collision", head))
	}
	if head != c.food {
		return
	}

	c.score += c.settings.Points
	if c.score < 0 {
		panic(fmt.Sprintf("game: negative score %d", c.score))
	}
	c.display.ShowScore(c.score)
	c.snake.Grow()

	food, ok := c.GenerateFood()
	c.speed = max(c.settings.MinSpeed, c.speed-c.settings.SpeedStep)
	if !ok {
		c.logger.Info("Board is full.", "score", c.score)
		c.EndGame()
		return
	}
	c.food = food
	c.logger.Debug("Food eaten.", "score", c.score, "speed", c.speed, "food", c.food)
}

// EndGame marks the game lost and shows the final score.
func (c *Controller) EndGame() {
	c.over = true
	c.logger.Info("Game over.", "score", c.score, "length", c.snake.Len())
	c.display.ShowGameOver(true, c.score)
}

// Reset starts a new game on the same controller.
func (c *Controller) Reset() {
	c.snake.Reset()
	food, ok := c.GenerateFood()
	if !ok {
		// Validate guarantees at least one cell besides the start.
		panic("game: no free cell after reset")
	}
	c.food = food
	c.score = 0
	c.over = false
	c.speed = c.settings.InitialSpeed
	c.logger.Debug("Game reset.", "food", c.food)
	c.display.ShowGameOver(false, 0)
	c.display.ShowScore(0)
}

// Steer asks the snake to turn; see snake.Snake.Turn.
func (c *Controller) Steer(d snake.Direction) bool {
	ok := c.snake.Turn(d)
	if !ok {
		c.logger.Debug("Turn rejected.", "requested", d, "heading", c.snake.Heading())
	}
	return ok
}

// State returns a snapshot for renderers.
func (c *Controller) State() State {
	return State{
		Width:  c.settings.Width,
		Height: c.settings.Height,
		Body:   c.snake.Body(),
		Food:   c.food,
		Score:  c.score,
		Over:   c.over,
		Speed:  c.speed,
	}
}

func (c *Controller) Settings() Settings {
	return c.settings
}

func (c *Controller) Snake() *snake.Snake {
	return c.snake
}

func (c *Controller) Food() snake.Cell {
	return c.food
}

func (c *Controller) Score() int {
	return c.score
}

// Speed is the delay before the next tick.
func (c *Controller) Speed() time.Duration {
	return c.speed
}

func (c *Controller) IsOver() bool {
	return c.over
}
