// Package config loads game and server settings from an optional HCL file.
//
// Every block and attribute is optional; anything left out keeps the value
// from Default, except the snake start, which defaults to the middle of the
// configured grid. Expressions can read the process environment through the
// env variable, e.g. `address = env.SNEK_ADDR`.
//
//	grid {
//	  width     = 20
//	  height    = 20
//	  cell_size = 20
//	}
//	snake {
//	  start_x = 10
//	  start_y = 10
//	}
//	speed {
//	  initial = "200ms"
//	  minimum = "50ms"
//	  step    = "5ms"
//	}
//	food {
//	  points       = 10
//	  max_attempts = 64
//	}
//	loop {
//	  stop_on_game_over = false
//	}
//	server {
//	  address      = ":10000"
//	  max_sessions = 16
//	}
package config

import (
	"errors"
	"fmt"

	"github.com/dharshanroshanth/snake/internal/game"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid configuration")

// Config is everything the entrypoints need.
type Config struct {
	Game game.Settings

	// CellSize is the edge of one grid cell in pixels for the web and desktop
	// frontends.
	CellSize int

	Server Server
}

type Server struct {
	Address     string
	MaxSessions int
}

func Default() Config {
	return Config{
		Game:     game.DefaultSettings(),
		CellSize: 20,
		Server: Server{
			Address:     ":10000",
			MaxSessions: 16,
		},
	}
}

func (c Config) Validate() error {
	if err := c.Game.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell_size must be positive, got %d", ErrInvalid, c.CellSize)
	}
	if c.Server.Address == "" {
		return fmt.Errorf("%w: server address must not be empty", ErrInvalid)
	}
	if c.Server.MaxSessions <= 0 {
		return fmt.Errorf("%w: max_sessions must be positive, got %d", ErrInvalid, c.Server.MaxSessions)
	}
	return nil
}

// CanvasSize is the pixel size of the board.
func (c Config) CanvasSize() (width, height int) {
	return c.Game.Width * c.CellSize, c.Game.Height * c.CellSize
}
