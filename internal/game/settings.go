package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/dharshanroshanth/snake/internal/snake"
)

// ErrInvalidSettings is wrapped by every error returned from Settings.Validate.
var ErrInvalidSettings = errors.New("invalid game settings")

// Settings are the fixed parameters of a game session.
type Settings struct {
	Width  int
	Height int
	Start  snake.Cell

	// InitialSpeed is the first tick interval. Each food eaten shortens it by
	// SpeedStep, down to MinSpeed.
	InitialSpeed time.Duration
	MinSpeed     time.Duration
	SpeedStep    time.Duration

	Points int

	// FoodAttempts bounds the random probes made before food placement falls
	// back to picking from the list of free cells.
	FoodAttempts int

	// StopOnGameOver makes Loop.Run park after the game ends instead of
	// ticking a no-op update until reset.
	StopOnGameOver bool
}

// DefaultSettings matches a 400x400 canvas split into 20px cells.
func DefaultSettings() Settings {
	return Settings{
		Width:        20,
		Height:       20,
		Start:        snake.Cell{X: 10, Y: 10},
		InitialSpeed: 200 * time.Millisecond,
		MinSpeed:     50 * time.Millisecond,
		SpeedStep:    5 * time.Millisecond,
		Points:       10,
		FoodAttempts: 64,
	}
}

func (s Settings) Validate() error {
	switch {
	case s.Width <= 0 || s.Height <= 0:
		return fmt.Errorf("%w: grid must be positive, got %dx%d", ErrInvalidSettings, s.Width, s.Height)
	case s.Width*s.Height < 2:
		return fmt.Errorf("%w: grid needs room for the snake and its food, got %dx%d", ErrInvalidSettings, s.Width, s.Height)
	case !s.Start.In(s.Width, s.Height):
		return fmt.Errorf("%w: start %v is outside the %dx%d grid", ErrInvalidSettings, s.Start, s.Width, s.Height)
	case s.MinSpeed <= 0:
		return fmt.Errorf("%w: minimum speed must be positive, got %s", ErrInvalidSettings, s.MinSpeed)
	case s.InitialSpeed < s.MinSpeed:
		return fmt.Errorf("%w: initial speed %s is faster than minimum %s", ErrInvalidSettings, s.InitialSpeed, s.MinSpeed)
	case s.SpeedStep < 0:
		return fmt.Errorf("%w: speed step must not be negative, got %s", ErrInvalidSettings, s.SpeedStep)
	case s.Points <= 0:
		return fmt.Errorf("%w: points per food must be positive, got %d", ErrInvalidSettings, s.Points)
	case s.FoodAttempts < 0:
		return fmt.Errorf("%w: food attempts must not be negative, got %d", ErrInvalidSettings, s.FoodAttempts)
	}
	return nil
}
