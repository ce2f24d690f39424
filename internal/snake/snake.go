// Package snake holds the snake itself: its body on the grid, where it is
// heading and the rules for turning it.
package snake

import "slices"

// Snake is the player's body. Body[0] is the head.
//
// Snake is not safe for concurrent use; it is owned by the goroutine that
// runs the game ticks.
type Snake struct {
	start   Cell
	body    []Cell
	heading Direction
	pending Direction
	growing bool
}

// New returns a one-cell snake at start, heading right.
func New(start Cell) *Snake {
	s := &Snake{start: start}
	s.Reset()
	return s
}

// Reset puts the snake back at its start cell with a single segment.
func (s *Snake) Reset() {
	s.body = []Cell{s.start}
	s.heading = Right
	s.pending = Right
	s.growing = false
}

// Move applies the pending heading and advances the head one cell. The tail
// is dropped unless Grow was called since the previous move. No bounds are
// checked here; see CheckCollision.
func (s *Snake) Move() {
	s.heading = s.pending
	head := s.body[0].Add(s.heading)
	s.body = slices.Insert(s.body, 0, head)
	if s.growing {
		s.growing = false
		return
	}
	s.body = s.body[:len(s.body)-1]
}

// Grow makes the next Move keep the tail.
func (s *Snake) Grow() {
	s.growing = true
}

// CheckCollision reports whether the head left the width x height grid or
// landed on another segment of the body.
func (s *Snake) CheckCollision(width, height int) bool {
	head := s.body[0]
	if !head.In(width, height) {
		return true
	}
	return slices.Contains(s.body[1:], head)
}

// Turn requests a new heading for the next Move. Up and down are only
// accepted while the snake moves horizontally, left and right only while it
// moves vertically, so the snake can never reverse into its own neck. A
// rejected request leaves the pending heading untouched. Later accepted
// requests overwrite earlier ones.
func (s *Snake) Turn(d Direction) bool {
	if !d.IsUnit() {
		return false
	}
	if d.Y != 0 && s.heading.Y != 0 {
		return false
	}
	if d.X != 0 && s.heading.X != 0 {
		return false
	}
	s.pending = d
	return true
}

func (s *Snake) Head() Cell {
	return s.body[0]
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []Cell {
	return slices.Clone(s.body)
}

func (s *Snake) Len() int {
	return len(s.body)
}

func (s *Snake) Heading() Direction {
	return s.heading
}

func (s *Snake) Pending() Direction {
	return s.pending
}

func (s *Snake) Growing() bool {
	return s.growing
}

// Occupies reports whether any segment sits on c.
func (s *Snake) Occupies(c Cell) bool {
	return slices.Contains(s.body, c)
}
