package snake

import "strings"

// Cell is a position on the grid, measured in cells.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the cell one step away from c in direction d.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// In reports whether c lies inside a width x height grid.
func (c Cell) In(width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

// Direction is a unit step per tick. Y grows downwards, like a canvas.
type Direction struct {
	X int `json:"x"`
	Y int `json:"y"`
}

var (
	None  = Direction{}
	Up    = Direction{X: 0, Y: -1}
	Down  = Direction{X: 0, Y: 1}
	Left  = Direction{X: -1, Y: 0}
	Right = Direction{X: 1, Y: 0}
)

// IsUnit reports whether d is one of the four axis-aligned steps.
func (d Direction) IsUnit() bool {
	return (d.X == 0) != (d.Y == 0) && d.X*d.X+d.Y*d.Y == 1
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case None:
		return "none"
	}
	return "invalid"
}

// ParseDirection maps a key name coming from a frontend to a direction.
// Names are case-insensitive; arrow key names ("ArrowUp") and WASD are
// accepted alongside the plain ones.
func ParseDirection(name string) (Direction, bool) {
	switch strings.ToLower(name) {
	case "up", "arrowup", "w":
		return Up, true
	case "down", "arrowdown", "s":
		return Down, true
	case "left", "arrowleft", "a":
		return Left, true
	case "right", "arrowright", "d":
		return Right, true
	}
	return None, false
}
