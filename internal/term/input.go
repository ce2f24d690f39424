package term

import (
	"github.com/dharshanroshanth/snake/internal/snake"
	"github.com/gdamore/tcell/v2"
)

type action int

const (
	actionNone action = iota
	actionSteer
	actionReset
	actionQuit
)

// keyAction decides what a key press means. Steering keys also return the
// requested direction.
func keyAction(key tcell.Key, r rune, mod tcell.ModMask) (action, snake.Direction) {
	switch key {
	case tcell.KeyUp:
		return actionSteer, snake.Up
	case tcell.KeyDown:
		return actionSteer, snake.Down
	case tcell.KeyLeft:
		return actionSteer, snake.Left
	case tcell.KeyRight:
		return actionSteer, snake.Right
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit, snake.None
	case tcell.KeyRune:
		if mod&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return actionNone, snake.None
		}
		switch r {
		case 'q', 'Q':
			return actionQuit, snake.None
		case 'r', 'R':
			return actionReset, snake.None
		}
		if d, ok := snake.ParseDirection(string(r)); ok {
			return actionSteer, d
		}
	}
	return actionNone, snake.None
}
