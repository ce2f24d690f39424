package game

import (
	"sync/atomic"

	"github.com/dharshanroshanth/snake/internal/snake"
)

// Mailbox holds the last direction requested by the player. Input goroutines
// Post to it while the tick goroutine Takes from it; a newer request replaces
// an older one that was not taken yet.
type Mailbox struct {
	slot atomic.Pointer[snake.Direction]
}

func (m *Mailbox) Post(d snake.Direction) {
	m.slot.Store(&d)
}

// Take empties the mailbox and returns what was in it.
func (m *Mailbox) Take() (snake.Direction, bool) {
	d := m.slot.Swap(nil)
	if d == nil {
		return snake.None, false
	}
	return *d, true
}
