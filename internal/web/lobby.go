package web

import (
	"sync"

	"github.com/google/uuid"
)

// Lobby keeps track of the running sessions, one per connected browser tab.
type Lobby struct {
	mu       sync.Mutex
	max      int
	sessions map[string]struct{}
}

func NewLobby(size int) *Lobby {
	return &Lobby{
		max:      size,
		sessions: make(map[string]struct{}),
	}
}

// Join reserves a seat and returns the new session id. It reports false when
// the lobby is full.
func (l *Lobby) Join() (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.sessions) >= l.max {
		return "", false
	}
	id := uuid.New().String()
	l.sessions[id] = struct{}{}
	return id, true
}

func (l *Lobby) Leave(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.sessions, id)
}

func (l *Lobby) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.sessions)
}
