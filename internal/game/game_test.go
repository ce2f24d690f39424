package game

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/dharshanroshanth/snake/internal/ctxlog"
	"github.com/dharshanroshanth/snake/internal/snake"
	"github.com/stretchr/testify/require"
)

// recorder is a Display that remembers every call.
type recorder struct {
	frames   []State
	scores   []int
	gameOver []gameOverCall
}

type gameOverCall struct {
	visible bool
	score   int
}

func (r *recorder) Draw(s State)        { r.frames = append(r.frames, s) }
func (r *recorder) ShowScore(score int) { r.scores = append(r.scores, score) }
func (r *recorder) ShowGameOver(visible bool, score int) {
	r.gameOver = append(r.gameOver, gameOverCall{visible: visible, score: score})
}

func seeded(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x5eed)))
}

func newTestController(t *testing.T, settings Settings) (*Controller, *recorder) {
	t.Helper()
	rec := &recorder{}
	c, err := New(ctxlog.Discard(), settings, rec, seeded(1))
	require.NoError(t, err)
	return c, rec
}

func smallSettings() Settings {
	s := DefaultSettings()
	s.Width, s.Height = 5, 5
	s.Start = snake.Cell{X: 2, Y: 2}
	return s
}

// fakeClock hands out ready channels and cancels the run after limit ticks.
type fakeClock struct {
	waits  []time.Duration
	limit  int
	cancel func()
}

func (f *fakeClock) After(d time.Duration) <-chan time.Time {
	f.waits = append(f.waits, d)
	if len(f.waits) >= f.limit {
		f.cancel()
		return nil
	}
	ch := make(chan time.Time, 1)
	ch <- time.Time{}
	return ch
}
