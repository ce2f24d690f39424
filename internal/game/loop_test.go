package game

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dharshanroshanth/snake/internal/snake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailbox(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var m Mailbox
		_, ok := m.Take()
		assert.False(t, ok)
	})

	t.Run("last write wins", func(t *testing.T) {
		var m Mailbox
		m.Post(snake.Up)
		m.Post(snake.Left)
		d, ok := m.Take()
		require.True(t, ok)
		assert.Equal(t, snake.Left, d)

		_, ok = m.Take()
		assert.False(t, ok, "take empties the slot")
	})

	t.Run("concurrent posts", func(t *testing.T) {
		var m Mailbox
		var wg sync.WaitGroup
		for _, d := range []snake.Direction{snake.Up, snake.Down, snake.Left, snake.Right} {
			wg.Add(1)
			go func(d snake.Direction) {
				defer wg.Done()
				for i := 0; i < 100; i++ {
					m.Post(d)
				}
			}(d)
		}
		wg.Wait()
		d, ok := m.Take()
		require.True(t, ok)
		assert.True(t, d.IsUnit())
	})
}

func TestLoopStep(t *testing.T) {
	t.Run("applies input then draws", func(t *testing.T) {
		c, rec := newTestController(t, DefaultSettings())
		c.food = snake.Cell{X: 0, Y: 0}
		l := NewLoop(c, rec, nil)

		l.Input().Post(snake.Up)
		l.Step()

		require.Len(t, rec.frames, 1)
		assert.Equal(t, snake.Cell{X: 10, Y: 9}, rec.frames[0].Body[0])
	})

	t.Run("only the last request between ticks counts", func(t *testing.T) {
		c, _ := newTestController(t, DefaultSettings())
		c.food = snake.Cell{X: 0, Y: 0}
		l := NewLoop(c, nil, nil)

		l.Input().Post(snake.Up)
		l.Input().Post(snake.Left)
		l.Step()

		assert.Equal(t, snake.Cell{X: 11, Y: 10}, c.Snake().Head(), "left is rejected while heading right")
	})

	t.Run("reset request is applied first", func(t *testing.T) {
		c, rec := newTestController(t, smallSettings())
		c.EndGame()
		l := NewLoop(c, rec, nil)

		l.RequestReset()
		l.RequestReset()
		l.Step()

		assert.False(t, c.IsOver())
		assert.Equal(t, snake.Cell{X: 3, Y: 2}, c.Snake().Head())

		l.Step()
		assert.Equal(t, snake.Cell{X: 4, Y: 2}, c.Snake().Head(), "duplicate reset requests collapse into one")
	})

	t.Run("keeps drawing after game over", func(t *testing.T) {
		c, rec := newTestController(t, smallSettings())
		c.EndGame()
		l := NewLoop(c, rec, nil)

		l.Step()
		l.Step()

		assert.Len(t, rec.frames, 2)
		assert.True(t, rec.frames[1].Over)
	})
}

func TestLoopRun(t *testing.T) {
	t.Run("reschedules with the current speed", func(t *testing.T) {
		c, rec := newTestController(t, DefaultSettings())
		c.food = snake.Cell{X: 11, Y: 10}
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		clock := &fakeClock{limit: 3, cancel: cancel}

		err := NewLoop(c, rec, clock).Run(ctx)

		require.ErrorIs(t, err, context.Canceled)
		require.Len(t, clock.waits, 3)
		assert.Equal(t, 195*time.Millisecond, clock.waits[0], "first tick ate the food")
		assert.LessOrEqual(t, clock.waits[1], clock.waits[0])
		assert.Len(t, rec.frames, 3)
	})

	t.Run("ticks on after game over by default", func(t *testing.T) {
		c, rec := newTestController(t, smallSettings())
		c.EndGame()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		clock := &fakeClock{limit: 4, cancel: cancel}

		_ = NewLoop(c, rec, clock).Run(ctx)

		assert.Len(t, clock.waits, 4)
		assert.Len(t, rec.frames, 4)
	})

	t.Run("parks after game over when asked", func(t *testing.T) {
		s := smallSettings()
		s.StopOnGameOver = true
		c, rec := newTestController(t, s)
		c.EndGame()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		clock := &fakeClock{limit: 100, cancel: cancel}
		l := NewLoop(c, rec, clock)

		done := make(chan error, 1)
		go func() { done <- l.Run(ctx) }()

		time.Sleep(20 * time.Millisecond)
		cancel()
		err := <-done

		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, clock.waits, "no tick is scheduled while parked")
		assert.Len(t, rec.frames, 1)
	})

	t.Run("resumes when reset while parked", func(t *testing.T) {
		s := smallSettings()
		s.StopOnGameOver = true
		c, rec := newTestController(t, s)
		c.EndGame()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		clock := &fakeClock{limit: 3, cancel: cancel}
		l := NewLoop(c, rec, clock)

		done := make(chan error, 1)
		go func() { done <- l.Run(ctx) }()

		time.Sleep(20 * time.Millisecond)
		l.RequestReset()
		err := <-done

		require.ErrorIs(t, err, context.Canceled)
		assert.Len(t, clock.waits, 3)
		// Parked frame, redraw after the reset, then two ticks.
		assert.Len(t, rec.frames, 4)
		assert.False(t, c.IsOver())
		assert.Equal(t, snake.Cell{X: 4, Y: 2}, c.Snake().Head())
	})
}

func TestLoopParked(t *testing.T) {
	s := smallSettings()
	s.StopOnGameOver = true
	c, _ := newTestController(t, s)
	l := NewLoop(c, nil, nil)
	assert.False(t, l.Parked(), "game still running")

	c.EndGame()
	assert.True(t, l.Parked())

	l.RequestReset()
	assert.False(t, l.Parked(), "a pending reset unparks")

	l.Step()
	assert.False(t, l.Parked())

	t.Run("never parks by default", func(t *testing.T) {
		c, _ := newTestController(t, smallSettings())
		c.EndGame()
		assert.False(t, NewLoop(c, nil, nil).Parked())
	})
}
