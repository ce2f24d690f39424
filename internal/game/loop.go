package game

import (
	"context"
	"time"
)

// Clock schedules the next tick.
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

// RealClock is the wall clock.
type RealClock struct{}

func (RealClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

// Loop drives a Controller: each tick takes pending input, updates the game
// and redraws it, then waits for the controller's current speed.
type Loop struct {
	ctrl     *Controller
	renderer Renderer
	clock    Clock
	input    *Mailbox
	reset    chan struct{}
}

// NewLoop ties a controller to the renderer that draws it. A nil clock means
// RealClock.
func NewLoop(ctrl *Controller, renderer Renderer, clock Clock) *Loop {
	if clock == nil {
		clock = RealClock{}
	}
	if renderer == nil {
		renderer = NopDisplay{}
	}
	return &Loop{
		ctrl:     ctrl,
		renderer: renderer,
		clock:    clock,
		input:    &Mailbox{},
		reset:    make(chan struct{}, 1),
	}
}

// Input is the mailbox frontends post key presses to.
func (l *Loop) Input() *Mailbox {
	return l.input
}

// RequestReset restarts the game at the next tick boundary. Safe to call
// from any goroutine.
func (l *Loop) RequestReset() {
	select {
	case l.reset <- struct{}{}:
	default:
	}
}

// Parked reports whether the game is over and waiting for a reset instead
// of ticking. Only true when the settings ask to stop on game over.
func (l *Loop) Parked() bool {
	return l.ctrl.IsOver() && l.ctrl.Settings().StopOnGameOver && len(l.reset) == 0
}

// Step runs one tick to completion.
func (l *Loop) Step() {
	select {
	case <-l.reset:
		l.ctrl.Reset()
	default:
	}
	if d, ok := l.input.Take(); ok {
		l.ctrl.Steer(d)
	}
	l.ctrl.Update()
	l.renderer.Draw(l.ctrl.State())
}

// Run ticks until ctx is done, waiting the controller's speed between
// ticks. Once the game is over it keeps ticking, unless the settings ask to
// stop on game over; then it waits for a reset request instead.
func (l *Loop) Run(ctx context.Context) error {
	for {
		l.Step()

		if l.ctrl.IsOver() && l.ctrl.Settings().StopOnGameOver {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-l.reset:
				l.ctrl.Reset()
				l.renderer.Draw(l.ctrl.State())
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.clock.After(l.ctrl.Speed()):
		}
	}
}
