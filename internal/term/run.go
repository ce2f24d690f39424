package term

import (
	"context"
	"errors"

	"github.com/dharshanroshanth/snake/internal/ctxlog"
	"github.com/dharshanroshanth/snake/internal/game"
	"github.com/gdamore/tcell/v2"
)

// Run plays one terminal session on an initialized screen until the player
// quits or ctx is done. The caller owns the screen and finalizes it.
func Run(ctx context.Context, screen tcell.Screen, settings game.Settings) error {
	logger := ctxlog.FromContext(ctx)
	display := NewDisplay(screen)
	ctrl, err := game.New(ctx, settings, display)
	if err != nil {
		return err
	}
	loop := game.NewLoop(ctrl, display, nil)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go pollInput(screen, loop, cancel)

	logger.Debug("Terminal session started.", "width", settings.Width, "height", settings.Height)
	err = loop.Run(ctx)
	logger.Info("Terminal session ended.", "score", ctrl.Score())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// pollInput turns screen events into loop input until the screen is
// finalized or the player quits.
func pollInput(screen tcell.Screen, loop *game.Loop, quit context.CancelFunc) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			act, d := keyAction(ev.Key(), ev.Rune(), ev.Modifiers())
			switch act {
			case actionSteer:
				loop.Input().Post(d)
			case actionReset:
				loop.RequestReset()
			case actionQuit:
				quit()
				return
			}
		}
	}
}
