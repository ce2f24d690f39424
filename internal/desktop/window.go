// Package desktop plays the game in a native window through ebiten.
package desktop

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/dharshanroshanth/snake/internal/config"
	"github.com/dharshanroshanth/snake/internal/ctxlog"
	"github.com/dharshanroshanth/snake/internal/game"
	"github.com/dharshanroshanth/snake/internal/snake"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	background = color.RGBA{0x34, 0x49, 0x5e, 0xff}
	headColor  = color.RGBA{0x2e, 0xcc, 0x71, 0xff}
	bodyColor  = color.RGBA{0x27, 0xae, 0x60, 0xff}
	foodColor  = color.RGBA{0xe7, 0x4c, 0x3c, 0xff}
)

var steerKeys = map[ebiten.Key]snake.Direction{
	ebiten.KeyArrowUp:    snake.Up,
	ebiten.KeyArrowDown:  snake.Down,
	ebiten.KeyArrowLeft:  snake.Left,
	ebiten.KeyArrowRight: snake.Right,
	ebiten.KeyW:          snake.Up,
	ebiten.KeyS:          snake.Down,
	ebiten.KeyA:          snake.Left,
	ebiten.KeyD:          snake.Right,
}

// canvas is the game.Display of the window; it keeps what the next frame
// should show.
type canvas struct {
	state game.State
	score int
	over  bool
	final int
}

func (c *canvas) Draw(s game.State)                    { c.state = s }
func (c *canvas) ShowScore(score int)                  { c.score = score }
func (c *canvas) ShowGameOver(visible bool, score int) { c.over, c.final = visible, score }

// window implements ebiten.Game. ebiten calls Update at a fixed rate; a game
// tick runs only once the controller's speed has elapsed since the last one.
type window struct {
	ctx      context.Context
	ctrl     *game.Controller
	loop     *game.Loop
	canvas   *canvas
	cellSize int
	lastTick time.Time
}

// Run opens the window and plays until it is closed, Escape is pressed or
// ctx is done.
func Run(ctx context.Context, cfg config.Config) error {
	logger := ctxlog.FromContext(ctx)
	cv := &canvas{}
	ctrl, err := game.New(ctx, cfg.Game, cv)
	if err != nil {
		return err
	}
	w := &window{
		ctx:      ctx,
		ctrl:     ctrl,
		loop:     game.NewLoop(ctrl, cv, nil),
		canvas:   cv,
		cellSize: cfg.CellSize,
	}
	cv.state = ctrl.State()

	width, height := cfg.CanvasSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Snek")

	logger.Debug("Desktop window opening.", "width", width, "height", height)
	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("desktop window failed: %w", err)
	}
	logger.Info("Desktop session ended.", "score", ctrl.Score())
	return nil
}

func (w *window) Update() error {
	if w.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for key, d := range steerKeys {
		if inpututil.IsKeyJustPressed(key) {
			w.loop.Input().Post(d)
		}
	}
	if w.canvas.over && (inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyR)) {
		w.loop.RequestReset()
	}

	if w.loop.Parked() || time.Since(w.lastTick) < w.ctrl.Speed() {
		return nil
	}
	w.lastTick = time.Now()
	w.loop.Step()
	return nil
}

func (w *window) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	s := w.canvas.state

	w.fillCell(screen, s.Food, foodColor)
	for i, c := range s.Body {
		if i == 0 {
			w.fillCell(screen, c, headColor)
		} else {
			w.fillCell(screen, c, bodyColor)
		}
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("Score: %d", w.canvas.score))
	if w.canvas.over {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Game Over! Final score: %d\nSpace: play again  Esc: quit", w.canvas.final), 8, 24)
	}
}

func (w *window) Layout(_, _ int) (int, int) {
	return w.ctrl.Settings().Width * w.cellSize, w.ctrl.Settings().Height * w.cellSize
}

func (w *window) fillCell(screen *ebiten.Image, c snake.Cell, clr color.Color) {
	size := float32(w.cellSize)
	vector.DrawFilledRect(screen, float32(c.X)*size, float32(c.Y)*size, size-1, size-1, clr, false)
}
