// Package term plays the game in a terminal through tcell.
package term

import (
	"fmt"

	"github.com/dharshanroshanth/snake/internal/game"
	"github.com/dharshanroshanth/snake/internal/snake"
	"github.com/gdamore/tcell/v2"
)

// Each grid cell is two columns wide so the board looks square.
const cellWidth = 2

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	headStyle   = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x2ecc71))
	bodyStyle   = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x27ae60))
	foodStyle   = tcell.StyleDefault.Foreground(tcell.NewHexColor(0xe74c3c))
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	overStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Display draws the board in the top-left corner of a tcell screen: a border,
// the board inside it, and a status line below.
type Display struct {
	screen    tcell.Screen
	score     int
	over      bool
	lastScore int
}

var _ game.Display = (*Display)(nil)

func NewDisplay(screen tcell.Screen) *Display {
	return &Display{screen: screen}
}

func (d *Display) ShowScore(score int) {
	d.score = score
}

func (d *Display) ShowGameOver(visible bool, score int) {
	d.over = visible
	d.lastScore = score
}

func (d *Display) Draw(s game.State) {
	d.screen.Clear()
	d.drawBorder(s.Width, s.Height)

	d.putCell(s.Food, '●', foodStyle)
	for i, c := range s.Body {
		if !c.In(s.Width, s.Height) {
			continue
		}
		if i == 0 {
			d.putCell(c, '█', headStyle)
		} else {
			d.putCell(c, '▓', bodyStyle)
		}
	}

	status := s.Height + 2
	d.putString(0, status, fmt.Sprintf("Score: %d", d.score), textStyle)
	if d.over {
		d.putString(0, status+1, fmt.Sprintf("Game Over! Final score: %d", d.lastScore), overStyle)
		d.putString(0, status+2, "r: play again   q: quit", textStyle)
	}
	d.screen.Show()
}

func (d *Display) drawBorder(width, height int) {
	right := width*cellWidth + 1
	bottom := height + 1
	for x := 1; x < right; x++ {
		d.screen.SetContent(x, 0, '─', nil, borderStyle)
		d.screen.SetContent(x, bottom, '─', nil, borderStyle)
	}
	for y := 1; y < bottom; y++ {
		d.screen.SetContent(0, y, '│', nil, borderStyle)
		d.screen.SetContent(right, y, '│', nil, borderStyle)
	}
	d.screen.SetContent(0, 0, '┌', nil, borderStyle)
	d.screen.SetContent(right, 0, '┐', nil, borderStyle)
	d.screen.SetContent(0, bottom, '└', nil, borderStyle)
	d.screen.SetContent(right, bottom, '┘', nil, borderStyle)
}

func (d *Display) putCell(c snake.Cell, r rune, style tcell.Style) {
	x, y := screenPos(c)
	for i := 0; i < cellWidth; i++ {
		d.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (d *Display) putString(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		d.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// screenPos maps a grid cell to the screen column and row of its left half.
func screenPos(c snake.Cell) (x, y int) {
	return c.X*cellWidth + 1, c.Y + 1
}
