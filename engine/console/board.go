package console

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/kuredoro/switch_snake/core"
)

const (
	switchOn  = '■'
	switchOff = '□'

	// Every switch is followed by a gap column.
	cellWidth = 2
)

var (
	onStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	offStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Title is the board caption for the given score.
func Title(score int) string {
	return fmt.Sprintf("Snake | Score: %d", score)
}

// Board is a grid of on/off switches mirroring the last snapshot.
type Board struct {
	*tview.Box

	grid  core.GameGrid
	score int
}

func NewBoard(width, height int) *Board {
	b := &Board{
		Box:  tview.NewBox(),
		grid: core.NewGameGrid(width, height),
	}
	b.SetBorder(true).SetTitle(Title(0))
	return b
}

// SetGrid replaces the switch states. The grid is not copied, so callers
// hand over snapshots they no longer touch.
func (b *Board) SetGrid(g core.GameGrid) *Board {
	b.grid = g
	return b
}

// SetScore updates the caption.
func (b *Board) SetScore(score int) *Board {
	b.score = score
	b.SetTitle(Title(score))
	return b
}

func (b *Board) Score() int {
	return b.score
}

// Size returns the number of columns and rows the board needs including its
// border.
func (b *Board) Size() (width, height int) {
	return b.grid.Width*cellWidth - 1 + 2, b.grid.Height + 2
}

func (b *Board) Draw(screen tcell.Screen) {
	b.Box.DrawForSubclass(screen, b)

	x, y, w, h := b.GetInnerRect()
	for row := 0; row < b.grid.Height && row < h; row++ {
		for col := 0; col < b.grid.Width && col*cellWidth < w; col++ {
			r, style := switchOff, offStyle
			if b.grid.Data[row][col] {
				r, style = switchOn, onStyle
			}
			screen.SetContent(x+col*cellWidth, y+row, r, nil, style)
		}
	}
}
