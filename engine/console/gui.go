package console

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	hint         = `w a s d to steer, Esc to quit`
	gameOverPage = "gameover"
	boardPage    = "board"
)

// Layout puts the board in the middle of the screen with the key hint
// underneath.
func Layout(board *Board) tview.Primitive {
	width, height := board.Size()

	frame := tview.NewFrame(board).
		SetBorders(0, 0, 0, 0, 0, 0).
		AddText(hint, false, tview.AlignCenter, tcell.ColorDarkMagenta)

	return tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(tview.NewBox(), 0, 1, false).
		AddItem(tview.NewFlex().
			SetDirection(tview.FlexRow).
			AddItem(tview.NewBox(), 0, 1, false).
			AddItem(frame, height+1, 1, true).
			AddItem(tview.NewBox(), 0, 1, false), width, 1, true).
		AddItem(tview.NewBox(), 0, 1, false)
}

// GameOver is the modal shown once the snake dies. done runs when it is
// acknowledged.
func GameOver(score int, done func()) *tview.Modal {
	return tview.NewModal().
		SetText(fmt.Sprintf("You lost! Score: %d", score)).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(int, string) {
			done()
		})
}
