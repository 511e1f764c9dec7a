package console

import "github.com/gdamore/tcell/v2"

func (ui *UI) Capture(ev *tcell.EventKey) *tcell.EventKey {
	return ui.capture(ev)
}

func (ui *UI) FrontPage() string {
	name, _ := ui.pages.GetFrontPage()
	return name
}

func (ui *UI) Board() *Board {
	return ui.board
}
