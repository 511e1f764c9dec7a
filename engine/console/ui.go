package console

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"

	"github.com/kuredoro/switch_snake/core"
)

// Steerer accepts direction commands for the running game.
type Steerer interface {
	Send(dir core.Direction) bool
}

// Cues are played on game events. Implementations must not block.
type Cues interface {
	Point()
	Death()
}

type silent struct{}

func (silent) Point() {}
func (silent) Death() {}

type Option func(*UI)

func WithCues(c Cues) Option {
	return func(ui *UI) {
		ui.cues = c
	}
}

// WithScreen makes the application draw on s instead of the terminal.
func WithScreen(s tcell.Screen) Option {
	return func(ui *UI) {
		ui.app.SetScreen(s)
	}
}

// WithQuit registers a function that runs before the application stops,
// whether the player quit or acknowledged the game over.
func WithQuit(quit func()) Option {
	return func(ui *UI) {
		ui.quit = quit
	}
}

// UI is the terminal frontend.
type UI struct {
	app   *tview.Application
	pages *tview.Pages
	board *Board

	steer Steerer
	cues  Cues
	quit  func()

	score int
	over  bool
}

func New(steer Steerer, width, height int, opts ...Option) *UI {
	ui := &UI{
		app:   tview.NewApplication(),
		pages: tview.NewPages(),
		board: NewBoard(width, height),
		steer: steer,
		cues:  silent{},
		quit:  func() {},
	}

	ui.pages.AddPage(boardPage, Layout(ui.board), true, true)
	ui.app.SetRoot(ui.pages, true).SetInputCapture(ui.capture)

	for _, opt := range opts {
		opt(ui)
	}

	return ui
}

// Run shows every snapshot until the channel is closed and blocks until the
// player leaves.
func (ui *UI) Run(snapshots <-chan core.GameState) error {
	go func() {
		for snap := range snapshots {
			snap := snap
			ui.app.QueueUpdateDraw(func() {
				ui.Apply(snap)
			})
		}
		log.Debug().Msg("Snapshot stream closed")
	}()

	if err := ui.app.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}

// Apply updates the widgets to match snap. It must run on the application
// goroutine once Run has been called.
func (ui *UI) Apply(snap core.GameState) {
	ui.board.SetGrid(snap.Grid)
	ui.board.SetScore(snap.Score)

	if snap.Score > ui.score {
		ui.cues.Point()
	}
	ui.score = snap.Score

	if !snap.Dead || ui.over {
		return
	}

	ui.over = true
	ui.cues.Death()

	modal := GameOver(snap.Score, ui.Stop)
	ui.pages.AddPage(gameOverPage, modal, false, true)
	ui.app.SetFocus(modal)
}

// Score is the score of the last applied snapshot.
func (ui *UI) Score() int {
	return ui.score
}

// Over reports whether the game over modal has been shown.
func (ui *UI) Over() bool {
	return ui.over
}

// Stop leaves the frontend.
func (ui *UI) Stop() {
	ui.quit()
	ui.app.Stop()
}

func (ui *UI) capture(ev *tcell.EventKey) *tcell.EventKey {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		ui.Stop()
		return nil
	case tcell.KeyRune:
		if ui.over {
			return ev
		}
		if dir, ok := core.ParseKey(ev.Rune()); ok {
			ui.steer.Send(dir)
			return nil
		}
	}

	return ev
}
