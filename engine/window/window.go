package window

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog/log"

	"github.com/kuredoro/switch_snake/core"
)

const (
	cellSize      = 36
	switchInset   = 4
	borderPadding = 12
	fontSize      = 24
)

var (
	background = rl.NewColor(24, 24, 28, 255)
	switchOn   = rl.Green
	switchOff  = rl.DarkGray
)

var ErrNoWindow = errors.New("window could not be created")

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

type Option func(*Window)

func WithCues(c Cues) Option {
	return func(w *Window) {
		w.cues = c
	}
}

// WithQuit registers a function that runs once the window loop ends.
func WithQuit(quit func()) Option {
	return func(w *Window) {
		w.quit = quit
	}
}

// Window draws the switch board in a native window. Everything but Apply has
// to run on the main OS thread.
type Window struct {
	steer Steerer
	cues  Cues
	quit  func()

	grid  core.GameGrid
	score int
	over  bool
}

func New(steer Steerer, width, height int, opts ...Option) *Window {
	w := &Window{
		steer: steer,
		cues:  silent{},
		quit:  func() {},
		grid:  core.NewGameGrid(width, height),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Title is the window caption for the given score.
func Title(score int) string {
	return fmt.Sprintf("Snake | Score: %d", score)
}

// Size returns the window size in pixels.
func (w *Window) Size() (width, height int32) {
	return int32(w.grid.Width)*cellSize + 2*borderPadding,
		int32(w.grid.Height)*cellSize + 2*borderPadding
}

// Apply records snap for the next frame.
func (w *Window) Apply(snap core.GameState) {
	w.grid = snap.Grid

	if snap.Score > w.score {
		w.cues.Point()
	}
	w.score = snap.Score

	if snap.Dead && !w.over {
		w.over = true
		w.cues.Death()
	}
}

func (w *Window) Score() int {
	return w.score
}

func (w *Window) Over() bool {
	return w.over
}

// Run opens the window and shows snapshots until the player closes it or
// acknowledges the game over screen.
func (w *Window) Run(snapshots <-chan core.GameState) error {
	defer w.quit()

	width, height := w.Size()
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(width, height, Title(0))
	if !rl.IsWindowReady() {
		return openError(width, height)
	}
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	shown := 0
	for !rl.WindowShouldClose() {
		snapshots = w.poll(snapshots)

		if w.score != shown {
			shown = w.score
			rl.SetWindowTitle(Title(shown))
		}

		if w.over {
			if rl.IsKeyPressed(rl.KeyEnter) || rl.IsMouseButtonPressed(rl.MouseLeftButton) {
				log.Debug().Msg("Game over acknowledged")
				break
			}
		} else {
			w.keys()
		}

		w.draw()
	}

	return nil
}

func openError(width, height int32) error {
	return fmt.Errorf("init window %dx%d: %w", width, height, ErrNoWindow)
}

// poll applies every snapshot that is ready without waiting for more. It
// returns nil once the channel is closed.
func (w *Window) poll(snapshots <-chan core.GameState) <-chan core.GameState {
	for {
		select {
		case snap, ok := <-snapshots:
			if !ok {
				return nil
			}
			w.Apply(snap)
		default:
			return snapshots
		}
	}
}

func (w *Window) keys() {
	for r := rl.GetCharPressed(); r != 0; r = rl.GetCharPressed() {
		if dir, ok := core.ParseKey(r); ok {
			w.steer.Send(dir)
		}
	}
}

func (w *Window) draw() {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(background)

	for y := 0; y < w.grid.Height; y++ {
		for x := 0; x < w.grid.Width; x++ {
			color := switchOff
			if w.grid.Data[y][x] {
				color = switchOn
			}

			rect := rl.NewRectangle(
				float32(borderPadding+x*cellSize+switchInset),
				float32(borderPadding+y*cellSize+switchInset),
				cellSize-2*switchInset,
				cellSize-2*switchInset,
			)
			rl.DrawRectangleRounded(rect, 0.4, 6, color)
		}
	}

	if w.over {
		w.drawGameOver()
	}
}

func (w *Window) drawGameOver() {
	width, height := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	rl.DrawRectangle(0, 0, width, height, rl.Fade(rl.Black, 0.75))

	text := fmt.Sprintf("You lost! Score: %d", w.score)
	tw := rl.MeasureText(text, fontSize)
	rl.DrawText(text, (width-tw)/2, height/2-fontSize, fontSize, rl.White)

	hint := "Press Enter"
	hw := rl.MeasureText(hint, fontSize/2)
	rl.DrawText(hint, (width-hw)/2, height/2+fontSize/2, fontSize/2, rl.LightGray)
}
