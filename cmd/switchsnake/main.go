package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/i582/cfmt/cmd/cfmt"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	snake "github.com/kuredoro/switch_snake"
	"github.com/kuredoro/switch_snake/core"
	"github.com/kuredoro/switch_snake/engine/audio"
	"github.com/kuredoro/switch_snake/engine/console"
	"github.com/kuredoro/switch_snake/engine/window"
)

const (
	uiTerm   = "term"
	uiWindow = "window"
)

var errUnknownUI = errors.New("must be term or window")

// frontend is what both the terminal and the window implement.
type frontend interface {
	Run(snapshots <-chan core.GameState) error
	Score() int
}

type cues interface {
	Point()
	Death()
}

func main() {
	os.Exit(run())
}

func run() int {
	def := core.DefaultConfig()

	widthFlag := flag.Int("width", def.Width, "board width in switches")
	heightFlag := flag.Int("height", def.Height, "board height in switches")
	delayFlag := flag.Duration("delay", def.Delay, "time between ticks")
	seedFlag := flag.Int64("seed", 0, "point generator seed, 0 picks one from the clock")
	uiFlag := flag.String("ui", uiTerm, "frontend: term or window")
	soundFlag := flag.Bool("sound", true, "play sound cues")
	logFlag := flag.String("log", "", "log file (the terminal frontend discards logs without one)")
	verboseFlag := flag.Bool("v", false, "debug logging")
	flag.Parse()

	cfg := core.Config{
		Width:  *widthFlag,
		Height: *heightFlag,
		Delay:  *delayFlag,
		Seed:   *seedFlag,
	}

	var err error
	if verr := cfg.Validate(); verr != nil {
		err = multierror.Append(err, verr)
	}
	if *uiFlag != uiTerm && *uiFlag != uiWindow {
		err = multierror.Append(err, &core.ConfigError{Field: "ui", Err: errUnknownUI})
	}
	if err != nil {
		printErr("invalid configuration:", err)
		return 2
	}

	closeLog, err := setupLogging(*uiFlag, *logFlag, *verboseFlag)
	if err != nil {
		printErr("open log:", err)
		return 1
	}
	defer closeLog()

	session, err := snake.New(cfg)
	if err != nil {
		printErr("new session:", err)
		return 2
	}

	var c cues
	if *soundFlag {
		a := audio.New()
		if err := a.Init(); err != nil {
			log.Warn().Err(err).Msg("Audio unavailable, playing silent")
		} else {
			defer a.Close()
			c = a
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var ui frontend
	switch *uiFlag {
	case uiTerm:
		opts := []console.Option{console.WithQuit(cancel)}
		if c != nil {
			opts = append(opts, console.WithCues(c))
		}
		ui = console.New(session, cfg.Width, cfg.Height, opts...)
	case uiWindow:
		opts := []window.Option{window.WithQuit(cancel)}
		if c != nil {
			opts = append(opts, window.WithCues(c))
		}
		ui = window.New(session, cfg.Width, cfg.Height, opts...)
	}

	done := make(chan error, 1)
	go func() {
		done <- session.Run(ctx)
	}()

	err = ui.Run(session.Snapshots())
	cancel()
	<-done

	if err != nil {
		log.Err(err).Msg("Frontend failed")
		printErr("run %s frontend:", *uiFlag, err)
		return 1
	}

	cfmt.Printf("{{Game over,}}::lightGreen|bold score %d\n", ui.Score())
	return 0
}

// setupLogging points the global logger somewhere that does not fight the
// frontend for the terminal.
func setupLogging(ui, path string, verbose bool) (func(), error) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		log.Logger = zerolog.New(f).With().Timestamp().Logger()
		return func() { f.Close() }, nil
	}

	if ui == uiTerm {
		log.Logger = zerolog.New(io.Discard)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return func() {}, nil
}

func printErr(m string, args ...interface{}) {
	if len(args) == 0 {
		panic("printErr: no arguments passed")
	}

	err := args[len(args)-1]

	header := m
	if len(args) > 1 {
		header = fmt.Sprintf(m, args[:len(args)-1]...)
	}

	cfmt.Printf("{{error:}}::lightRed|bold %s %v\n", header, err)
}
