package sim

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sanity-io/litter"
	"golang.org/x/exp/rand"

	"github.com/kuredoro/switch_snake/core"
)

type Option func(*Simulation)

// WithRand replaces the seeded point generator.
func WithRand(r *rand.Rand) Option {
	return func(s *Simulation) {
		s.r = r
	}
}

// WithPoint places the first point instead of drawing it at random.
func WithPoint(c core.Coord) Option {
	return func(s *Simulation) {
		s.point = c
		s.pointSet = true
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Simulation) {
		s.log = l
	}
}

// Simulation is a single snake game. Step advances it by one tick; Run
// drives Step at the configured delay and publishes every snapshot.
type Simulation struct {
	width, height int
	delay         time.Duration

	player   *core.Player
	point    core.Coord
	pointSet bool
	state    core.GameState

	input <-chan core.Direction
	r     *rand.Rand
	log   zerolog.Logger
}

// New builds a simulation for cfg, which must pass Validate.
func New(cfg core.Config, input <-chan core.Direction, opts ...Option) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Simulation{
		width:  cfg.Width,
		height: cfg.Height,
		delay:  cfg.Delay,
		player: core.NewPlayer(cfg.Width/2, cfg.Height/2),
		state:  core.NewGameState(cfg.Width, cfg.Height),
		input:  input,
		r:      rand.New(rand.NewSource(uint64(seed))),
		log:    log.Logger.With().Str("component", "sim").Logger(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if !s.pointSet {
		s.point = core.RandomCoord(s.r, s.width, s.height)
	}

	return s, nil
}

func (s *Simulation) Player() *core.Player {
	return s.player
}

func (s *Simulation) Point() core.Coord {
	return s.point
}

func (s *Simulation) Dead() bool {
	return s.state.Dead
}

// Step runs one tick and returns its snapshot. Once the snake is dead Step
// keeps returning the final state.
func (s *Simulation) Step() core.GameState {
	if s.state.Dead {
		return s.state.Snapshot()
	}

	s.drainInput()
	s.player.Move(s.width, s.height)
	s.state.Tick++

	if core.EqualCoord(s.player.Head, s.point) {
		s.player.Grow()
		s.state.Score++
		// The new point may land on the body.
		s.point = core.RandomCoord(s.r, s.width, s.height)

		s.log.Info().
			Int("score", s.state.Score).
			Stringer("next_point", s.point).
			Msg("Point collected")
	}

	if s.player.Collides() {
		s.state.Dead = true

		s.log.Info().
			Int("score", s.state.Score).
			Uint64("tick", s.state.Tick).
			Stringer("head", s.player.Head).
			Msg("Snake bit itself")
		if e := s.log.Debug(); e.Enabled() {
			e.Str("player", litter.Sdump(s.player)).Msg("Final state")
		}

		return s.state.Snapshot()
	}

	s.state.Grid.Clear()
	s.state.Grid.Set([]core.Coord{s.player.Head, s.point}, true)
	s.state.Grid.Set(s.player.Body, true)

	return s.state.Snapshot()
}

// drainInput applies every queued direction without blocking.
func (s *Simulation) drainInput() {
	for {
		select {
		case dir, ok := <-s.input:
			if !ok {
				s.input = nil
				return
			}
			s.player.Steer(dir)
			s.log.Debug().Stringer("dir", dir).Msg("Steer")
		default:
			return
		}
	}
}

// Run ticks until the snake dies or ctx is done, then closes out. Sends
// never hold up a tick: a snapshot that finds out full is dropped. Only the
// final dead snapshot is waited for.
func (s *Simulation) Run(ctx context.Context, out chan<- core.GameState) error {
	defer close(out)

	ticker := time.NewTicker(s.delay)
	defer ticker.Stop()

	for {
		snap := s.Step()

		if snap.Dead {
			select {
			case out <- snap:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		select {
		case out <- snap:
		default:
			s.log.Debug().Uint64("tick", snap.Tick).Msg("Frontend behind, snapshot dropped")
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
