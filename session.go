package switch_snake

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kuredoro/switch_snake/core"
	"github.com/kuredoro/switch_snake/engine/sim"
)

// InputQueueSize bounds the number of direction commands waiting for the
// next tick.
const InputQueueSize = 100

const snapshotBuffer = 16

var ErrAlreadyRunning = errors.New("session already ran")

// Session is one game: the simulation goroutine plus the two channels that
// connect it to a frontend.
type Session struct {
	ID string

	sim       *sim.Simulation
	input     chan core.Direction
	snapshots chan core.GameState
	log       zerolog.Logger

	started atomic.Bool
}

func New(cfg core.Config, opts ...sim.Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	id := uuid.New().String()
	logger := log.Logger.With().Str("game", id).Logger()

	s := &Session{
		ID:        id,
		input:     make(chan core.Direction, InputQueueSize),
		snapshots: make(chan core.GameState, snapshotBuffer),
		log:       logger,
	}

	opts = append([]sim.Option{sim.WithLogger(logger.With().Str("component", "sim").Logger())}, opts...)
	var err error
	s.sim, err = sim.New(cfg, s.input, opts...)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	logger.Info().
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Dur("delay", cfg.Delay).
		Msg("Session created")

	return s, nil
}

// Send queues a direction for the next tick. It never blocks: when the queue
// is full the command is dropped and false is returned.
func (s *Session) Send(dir core.Direction) bool {
	select {
	case s.input <- dir:
		return true
	default:
		s.log.Debug().Stringer("dir", dir).Msg("Input queue full, dropping")
		return false
	}
}

// Snapshots yields one state per tick and is closed after the final one.
func (s *Session) Snapshots() <-chan core.GameState {
	return s.snapshots
}

// Run blocks until the game is over or ctx is done. A session runs once;
// later calls return ErrAlreadyRunning.
func (s *Session) Run(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}

	s.log.Info().Msg("Game started")

	err := s.sim.Run(ctx, s.snapshots)
	if err != nil {
		s.log.Warn().Err(err).Msg("Game interrupted")
		return err
	}

	s.log.Info().Msg("Game over")
	return nil
}
