package switch_snake_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	snake "github.com/kuredoro/switch_snake"
	"github.com/kuredoro/switch_snake/core"
	"github.com/kuredoro/switch_snake/engine/sim"
)

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Width = -1

	_, err := snake.New(cfg)

	var cerr *core.ConfigError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "width", cerr.Field)
}

func TestSendDropsWhenFull(t *testing.T) {
	s, err := snake.New(core.DefaultConfig())
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)

	for i := 0; i < snake.InputQueueSize; i++ {
		require.True(t, s.Send(core.Up), "command %d", i)
	}
	assert.False(t, s.Send(core.Up))
}

func TestRunDeliversTicks(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Delay = time.Millisecond
	s, err := snake.New(cfg, sim.WithPoint(core.Coord{X: 0, Y: 0}))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx)
	}()

	var last uint64
	for i := 0; i < 3; i++ {
		snap, ok := <-s.Snapshots()
		require.True(t, ok)
		assert.Greater(t, snap.Tick, last)
		last = snap.Tick
	}

	cancel()
	for range s.Snapshots() {
	}
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestRunOnlyOnce(t *testing.T) {
	s, err := snake.New(core.DefaultConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Run(ctx), context.Canceled)

	assert.ErrorIs(t, s.Run(context.Background()), snake.ErrAlreadyRunning)
}
