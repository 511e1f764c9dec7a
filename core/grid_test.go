package core_test

import (
	"errors"
	"testing"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/kuredoro/switch_snake/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestGameGrid(t *testing.T) {
	g := core.NewGameGrid(4, 3)
	require.Len(t, g.Data, 3)
	require.Len(t, g.Data[0], 4)
	assert.Zero(t, g.Count())

	g.Set([]core.Coord{{X: 0, Y: 0}, {X: 3, Y: 2}}, true)
	assert.True(t, g.At(core.Coord{X: 3, Y: 2}))
	assert.True(t, g.Data[2][3], "data must be row-major")
	assert.Equal(t, 2, g.Count())

	g.Set([]core.Coord{{X: 0, Y: 0}}, false)
	assert.Equal(t, 1, g.Count())

	g.Clear()
	assert.Zero(t, g.Count())
}

func TestSnapshotIsDetached(t *testing.T) {
	state := core.NewGameState(4, 3)
	state.Grid.Set([]core.Coord{{X: 1, Y: 1}}, true)

	snap := state.Snapshot()
	state.Grid.Clear()
	state.Score++

	assert.True(t, snap.Grid.At(core.Coord{X: 1, Y: 1}))
	assert.Zero(t, snap.Score)
}

func TestRandomCoordInBounds(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		c := core.RandomCoord(r, 14, 10)
		require.True(t, c.X >= 0 && c.X < 14 && c.Y >= 0 && c.Y < 10, "out of bounds: %v", c)
	}
}

func TestParseKey(t *testing.T) {
	dir, ok := core.ParseKey('S')
	assert.True(t, ok)
	assert.Equal(t, core.Down, dir)

	_, ok = core.ParseKey('q')
	assert.False(t, ok)
}

func TestConfigValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, core.DefaultConfig().Validate())
	})

	t.Run("every bad field is reported", func(t *testing.T) {
		cfg := core.Config{Width: 0, Height: core.MaxSide + 1, Delay: -time.Second}

		err := cfg.Validate()
		require.Error(t, err)

		var merr *multierror.Error
		require.True(t, errors.As(err, &merr))
		require.Len(t, merr.Errors, 3)

		fields := make([]string, 0, len(merr.Errors))
		for _, e := range merr.Errors {
			var cerr *core.ConfigError
			require.True(t, errors.As(e, &cerr))
			fields = append(fields, cerr.Field)
		}
		assert.Equal(t, []string{"width", "height", "delay"}, fields)
		assert.True(t, errors.Is(merr.Errors[0], core.ErrNotPositive))
		assert.True(t, errors.Is(merr.Errors[1], core.ErrTooLarge))
	})
}
