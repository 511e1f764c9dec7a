package window_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kuredoro/switch_snake/core"
	"github.com/kuredoro/switch_snake/engine/window"
)

type cues struct {
	points, deaths int
}

func (c *cues) Point() { c.points++ }
func (c *cues) Death() { c.deaths++ }

type discard struct{}

func (discard) Send(core.Direction) bool { return true }

func TestApply(t *testing.T) {
	c := &cues{}
	w := window.New(discard{}, 14, 10, window.WithCues(c))

	state := core.NewGameState(14, 10)
	w.Apply(state.Snapshot())
	assert.Zero(t, w.Score())

	state.Score = 2
	w.Apply(state.Snapshot())
	assert.Equal(t, 2, w.Score())
	assert.Equal(t, 1, c.points, "one cue per snapshot with a higher score")
	assert.False(t, w.Over())

	state.Dead = true
	w.Apply(state.Snapshot())
	w.Apply(state.Snapshot())
	assert.True(t, w.Over())
	assert.Equal(t, 1, c.deaths)
}

func TestSize(t *testing.T) {
	w := window.New(discard{}, 14, 10)
	width, height := w.Size()
	assert.EqualValues(t, 14*36+24, width)
	assert.EqualValues(t, 10*36+24, height)
	assert.Equal(t, "Snake | Score: 3", window.Title(3))
}

func TestOpenError(t *testing.T) {
	err := window.OpenError(528, 384)

	assert.ErrorIs(t, err, window.ErrNoWindow)
	assert.EqualError(t, err, "init window 528x384: window could not be created")
}
