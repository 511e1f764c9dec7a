package audio_test

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuredoro/switch_snake/engine/audio"
)

func TestTone(t *testing.T) {
	rate := beep.SampleRate(44100)
	tone := audio.NewTone(rate, 440, 10*time.Millisecond)
	require.Equal(t, 441, tone.Len())

	t.Run("streams exactly its length", func(t *testing.T) {
		total := 0
		buf := make([][2]float64, 100)
		for {
			n, ok := tone.Stream(buf)
			total += n
			if !ok {
				break
			}
		}
		assert.Equal(t, 441, total)
		assert.NoError(t, tone.Err())
	})

	t.Run("samples stay in range and fade", func(t *testing.T) {
		tone := audio.NewTone(rate, 440, 10*time.Millisecond)
		buf := make([][2]float64, tone.Len())
		n, ok := tone.Stream(buf)
		require.True(t, ok)
		require.Equal(t, tone.Len(), n)

		for i, s := range buf {
			assert.LessOrEqual(t, math.Abs(s[0]), 1.0, "sample %d", i)
			assert.Equal(t, s[0], s[1], "sample %d is not mono", i)
		}
		assert.Zero(t, buf[0][0])
	})
}

func TestCuesWithoutDevice(t *testing.T) {
	c := audio.New()
	// No device was opened, so these must not block or panic.
	c.Point()
	c.Death()
	c.Close()
}
