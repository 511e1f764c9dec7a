package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog/log"
)

const sampleRate = beep.SampleRate(44100)

const (
	pointFreq     = 880.0
	pointDuration = 60 * time.Millisecond

	deathFreq     = 196.0
	deathDuration = 450 * time.Millisecond
)

// Cues plays short tones when a point is collected and when the snake dies.
// Until Init succeeds every cue is silently skipped.
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func New() *Cues {
	return &Cues{mixer: &beep.Mixer{}}
}

// Init opens the audio device. Calling it again is a no-op.
func (c *Cues) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(c.mixer)
	c.initialized = true
	log.Debug().Int("sample_rate", int(sampleRate)).Msg("Audio ready")
	return nil
}

func (c *Cues) Point() {
	c.play(NewTone(sampleRate, pointFreq, pointDuration))
}

func (c *Cues) Death() {
	c.play(NewTone(sampleRate, deathFreq, deathDuration))
}

// Close silences everything that is still playing.
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	c.initialized = false
}

func (c *Cues) play(s beep.Streamer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}

// Tone is a sine wave of fixed length that fades in and out to avoid clicks.
type Tone struct {
	sr    beep.SampleRate
	freq  float64
	pos   int
	total int
	fade  int
}

func NewTone(sr beep.SampleRate, freq float64, d time.Duration) *Tone {
	total := sr.N(d)
	fade := sr.N(5 * time.Millisecond)
	if fade*2 > total {
		fade = total / 2
	}

	return &Tone{sr: sr, freq: freq, total: total, fade: fade}
}

func (t *Tone) Len() int {
	return t.total
}

func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return n, n > 0
		}

		at := float64(t.pos) / float64(t.sr)
		sample := 0.3 * math.Sin(2*math.Pi*t.freq*at) * t.envelope()

		samples[i][0] = sample
		samples[i][1] = sample
		t.pos++
		n++
	}
	return n, true
}

func (t *Tone) Err() error {
	return nil
}

func (t *Tone) envelope() float64 {
	if t.fade == 0 {
		return 1
	}

	switch {
	case t.pos < t.fade:
		return float64(t.pos) / float64(t.fade)
	case t.pos >= t.total-t.fade:
		return float64(t.total-t.pos) / float64(t.fade)
	}
	return 1
}
