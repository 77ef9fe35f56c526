package beepsound_test

import (
	"math"
	"testing"

	"github.com/plus3/tetris/internal/sound"
	"github.com/plus3/tetris/internal/sound/beepsound"
	"github.com/plus3/tetris/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, tones []sound.Tone, volume float64) [][2]float64 {
	t.Helper()

	s, err := beepsound.Streamer(tones, volume)
	require.NoError(t, err)

	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			break
		}
	}
	return out
}

func TestStreamerLength(t *testing.T) {
	for _, cue := range tetris.Cues {
		tones := sound.Cues[cue]
		samples := drain(t, tones, 1)
		assert.Len(t, samples, sound.Samples(tones), cue.String())
	}
}

func TestStreamerVolume(t *testing.T) {
	tones := sound.Cues[tetris.CueLineClear]

	peak := func(samples [][2]float64) float64 {
		p := 0.0
		for _, s := range samples {
			p = math.Max(p, math.Abs(s[0]))
		}
		return p
	}

	full := peak(drain(t, tones, 1))
	half := peak(drain(t, tones, 0.5))
	assert.InDelta(t, full/2, half, 1e-6)
	assert.Zero(t, peak(drain(t, tones, 0)))
}

func TestPlayerWithoutDevice(t *testing.T) {
	p := beepsound.New(1, 0.3)

	// Uninitialized players drop everything.
	p.Play(tetris.CueHit)
	p.PlayMusic()
	p.StopMusic()
	p.Close()
}
