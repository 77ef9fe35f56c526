// Package sound describes the game's sound cues as short synthesized tone
// sequences. The beepsound and ebitensound subpackages play them.
package sound

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/plus3/tetris/tetris"
)

// SampleRate is shared by every backend.
const SampleRate = 44100

// fade is the linear release applied to the end of each tone.
const fade = 5 * time.Millisecond

type Tone struct {
	Frequency float64
	Duration  time.Duration
}

// Cues maps each cue to its tone sequence. A zero frequency is a rest.
var Cues = map[tetris.Cue][]Tone{
	tetris.CueIllegalMove: {{110, 60 * time.Millisecond}},
	tetris.CueHit:         {{220, 40 * time.Millisecond}},
	tetris.CueLevelUp: {
		{523.25, 80 * time.Millisecond},
		{659.25, 80 * time.Millisecond},
		{783.99, 120 * time.Millisecond},
	},
	tetris.CueLineClear: {
		{880, 60 * time.Millisecond},
		{1318.51, 90 * time.Millisecond},
	},
}

// Theme is the looping background melody.
var Theme = []Tone{
	{659.25, 400 * time.Millisecond}, {493.88, 200 * time.Millisecond}, {523.25, 200 * time.Millisecond},
	{587.33, 400 * time.Millisecond}, {523.25, 200 * time.Millisecond}, {493.88, 200 * time.Millisecond},
	{440.00, 400 * time.Millisecond}, {440.00, 200 * time.Millisecond}, {523.25, 200 * time.Millisecond},
	{659.25, 400 * time.Millisecond}, {587.33, 200 * time.Millisecond}, {523.25, 200 * time.Millisecond},
	{493.88, 600 * time.Millisecond}, {523.25, 200 * time.Millisecond},
	{587.33, 400 * time.Millisecond}, {659.25, 400 * time.Millisecond},
	{523.25, 400 * time.Millisecond}, {440.00, 400 * time.Millisecond},
	{440.00, 400 * time.Millisecond}, {0, 400 * time.Millisecond},
}

// Samples returns the number of frames a tone sequence lasts at SampleRate.
func Samples(tones []Tone) int {
	n := 0
	for _, t := range tones {
		n += frames(t.Duration)
	}
	return n
}

func frames(d time.Duration) int {
	return int(d * SampleRate / time.Second)
}

// Render synthesizes tones into mono samples in [-volume, volume].
func Render(tones []Tone, volume float64) []float64 {
	out := make([]float64, 0, Samples(tones))
	release := frames(fade)

	for _, t := range tones {
		n := frames(t.Duration)
		for i := 0; i < n; i++ {
			if t.Frequency == 0 {
				out = append(out, 0)
				continue
			}
			amp := volume
			if left := n - i; left < release {
				amp *= float64(left) / float64(release)
			}
			out = append(out, amp*math.Sin(2*math.Pi*t.Frequency*float64(i)/SampleRate))
		}
	}
	return out
}

// PCM encodes tones as 16-bit little-endian interleaved stereo.
func PCM(tones []Tone, volume float64) []byte {
	samples := Render(tones, volume)
	buf := make([]byte, 4*len(samples))
	for i, s := range samples {
		v := uint16(int16(math.Round(s * math.MaxInt16)))
		binary.LittleEndian.PutUint16(buf[4*i:], v)
		binary.LittleEndian.PutUint16(buf[4*i+2:], v)
	}
	return buf
}

// Player is implemented by the audio backends.
type Player interface {
	tetris.SoundPlayer
	PlayMusic()
	StopMusic()
}

// Silent is used when no audio device is available.
type Silent struct{ tetris.NopSound }

func (Silent) PlayMusic() {}
func (Silent) StopMusic() {}
