// Package beepsound plays sound cues through gopxl/beep's speaker. It suits
// hosts without their own audio stack, such as the terminal client.
package beepsound

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/tetris/internal/sound"
	"github.com/plus3/tetris/tetris"
	"github.com/rs/zerolog/log"
)

const sampleRate = beep.SampleRate(sound.SampleRate)

type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	effects     float64
	musicVolume float64
	initialized bool
}

func New(effectsVolume, musicVolume float64) *Player {
	return &Player{
		mixer:       &beep.Mixer{},
		effects:     effectsVolume,
		musicVolume: musicVolume,
	}
}

// Init opens the audio device and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

func (p *Player) Play(cue tetris.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.effects == 0 {
		return
	}

	s, err := Streamer(sound.Cues[cue], p.effects)
	if err != nil {
		log.Warn().Err(err).Stringer("cue", cue).Msg("cannot synthesize cue")
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// PlayMusic starts looping the theme. It is a no-op while the theme plays.
func (p *Player) PlayMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.musicVolume == 0 {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	if p.music != nil {
		p.music.Paused = false
		return
	}

	theme, err := Streamer(sound.Theme, p.musicVolume)
	if err != nil {
		log.Warn().Err(err).Msg("cannot synthesize theme")
		return
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(theme)

	p.music = &beep.Ctrl{Streamer: beep.Loop(-1, buf.Streamer(0, buf.Len()))}
	p.mixer.Add(p.music)
}

func (p *Player) StopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.music == nil {
		return
	}
	speaker.Lock()
	p.music.Paused = true
	speaker.Unlock()
}

// Close silences everything and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.music = nil
	p.initialized = false
}

// Streamer builds a finite streamer for a tone sequence at the given volume.
func Streamer(tones []sound.Tone, volume float64) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		n := sampleRate.N(t.Duration)
		if t.Frequency == 0 {
			parts = append(parts, generators.Silence(n))
			continue
		}
		sine, err := generators.SineTone(sampleRate, t.Frequency)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(n, sine))
	}
	return withVolume(beep.Seq(parts...), volume), nil
}

func withVolume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}
