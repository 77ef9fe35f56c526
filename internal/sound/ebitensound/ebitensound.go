// Package ebitensound plays sound cues through Ebitengine's audio context.
package ebitensound

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/plus3/tetris/internal/sound"
	"github.com/plus3/tetris/tetris"
	"github.com/rs/zerolog/log"
)

type Player struct {
	ctx         *audio.Context
	clips       map[tetris.Cue][]byte
	music       *audio.Player
	effects     float64
	musicVolume float64
}

// New renders every cue once and binds to the process-wide audio context,
// creating it when needed.
func New(effectsVolume, musicVolume float64) *Player {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sound.SampleRate)
	}

	clips := make(map[tetris.Cue][]byte, len(sound.Cues))
	for cue, tones := range sound.Cues {
		clips[cue] = sound.PCM(tones, 1)
	}

	return &Player{
		ctx:         ctx,
		clips:       clips,
		effects:     effectsVolume,
		musicVolume: musicVolume,
	}
}

func (p *Player) Play(cue tetris.Cue) {
	clip, ok := p.clips[cue]
	if !ok || p.effects == 0 {
		return
	}
	player := p.ctx.NewPlayerFromBytes(clip)
	player.SetVolume(p.effects)
	player.Play()
}

// PlayMusic starts or resumes the looping theme.
func (p *Player) PlayMusic() {
	if p.musicVolume == 0 {
		return
	}
	if p.music == nil {
		pcm := sound.PCM(sound.Theme, 1)
		loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))

		player, err := p.ctx.NewPlayer(loop)
		if err != nil {
			log.Warn().Err(err).Msg("cannot start theme")
			return
		}
		player.SetVolume(p.musicVolume)
		p.music = player
	}
	if !p.music.IsPlaying() {
		p.music.Play()
	}
}

func (p *Player) StopMusic() {
	if p.music != nil {
		p.music.Pause()
	}
}

// SetVolumes changes effect and music volume; the theme follows immediately.
func (p *Player) SetVolumes(effects, music float64) {
	p.effects = effects
	p.musicVolume = music
	if p.music != nil {
		p.music.SetVolume(music)
	}
}
