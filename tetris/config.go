package tetris

import (
	"time"

	"github.com/rs/zerolog"
)

// DefaultClearDelay is how long full rows flash before they collapse.
const DefaultClearDelay = 500 * time.Millisecond

// Config wires an Engine to its host. Zero fields fall back to defaults.
type Config struct {
	Controls   KeyboardControls
	Policy     Policy
	ClearDelay time.Duration

	// RandomRotation spawns pieces in a random rotation state instead of 0.
	RandomRotation bool

	Random     RandomSource
	Sound      SoundPlayer
	OnGameOver func(MatchResult)
	Logger     *zerolog.Logger
}

// DefaultConfig returns a config with arrow-key controls and the standard policy.
func DefaultConfig() Config {
	return Config{
		Controls:   ArrowControls(),
		Policy:     DefaultPolicy(),
		ClearDelay: DefaultClearDelay,
	}
}

func (c Config) withDefaults() Config {
	if c.Controls == (KeyboardControls{}) {
		c.Controls = ArrowControls()
	}
	if c.Policy.Intervals == nil && c.Policy.LineScores == nil {
		c.Policy = DefaultPolicy()
	}
	if c.ClearDelay <= 0 {
		c.ClearDelay = DefaultClearDelay
	}
	if c.Random == nil {
		c.Random = NewRandomSource(uint64(time.Now().UnixNano()))
	}
	if c.Sound == nil {
		c.Sound = NopSound{}
	}
	if c.Logger == nil {
		nop := zerolog.Nop()
		c.Logger = &nop
	}
	return c
}
