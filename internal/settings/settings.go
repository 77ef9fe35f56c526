// Package settings persists player preferences in a YAML file: the keyboard
// presets, which one is active, audio volumes and optional speed overrides.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/plus3/tetris/tetris"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownKey      = errors.New("unknown key code")
	ErrConflictingKeys = errors.New("key bound to more than one action")
	ErrInvalid         = errors.New("invalid settings")
)

// Overrides replaces parts of the default policy. Zero fields keep the default.
type Overrides struct {
	LevelPointsPerLevel int             `yaml:"level_points_per_level,omitempty"`
	AcceleratedInterval time.Duration   `yaml:"accelerated_interval,omitempty"`
	Intervals           []time.Duration `yaml:"intervals,omitempty"`
	ClearDelay          time.Duration   `yaml:"clear_delay,omitempty"`
}

type Settings struct {
	Presets       []tetris.KeyboardControls `yaml:"presets"`
	ActivePreset  int                       `yaml:"active_preset"`
	MusicVolume   float64                   `yaml:"music_volume"`
	EffectsVolume float64                   `yaml:"effects_volume"`
	Overrides     Overrides                 `yaml:"overrides,omitempty"`
}

// Default returns WASD and arrow presets with arrows active.
func Default() Settings {
	return Settings{
		Presets:       []tetris.KeyboardControls{tetris.LetterControls(), tetris.ArrowControls()},
		ActivePreset:  1,
		MusicVolume:   0.3,
		EffectsVolume: 1,
	}
}

// Load reads path. A missing file yields the defaults; fields absent from the
// file keep their default values.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Save validates s and writes it to path, creating parent directories.
func (s Settings) Save(path string) error {
	if err := s.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func (s Settings) Validate() error {
	if len(s.Presets) == 0 {
		return fmt.Errorf("%w: no control presets", ErrInvalid)
	}
	if s.ActivePreset < 0 || s.ActivePreset >= len(s.Presets) {
		return fmt.Errorf("%w: active preset %d out of range", ErrInvalid, s.ActivePreset)
	}
	if s.MusicVolume < 0 || s.MusicVolume > 1 || s.EffectsVolume < 0 || s.EffectsVolume > 1 {
		return fmt.Errorf("%w: volumes must be within [0, 1]", ErrInvalid)
	}

	for i, p := range s.Presets {
		if err := ValidateControls(p); err != nil {
			return fmt.Errorf("preset %d: %w", i, err)
		}
	}

	o := s.Overrides
	if o.LevelPointsPerLevel < 0 || o.AcceleratedInterval < 0 || o.ClearDelay < 0 {
		return fmt.Errorf("%w: negative override", ErrInvalid)
	}
	for _, d := range o.Intervals {
		if d <= 0 {
			return fmt.Errorf("%w: interval %s", ErrInvalid, d)
		}
	}
	return nil
}

// ValidateControls checks every binding is a known, distinct key code.
func ValidateControls(c tetris.KeyboardControls) error {
	seen := map[string]bool{}
	for _, code := range []string{c.Left, c.Right, c.Rotate, c.Down} {
		if !ValidKeyCode(code) {
			return fmt.Errorf("%w: %q", ErrUnknownKey, code)
		}
		if seen[code] {
			return fmt.Errorf("%w: %q", ErrConflictingKeys, code)
		}
		seen[code] = true
	}
	return nil
}

// Controls returns the active preset.
func (s Settings) Controls() tetris.KeyboardControls {
	return s.Presets[s.ActivePreset]
}

// NextPreset makes the following preset active, wrapping around.
func (s *Settings) NextPreset() tetris.KeyboardControls {
	s.ActivePreset = (s.ActivePreset + 1) % len(s.Presets)
	return s.Controls()
}

// EngineConfig applies the controls and overrides on top of base.
func (s Settings) EngineConfig(base tetris.Config) tetris.Config {
	base.Controls = s.Controls()

	policy := base.Policy
	if policy.Intervals == nil && policy.LineScores == nil {
		policy = tetris.DefaultPolicy()
	}
	if s.Overrides.LevelPointsPerLevel > 0 {
		policy.LevelPointsPerLevel = s.Overrides.LevelPointsPerLevel
	}
	if s.Overrides.AcceleratedInterval > 0 {
		policy.AcceleratedInterval = s.Overrides.AcceleratedInterval
	}
	if len(s.Overrides.Intervals) > 0 {
		policy.Intervals = append([]time.Duration(nil), s.Overrides.Intervals...)
	}
	base.Policy = policy

	if s.Overrides.ClearDelay > 0 {
		base.ClearDelay = s.Overrides.ClearDelay
	}
	return base
}
