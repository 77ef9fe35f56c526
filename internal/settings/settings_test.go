package settings_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/tetris/internal/settings"
	"github.com/plus3/tetris/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	s, err := settings.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, settings.Default(), s)
	assert.Equal(t, tetris.ArrowControls(), s.Controls())
	assert.Equal(t, 0.3, s.MusicVolume)
	assert.Equal(t, 1.0, s.EffectsVolume)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")

	s := settings.Default()
	s.NextPreset()
	s.MusicVolume = 0
	s.Overrides.ClearDelay = 250 * time.Millisecond
	require.NoError(t, s.Save(path))

	got, err := settings.Load(path)
	require.NoError(t, err)
	assert.Equal(t, s, got)
	assert.Equal(t, tetris.LetterControls(), got.Controls())
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("effects_volume: 0.5\noverrides:\n  accelerated_interval: 30ms\n"), 0o644))

	s, err := settings.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.5, s.EffectsVolume)
	assert.Equal(t, 0.3, s.MusicVolume)
	assert.Len(t, s.Presets, 2)
	assert.Equal(t, 30*time.Millisecond, s.Overrides.AcceleratedInterval)
}

func TestLoadRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"unknown key", "presets:\n  - {left: KeyA, right: KeyD, rotate: KeyW, down: Hyper}\nactive_preset: 0\n", settings.ErrUnknownKey},
		{"conflicting keys", "presets:\n  - {left: KeyA, right: KeyA, rotate: KeyW, down: KeyS}\nactive_preset: 0\n", settings.ErrConflictingKeys},
		{"preset out of range", "active_preset: 5\n", settings.ErrInvalid},
		{"loud music", "music_volume: 3\n", settings.ErrInvalid},
		{"zero interval", "overrides:\n  intervals: [100ms, 0s]\n", settings.ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o644))

			_, err := settings.Load(path)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("presets: {"), 0o644))
	_, err := settings.Load(path)
	assert.Error(t, err)
}

func TestSaveRejectsInvalid(t *testing.T) {
	s := settings.Default()
	s.Presets[0].Down = "NotAKey"

	err := s.Save(filepath.Join(t.TempDir(), "settings.yaml"))
	assert.ErrorIs(t, err, settings.ErrUnknownKey)
}

func TestNextPresetWraps(t *testing.T) {
	s := settings.Default()
	assert.Equal(t, tetris.LetterControls(), s.NextPreset())
	assert.Equal(t, tetris.ArrowControls(), s.NextPreset())
}

func TestEngineConfig(t *testing.T) {
	s := settings.Default()
	s.Overrides = settings.Overrides{
		LevelPointsPerLevel: 10,
		Intervals:           []time.Duration{500 * time.Millisecond},
		ClearDelay:          100 * time.Millisecond,
	}

	cfg := s.EngineConfig(tetris.Config{})
	assert.Equal(t, tetris.ArrowControls(), cfg.Controls)
	assert.Equal(t, 10, cfg.Policy.LevelPointsPerLevel)
	assert.Equal(t, []time.Duration{500 * time.Millisecond}, cfg.Policy.Intervals)
	assert.Equal(t, tetris.DefaultPolicy().LineScores, cfg.Policy.LineScores)
	assert.Equal(t, 50*time.Millisecond, cfg.Policy.AcceleratedInterval)
	assert.Equal(t, 100*time.Millisecond, cfg.ClearDelay)

	assert.Equal(t, time.Second, tetris.DefaultPolicy().Intervals[0], "overrides never touch the shared defaults")
}

func TestValidKeyCode(t *testing.T) {
	for _, code := range []string{"KeyA", "KeyZ", "Digit0", "ArrowDown", "Space"} {
		assert.True(t, settings.ValidKeyCode(code), code)
	}
	for _, code := range []string{"", "A", "keya", "Arrow"} {
		assert.False(t, settings.ValidKeyCode(code), code)
	}
}
