package app_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/tetris/internal/app"
	"github.com/plus3/tetris/internal/rankings"
	"github.com/plus3/tetris/internal/settings"
	"github.com/plus3/tetris/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type musicRecorder struct {
	tetris.NopSound
	playing bool
	starts  int
}

func (m *musicRecorder) PlayMusic() {
	m.playing = true
	m.starts++
}

func (m *musicRecorder) StopMusic() { m.playing = false }

type harness struct {
	session *app.Session
	store   *rankings.MemoryStore
	music   *musicRecorder
	path    string
}

func newHarness(t *testing.T, player string) *harness {
	t.Helper()

	h := &harness{
		store: rankings.NewMemoryStore(),
		music: &musicRecorder{},
		path:  filepath.Join(t.TempDir(), "settings.yaml"),
	}

	base := tetris.DefaultConfig()
	// Always the O piece, so the stack tops out after ten drops.
	base.Random = tetris.NewSequenceSource(3)

	h.session = app.NewSession(context.Background(), app.Options{
		Engine:       base,
		SettingsPath: h.path,
		Store:        h.store,
		Sound:        h.music,
		Player:       player,
		Now:          func() time.Time { return time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC) },
	})
	return h
}

// playUntilGameOver lets pieces fall until the board tops out.
func (h *harness) playUntilGameOver(t *testing.T) {
	t.Helper()
	for i := 0; i < 1000 && h.session.Page() == app.PageGame; i++ {
		h.session.Advance(time.Second)
	}
	require.Equal(t, app.PageGameOver, h.session.Page())
}

func TestHomeMenu(t *testing.T) {
	h := newHarness(t, "ace")
	s := h.session

	assert.Equal(t, app.PageHome, s.Page())
	assert.Zero(t, s.MenuIndex())

	s.KeyDown("ArrowUp")
	assert.Equal(t, len(app.Menu)-1, s.MenuIndex(), "menu wraps")
	s.KeyDown("ArrowDown")
	s.KeyDown("ArrowDown")
	assert.Equal(t, 1, s.MenuIndex())

	s.KeyDown("Enter")
	assert.Equal(t, app.PageRankings, s.Page())
	assert.Empty(t, s.Rankings())

	s.KeyDown("Escape")
	assert.Equal(t, app.PageHome, s.Page())

	s.KeyDown("Escape")
	assert.True(t, s.Quit())
}

func TestClockOnlyRunsInGame(t *testing.T) {
	h := newHarness(t, "ace")
	s := h.session

	s.Advance(10 * time.Second)
	_, active := s.Engine().Controller().Active()
	assert.False(t, active)

	s.Select(app.MenuStart)
	assert.Equal(t, app.PageGame, s.Page())
	assert.True(t, h.music.playing)

	s.Advance(time.Second)
	_, active = s.Engine().Controller().Active()
	assert.True(t, active)

	s.KeyDown("Escape")
	assert.Equal(t, app.PageHome, s.Page())
	assert.False(t, h.music.playing)
	assert.False(t, s.Engine().Scheduler().Ticking())
	assert.True(t, s.Engine().Scheduler().Paused())
}

// fillTwoRows drops five O pieces side by side across the bottom.
func fillTwoRows(t *testing.T, s *app.Session) {
	t.Helper()
	e := s.Engine()

	for _, shift := range []int{-4, -2, 0, 2, 4} {
		e.Tick()
		key := "ArrowRight"
		if shift < 0 {
			key, shift = "ArrowLeft", -shift
		}
		for i := 0; i < shift; i++ {
			s.KeyDown(key)
		}

		for i := 0; i < 2*tetris.BoardHeight; i++ {
			if _, active := e.Controller().Active(); !active {
				break
			}
			e.Tick()
		}
	}
}

func TestLeavingDuringClear(t *testing.T) {
	h := newHarness(t, "ace")
	s := h.session
	e := s.Engine()

	s.Start()
	fillTwoRows(t, s)
	require.Equal(t, tetris.StateClearing, e.State())
	require.Equal(t, []int{19, 18}, e.Stats().PendingRows)

	s.KeyDown("Escape")
	require.Equal(t, app.PageHome, s.Page())

	// A ticker-driven host keeps advancing the scheduler on every page.
	e.Scheduler().Advance(time.Second)
	assert.Equal(t, tetris.StateClearing, e.State())
	assert.Zero(t, e.Snapshot().Lines)
	assert.Zero(t, e.Snapshot().Score)

	s.Select(app.MenuStart)
	assert.Zero(t, e.Scheduler().Pending())
	assert.Zero(t, e.Board().Len())

	s.Advance(time.Second)
	_, active := e.Controller().Active()
	assert.True(t, active, "the clock runs again in the new game")
	assert.Zero(t, e.Snapshot().Lines)
}

func TestGameOverNameEntry(t *testing.T) {
	h := newHarness(t, "ace")
	s := h.session

	s.Start()
	h.playUntilGameOver(t)
	assert.False(t, h.music.playing)
	assert.True(t, s.Qualified())
	assert.True(t, s.Engine().Scheduler().Paused())
	assert.Equal(t, "ace", s.Name())
	assert.Equal(t, 1, s.Result().Level)

	for range "ace" {
		s.KeyDown("Backspace")
	}
	s.KeyDown("Backspace")
	assert.Empty(t, s.Name())

	s.KeyDown("Enter")
	assert.Equal(t, app.PageGameOver, s.Page(), "an empty name is rejected")
	assert.NotEmpty(t, s.Status())

	s.TypeRune('z')
	s.TypeRune('\n')
	s.TypeRune('e')
	assert.Equal(t, "ZE", s.Name())
	assert.Empty(t, s.Status())

	s.KeyDown("Enter")
	require.Equal(t, app.PageRankings, s.Page())
	require.Len(t, s.Rankings(), 1)
	assert.Equal(t, "ZE", s.Rankings()[0].Name)
	assert.Equal(t, s.Result().Score, s.Rankings()[0].Score)
}

func TestNameLengthLimit(t *testing.T) {
	h := newHarness(t, "ace")
	s := h.session

	s.Start()
	h.playUntilGameOver(t)

	for i := 0; i < 2*rankings.MaxNameLength; i++ {
		s.TypeRune('x')
	}
	assert.Len(t, s.Name(), rankings.MaxNameLength)
}

func TestRestartAfterGameOver(t *testing.T) {
	h := newHarness(t, "ace")
	s := h.session

	s.Start()
	h.playUntilGameOver(t)
	s.KeyDown("Escape")
	require.Equal(t, app.PageHome, s.Page())

	s.Select(app.MenuStart)
	assert.Equal(t, app.PageGame, s.Page())
	assert.Zero(t, s.Engine().Board().Len())
	assert.Equal(t, 2, h.music.starts)
}

func TestNextPresetPersists(t *testing.T) {
	h := newHarness(t, "ace")
	s := h.session

	s.Select(app.MenuControls)
	assert.Equal(t, tetris.LetterControls(), s.Controls())

	saved, err := settings.Load(h.path)
	require.NoError(t, err)
	assert.Equal(t, tetris.LetterControls(), saved.Controls())

	s.Start()
	s.Advance(time.Second)
	before, _ := s.Engine().Controller().Active()
	s.KeyDown("KeyA")
	after, _ := s.Engine().Controller().Active()
	assert.Equal(t, before.Pivot.Column-1, after.Pivot.Column)
}

func TestGameOverBelowRankings(t *testing.T) {
	h := newHarness(t, "ace")
	s := h.session

	for i := 0; i < rankings.Limit; i++ {
		require.NoError(t, h.store.Add(context.Background(), rankings.Entry{
			Name:     fmt.Sprintf("P%d", i),
			Score:    1000,
			PlayedAt: time.Unix(int64(i), 0),
		}))
	}

	s.Start()
	h.playUntilGameOver(t)
	require.Zero(t, s.Result().Score)
	assert.False(t, s.Qualified())

	s.TypeRune('x')
	assert.Equal(t, "ace", s.Name(), "no name entry for a score that cannot rank")

	s.KeyDown("Enter")
	require.Equal(t, app.PageRankings, s.Page())
	require.Len(t, s.Rankings(), rankings.Limit)
	for _, e := range s.Rankings() {
		assert.NotEqual(t, "ace", e.Name)
	}
}
