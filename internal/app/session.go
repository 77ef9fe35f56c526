// Package app holds the page flow shared by the desktop and terminal hosts:
// the home menu, the game room, name entry after a game and the rankings.
// Hosts translate their input into key codes and runes, advance the clock and
// draw whatever page the session is on.
package app

import (
	"context"
	"time"
	"unicode"

	"github.com/plus3/tetris/internal/rankings"
	"github.com/plus3/tetris/internal/settings"
	"github.com/plus3/tetris/internal/sound"
	"github.com/plus3/tetris/tetris"
	"github.com/rs/zerolog"
)

type Page uint8

const (
	PageHome Page = iota
	PageGame
	PageGameOver
	PageRankings
)

var pageNames = [...]string{"home", "game", "game-over", "rankings"}

func (p Page) String() string {
	if int(p) < len(pageNames) {
		return pageNames[p]
	}
	return "unknown"
}

// MenuItem is an entry on the home page.
type MenuItem uint8

const (
	MenuStart MenuItem = iota
	MenuRankings
	MenuControls
	MenuQuit
)

var Menu = []MenuItem{MenuStart, MenuRankings, MenuControls, MenuQuit}

const (
	keyEnter     = "Enter"
	keyEscape    = "Escape"
	keyBackspace = "Backspace"
	keyUp        = "ArrowUp"
	keyDown      = "ArrowDown"
)

type Options struct {
	// Engine is the base config; controls, sound and the game-over hook are
	// filled in by the session.
	Engine       tetris.Config
	Settings     settings.Settings
	SettingsPath string
	Store        rankings.Store
	Sound        sound.Player
	Player       string
	Logger       zerolog.Logger
	Now          func() time.Time
}

type Session struct {
	engine       *tetris.Engine
	store        rankings.Store
	settings     settings.Settings
	settingsPath string
	sound        sound.Player
	log          zerolog.Logger
	now          func() time.Time

	ctx         context.Context
	defaultName string
	page        Page
	menuIndex   int
	name        []rune
	result      tetris.MatchResult
	top         []rankings.Entry
	status      string
	qualified   bool
	quit        bool
}

func NewSession(ctx context.Context, opts Options) *Session {
	s := &Session{
		store:        opts.Store,
		settings:     opts.Settings,
		settingsPath: opts.SettingsPath,
		sound:        opts.Sound,
		log:          opts.Logger.With().Str("component", "session").Logger(),
		now:          opts.Now,
		ctx:          ctx,
		defaultName:  opts.Player,
	}
	if s.sound == nil {
		s.sound = sound.Silent{}
	}
	if s.now == nil {
		s.now = time.Now
	}
	if len(s.settings.Presets) == 0 {
		s.settings = settings.Default()
	}

	cfg := s.settings.EngineConfig(opts.Engine)
	cfg.Sound = s.sound
	cfg.OnGameOver = s.gameOver
	if cfg.Logger == nil {
		logger := opts.Logger
		cfg.Logger = &logger
	}

	s.engine = tetris.NewEngine(cfg)
	s.engine.Scheduler().Stop()
	s.engine.Scheduler().Pause()
	return s
}

func (s *Session) Engine() *tetris.Engine { return s.engine }
func (s *Session) Page() Page { return s.page }
func (s *Session) MenuIndex() int { return s.menuIndex }
func (s *Session) Name() string { return string(s.name) }
func (s *Session) Result() tetris.MatchResult { return s.result }
func (s *Session) Rankings() []rankings.Entry { return s.top }
func (s *Session) Status() string { return s.status }
func (s *Session) Quit() bool { return s.quit }
func (s *Session) Settings() settings.Settings { return s.settings }
func (s *Session) Controls() tetris.KeyboardControls { return s.settings.Controls() }

// Qualified reports whether the finished game's score can enter the rankings.
// Name entry only matters when it does.
func (s *Session) Qualified() bool { return s.qualified }

// Advance moves the game clock. Time only passes in the game room. The
// scheduler is paused on every other page, which covers hosts that drive it
// with Scheduler.Run.
func (s *Session) Advance(dt time.Duration) {
	if s.page == PageGame {
		s.engine.Scheduler().Advance(dt)
	}
}

// KeyDown routes a key press to the current page.
func (s *Session) KeyDown(code string) {
	switch s.page {
	case PageHome:
		s.homeKey(code)
	case PageGame:
		if code == keyEscape {
			s.leaveGame()
			return
		}
		s.engine.KeyDown(code)
	case PageGameOver:
		s.nameKey(code)
	case PageRankings:
		if code == keyEnter || code == keyEscape {
			s.page = PageHome
		}
	}
}

// KeyUp routes a key release. Only the game room cares.
func (s *Session) KeyUp(code string) {
	if s.page == PageGame {
		s.engine.KeyUp(code)
	}
}

// TypeRune feeds text input for name entry.
func (s *Session) TypeRune(r rune) {
	if s.page != PageGameOver || !s.qualified || !unicode.IsPrint(r) {
		return
	}
	if len(s.name) >= rankings.MaxNameLength {
		return
	}
	s.name = append(s.name, unicode.ToUpper(r))
	s.status = ""
}

func (s *Session) homeKey(code string) {
	switch code {
	case keyUp:
		s.menuIndex = (s.menuIndex + len(Menu) - 1) % len(Menu)
	case keyDown:
		s.menuIndex = (s.menuIndex + 1) % len(Menu)
	case keyEnter:
		s.Select(Menu[s.menuIndex])
	case keyEscape:
		s.quit = true
	}
}

// Select runs a home menu entry.
func (s *Session) Select(item MenuItem) {
	switch item {
	case MenuStart:
		s.Start()
	case MenuRankings:
		s.ShowRankings()
	case MenuControls:
		s.NextPreset()
	case MenuQuit:
		s.quit = true
	}
}

// Start begins a fresh game.
func (s *Session) Start() {
	s.engine.Reset()
	s.engine.Scheduler().Resume()
	s.status = ""
	s.page = PageGame
	s.sound.PlayMusic()
	s.log.Info().Msg("game started")
}

func (s *Session) leaveGame() {
	s.engine.Scheduler().Stop()
	s.engine.Scheduler().Pause()
	s.sound.StopMusic()
	s.page = PageHome
	s.log.Info().Msg("game abandoned")
}

func (s *Session) gameOver(result tetris.MatchResult) {
	s.engine.Scheduler().Pause()
	s.sound.StopMusic()
	s.result = result
	s.qualified = true
	if top, err := s.store.Top(s.ctx); err != nil {
		s.log.Error().Err(err).Msg("cannot load rankings")
	} else {
		s.qualified = rankings.Qualifies(top, result.Score)
	}
	s.name = []rune(s.defaultName)
	if len(s.name) > rankings.MaxNameLength {
		s.name = s.name[:rankings.MaxNameLength]
	}
	s.page = PageGameOver
}

func (s *Session) nameKey(code string) {
	switch code {
	case keyBackspace:
		if len(s.name) > 0 {
			s.name = s.name[:len(s.name)-1]
		}
	case keyEnter:
		s.submit()
	case keyEscape:
		s.page = PageHome
	}
}

func (s *Session) submit() {
	if !s.qualified {
		s.ShowRankings()
		return
	}
	entry, err := rankings.NewEntry(string(s.name), s.result, s.now())
	if err != nil {
		s.status = "enter a name"
		return
	}
	if err := s.store.Add(s.ctx, entry); err != nil {
		s.log.Error().Err(err).Msg("cannot save ranking")
		s.status = "could not save the result"
		return
	}
	s.log.Info().Str("name", entry.Name).Int("score", entry.Score).Msg("ranking saved")
	s.ShowRankings()
}

// ShowRankings loads the leaderboard and switches to it.
func (s *Session) ShowRankings() {
	top, err := s.store.Top(s.ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("cannot load rankings")
		s.status = "could not load rankings"
		return
	}
	s.top = top
	s.page = PageRankings
}

// NextPreset switches keyboard controls and persists the choice.
func (s *Session) NextPreset() {
	controls := s.settings.NextPreset()
	s.engine.SetControls(controls)

	if s.settingsPath == "" {
		return
	}
	if err := s.settings.Save(s.settingsPath); err != nil {
		s.log.Error().Err(err).Msg("cannot save settings")
		s.status = "could not save settings"
	}
}
