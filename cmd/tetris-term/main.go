package main

import (
	"context"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/tetris/internal/app"
	"github.com/plus3/tetris/internal/config"
	"github.com/plus3/tetris/internal/rankings"
	"github.com/plus3/tetris/internal/settings"
	"github.com/plus3/tetris/internal/sound"
	"github.com/plus3/tetris/internal/sound/beepsound"
	"github.com/plus3/tetris/tetris"
	"github.com/rs/zerolog/log"
)

const (
	framePeriod  = 16 * time.Millisecond
	redrawPeriod = 33 * time.Millisecond

	// Terminals report no key releases, so a held key is only visible as a
	// stream of repeats. Soft drop ends once the repeats stop.
	releaseTimeout = 150 * time.Millisecond
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if cfg.LogFile == "" {
		cfg.LogFile = "tetris-term.log"
	}
	closer, err := cfg.SetupLogging(os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot set up logging")
	}
	defer closer.Close()

	prefs, err := settings.Load(cfg.SettingsPath)
	if err != nil {
		log.Warn().Err(err).Msg("using default settings")
		prefs = settings.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var store rankings.Store
	store, err = rankings.OpenSQLite(ctx, cfg.RankingsDB)
	if err != nil {
		log.Warn().Err(err).Msg("rankings will not be saved")
		store = rankings.NewMemoryStore()
	}
	defer store.Close()

	var player sound.Player = sound.Silent{}
	beeper := beepsound.New(prefs.EffectsVolume, prefs.MusicVolume)
	if err := beeper.Init(); err != nil {
		// Non-fatal, the game runs without sound
		log.Warn().Err(err).Msg("audio initialization failed")
	} else {
		player = beeper
		defer beeper.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open terminal")
	}
	if err := screen.Init(); err != nil {
		log.Fatal().Err(err).Msg("cannot open terminal")
	}
	defer screen.Fini()

	session := app.NewSession(ctx, app.Options{
		Engine:       tetris.Config{},
		Settings:     prefs,
		SettingsPath: cfg.SettingsPath,
		Store:        store,
		Sound:        player,
		Player:       cfg.Player,
		Logger:       log.Logger,
	})

	t := &terminal{
		screen:   screen,
		session:  session,
		releaser: &softDropReleaser{timeout: releaseTimeout},
		quit:     cancel,
	}
	t.run(ctx)
}

// terminal owns the screen. Every method runs on the scheduler goroutine.
type terminal struct {
	screen   tcell.Screen
	session  *app.Session
	releaser *softDropReleaser
	quit     context.CancelFunc
}

func (t *terminal) run(ctx context.Context) {
	scheduler := t.session.Engine().Scheduler()

	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			scheduler.Post(func() { t.handle(ev) })
		}
	}()

	go func() {
		ticker := time.NewTicker(redrawPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				scheduler.Post(t.frame)
			}
		}
	}()

	scheduler.Run(ctx, framePeriod)
}

func (t *terminal) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			t.quit()
			return
		}

		now := t.session.Engine().Scheduler().Now()
		if code, ok := keyCode(ev); ok {
			if code == t.session.Controls().Down {
				if t.releaser.press(now) {
					t.session.KeyDown(code)
				}
			} else {
				t.session.KeyDown(code)
			}
		}
		if ev.Key() == tcell.KeyRune {
			t.session.TypeRune(ev.Rune())
		}

		if t.session.Quit() {
			t.quit()
		}

	case *tcell.EventResize:
		t.screen.Sync()
	}
}

func (t *terminal) frame() {
	if t.releaser.expired(t.session.Engine().Scheduler().Now()) {
		t.session.KeyUp(t.session.Controls().Down)
	}
	t.draw()
}
