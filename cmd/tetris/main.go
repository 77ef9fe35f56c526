package main

import (
	"context"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tetris/debugui"
	debugui_ebiten "github.com/plus3/tetris/debugui/ebiten"
	"github.com/plus3/tetris/internal/app"
	"github.com/plus3/tetris/internal/config"
	"github.com/plus3/tetris/internal/rankings"
	"github.com/plus3/tetris/internal/settings"
	"github.com/plus3/tetris/internal/sound/ebitensound"
	"github.com/plus3/tetris/tetris"
	"github.com/rs/zerolog/log"
)

const (
	ScreenWidth  = 500
	ScreenHeight = 700
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
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

	ctx := context.Background()

	var store rankings.Store
	store, err = rankings.OpenSQLite(ctx, cfg.RankingsDB)
	if err != nil {
		log.Warn().Err(err).Msg("rankings will not be saved")
		store = rankings.NewMemoryStore()
	}
	defer store.Close()

	player := ebitensound.New(prefs.EffectsVolume, prefs.MusicVolume)

	session := app.NewSession(ctx, app.Options{
		Engine:       tetris.Config{},
		Settings:     prefs,
		SettingsPath: cfg.SettingsPath,
		Store:        store,
		Sound:        player,
		Player:       cfg.Player,
		Logger:       log.Logger,
	})

	engine := session.Engine()
	inspector := debugui.NewEngineInspector(engine)
	perf := debugui.NewPerformanceStats(engine.Scheduler(), 120)
	timer := debugui.NewFrameTimer()

	overlay := &debugui.Overlay{}
	overlay.Add(inspector.Render)
	overlay.Add(debugui.NewBoardViewer(engine).Render)
	overlay.Add(func() { perf.Render(timer.GetDeltaTime()) })

	backend := debugui_ebiten.NewImguiBackend("Tetris", ScreenWidth, ScreenHeight, overlay)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game := &Game{
		session:   session,
		sound:     player,
		volumes:   [2]float64{prefs.EffectsVolume, prefs.MusicVolume},
		inspector: inspector,
		overlay:   overlay,
		backend:   backend,
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}
