package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/tetris/debugui"
	debugui_ebiten "github.com/plus3/tetris/debugui/ebiten"
	"github.com/plus3/tetris/internal/app"
	"github.com/plus3/tetris/internal/sound/ebitensound"
)

var moveRepeat = keyRepeat{delay: 15, rate: 4}

type Game struct {
	session   *app.Session
	sound     *ebitensound.Player
	volumes   [2]float64
	muted     bool
	inspector *debugui.EngineInspector
	overlay   *debugui.Overlay
	backend   *debugui_ebiten.ImguiBackend

	keys  []ebiten.Key
	runes []rune
}

func (g *Game) Update() error {
	g.backend.Update()

	g.handleKeys()
	if g.session.Quit() {
		return ebiten.Termination
	}

	if !g.inspector.Paused {
		g.session.Advance(time.Second / time.Duration(ebiten.TPS()))
	}
	return nil
}

func (g *Game) handleKeys() {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		switch k {
		case ebiten.KeyF2:
			g.session.NextPreset()
			continue
		case ebiten.KeyF3:
			g.overlay.Visible = !g.overlay.Visible
			continue
		case ebiten.KeyF4:
			g.toggleMute()
			continue
		}
		if !g.overlay.InputState.WantCaptureKeyboard {
			g.session.KeyDown(keyCode(k))
		}
	}

	// Releases are always delivered so a soft drop never sticks.
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.session.KeyUp(keyCode(k))
	}

	if g.overlay.InputState.WantCaptureKeyboard {
		return
	}

	if g.session.Page() == app.PageGame {
		controls := g.session.Controls()
		g.keys = inpututil.AppendPressedKeys(g.keys[:0])
		for _, k := range g.keys {
			code := keyCode(k)
			if code != controls.Left && code != controls.Right && code != controls.Rotate {
				continue
			}
			if moveRepeat.fires(inpututil.KeyPressDuration(k)) {
				g.session.KeyDown(code)
			}
		}
	}

	g.runes = ebiten.AppendInputChars(g.runes[:0])
	for _, r := range g.runes {
		g.session.TypeRune(r)
	}
}

func (g *Game) toggleMute() {
	g.muted = !g.muted
	if g.muted {
		g.sound.SetVolumes(0, 0)
		return
	}
	g.sound.SetVolumes(g.volumes[0], g.volumes[1])
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	switch g.session.Page() {
	case app.PageHome:
		drawHome(screen, g.session)
	case app.PageGame:
		drawGame(screen, g.session)
	case app.PageGameOver:
		drawGame(screen, g.session)
		drawGameOver(screen, g.session)
	case app.PageRankings:
		drawRankings(screen, g.session)
	}

	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
