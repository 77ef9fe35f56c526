package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/tetris/internal/app"
	"github.com/plus3/tetris/internal/palette"
	"github.com/plus3/tetris/tetris"
)

const (
	CellSize    = 28
	BoardX      = 30
	BoardY      = 60
	PreviewCell = 20
	flashPeriod = 100 * time.Millisecond
)

var backgroundColor = palette.Background

var menuLabels = map[app.MenuItem]string{
	app.MenuStart:    "Start",
	app.MenuRankings: "Rankings",
	app.MenuControls: "Controls",
	app.MenuQuit:     "Quit",
}

func drawCell(screen *ebiten.Image, x, y, size float32, c color.Color) {
	vector.DrawFilledRect(screen, x, y, size, size, c, false)
	vector.StrokeRect(screen, x, y, size, size, 1, color.Black, false)
}

func drawHome(screen *ebiten.Image, s *app.Session) {
	ebitenutil.DebugPrintAt(screen, "T E T R I S", BoardX, BoardY)

	for i, item := range app.Menu {
		label := menuLabels[item]
		if item == app.MenuControls {
			label = fmt.Sprintf("%s: %s", label, controlsLabel(s.Controls()))
		}
		cursor := "  "
		if i == s.MenuIndex() {
			cursor = "> "
		}
		ebitenutil.DebugPrintAt(screen, cursor+label, BoardX, BoardY+40+i*20)
	}

	ebitenutil.DebugPrintAt(screen, "Enter to select, F2 controls, F3 inspector, F4 mute", BoardX, ScreenHeight-40)
	if status := s.Status(); status != "" {
		ebitenutil.DebugPrintAt(screen, status, BoardX, ScreenHeight-60)
	}
}

func controlsLabel(c tetris.KeyboardControls) string {
	if c == tetris.ArrowControls() {
		return "arrows"
	}
	if c == tetris.LetterControls() {
		return "WASD"
	}
	return fmt.Sprintf("%s %s %s %s", c.Left, c.Right, c.Rotate, c.Down)
}

func drawGame(screen *ebiten.Image, s *app.Session) {
	engine := s.Engine()
	snap := engine.Snapshot()
	flashOn := (engine.Scheduler().Now()/flashPeriod)%2 == 0
	gameOver := snap.GameOver()

	vector.StrokeRect(screen, BoardX-2, BoardY-2, tetris.BoardWidth*CellSize+4, tetris.BoardHeight*CellSize+4, 2, palette.Frame, false)

	for _, row := range snap.Grid {
		for _, b := range row {
			if b == nil {
				continue
			}
			x := float32(BoardX + b.Position.Column*CellSize)
			y := float32(BoardY + b.Position.Row*CellSize)
			drawCell(screen, x, y, CellSize, palette.Block(*b, flashOn, gameOver))
		}
	}

	for _, b := range snap.Falling {
		if b.Position.Row < 0 {
			continue
		}
		x := float32(BoardX + b.Position.Column*CellSize)
		y := float32(BoardY + b.Position.Row*CellSize)
		drawCell(screen, x, y, CellSize, palette.Block(b, flashOn, gameOver))
	}

	textX := BoardX + tetris.BoardWidth*CellSize + 20
	ebitenutil.DebugPrintAt(screen, "NEXT", textX, BoardY)
	if next := snap.Next; next != nil {
		for _, c := range next.Cells {
			x := float32(textX + c.Column*PreviewCell)
			y := float32(BoardY + 20 + c.Row*PreviewCell)
			col := palette.Of(next.Type)
			if gameOver {
				col = palette.Disabled
			}
			drawCell(screen, x, y, PreviewCell, col)
		}
	}

	ebitenutil.DebugPrintAt(screen, "SCORE", textX, BoardY+120)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", snap.Score), textX, BoardY+140)
	ebitenutil.DebugPrintAt(screen, "LEVEL", textX, BoardY+180)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", snap.Level), textX, BoardY+200)
	ebitenutil.DebugPrintAt(screen, "LINES", textX, BoardY+240)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", snap.Lines), textX, BoardY+260)
	ebitenutil.DebugPrintAt(screen, "Esc: menu", textX, BoardY+tetris.BoardHeight*CellSize-20)
}

func drawGameOver(screen *ebiten.Image, s *app.Session) {
	x, y := float32(BoardX+10), float32(BoardY+tetris.BoardHeight*CellSize/2-60)
	vector.DrawFilledRect(screen, x, y, tetris.BoardWidth*CellSize-20, 120, color.RGBA{0, 0, 0, 220}, false)

	result := s.Result()
	tx, ty := int(x)+10, int(y)+10
	ebitenutil.DebugPrintAt(screen, "GAME OVER", tx, ty)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Level %d  Lines %d  Score %d", result.Level, result.Lines, result.Score), tx, ty+20)
	if s.Qualified() {
		ebitenutil.DebugPrintAt(screen, "Name: "+s.Name()+"_", tx, ty+50)
		ebitenutil.DebugPrintAt(screen, "Enter to save, Esc to skip", tx, ty+70)
	} else {
		ebitenutil.DebugPrintAt(screen, "Not a top ten score", tx, ty+50)
		ebitenutil.DebugPrintAt(screen, "Enter for rankings, Esc for menu", tx, ty+70)
	}
	if status := s.Status(); status != "" {
		ebitenutil.DebugPrintAt(screen, status, tx, ty+90)
	}
}

func drawRankings(screen *ebiten.Image, s *app.Session) {
	ebitenutil.DebugPrintAt(screen, "RANKINGS", BoardX, BoardY)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%-3s %-16s %6s %6s %8s", "#", "NAME", "LEVEL", "LINES", "SCORE"), BoardX, BoardY+30)

	for i, e := range s.Rankings() {
		line := fmt.Sprintf("%-3d %-16s %6d %6d %8d", i+1, e.Name, e.Level, e.Lines, e.Score)
		ebitenutil.DebugPrintAt(screen, line, BoardX, BoardY+50+i*20)
	}
	if len(s.Rankings()) == 0 {
		ebitenutil.DebugPrintAt(screen, "No games yet", BoardX, BoardY+50)
	}

	ebitenutil.DebugPrintAt(screen, "Enter to go back", BoardX, ScreenHeight-40)
}
