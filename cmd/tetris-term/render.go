package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/tetris/internal/app"
	"github.com/plus3/tetris/internal/palette"
	"github.com/plus3/tetris/internal/rankings"
	"github.com/plus3/tetris/tetris"
)

const (
	boardX      = 2
	boardY      = 1
	flashPeriod = 100 * time.Millisecond
)

var (
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	frameStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	titleStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

var menuLabels = map[app.MenuItem]string{
	app.MenuStart:    "Start",
	app.MenuRankings: "Rankings",
	app.MenuControls: "Controls",
	app.MenuQuit:     "Quit",
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (t *terminal) print(x, y int, style tcell.Style, s string) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// cell draws one board cell as two terminal columns.
func (t *terminal) cell(column, row int, c color.RGBA) {
	style := tcell.StyleDefault.Foreground(rgb(c)).Background(rgb(c))
	x := boardX + 1 + 2*column
	y := boardY + 1 + row
	t.screen.SetContent(x, y, ' ', nil, style)
	t.screen.SetContent(x+1, y, ' ', nil, style)
}

func (t *terminal) draw() {
	t.screen.Clear()

	switch t.session.Page() {
	case app.PageHome:
		t.drawHome()
	case app.PageGame:
		t.drawGame()
	case app.PageGameOver:
		t.drawGame()
		t.drawGameOver()
	case app.PageRankings:
		t.drawRankings()
	}

	t.screen.Show()
}

func (t *terminal) drawHome() {
	s := t.session
	t.print(boardX, boardY, titleStyle, "T E T R I S")

	for i, item := range app.Menu {
		label := menuLabels[item]
		if item == app.MenuControls {
			c := s.Controls()
			label = fmt.Sprintf("%s: %s %s %s %s", label, c.Left, c.Right, c.Rotate, c.Down)
		}
		style := textStyle
		if i == s.MenuIndex() {
			style = style.Reverse(true)
		}
		t.print(boardX, boardY+2+i, style, label)
	}

	t.print(boardX, boardY+len(app.Menu)+3, frameStyle, "arrows + Enter, Esc quits")
	if status := s.Status(); status != "" {
		t.print(boardX, boardY+len(app.Menu)+5, textStyle, status)
	}
}

func (t *terminal) drawGame() {
	engine := t.session.Engine()
	snap := engine.Snapshot()
	flashOn := (engine.Scheduler().Now()/flashPeriod)%2 == 0
	gameOver := snap.GameOver()

	right := boardX + 2*tetris.BoardWidth + 1
	bottom := boardY + tetris.BoardHeight + 1
	for y := boardY; y <= bottom; y++ {
		t.screen.SetContent(boardX, y, '│', nil, frameStyle)
		t.screen.SetContent(right, y, '│', nil, frameStyle)
	}
	for x := boardX; x <= right; x++ {
		t.screen.SetContent(x, bottom, '─', nil, frameStyle)
	}

	for _, row := range snap.Grid {
		for _, b := range row {
			if b != nil {
				t.cell(b.Position.Column, b.Position.Row, palette.Block(*b, flashOn, gameOver))
			}
		}
	}
	for _, b := range snap.Falling {
		if b.Position.Row >= 0 {
			t.cell(b.Position.Column, b.Position.Row, palette.Block(b, flashOn, gameOver))
		}
	}

	textX := right + 3
	t.print(textX, boardY, titleStyle, "NEXT")
	if next := snap.Next; next != nil {
		c := palette.Of(next.Type)
		if gameOver {
			c = palette.Disabled
		}
		style := tcell.StyleDefault.Background(rgb(c))
		for _, p := range next.Cells {
			t.screen.SetContent(textX+2*p.Column, boardY+2+p.Row, ' ', nil, style)
			t.screen.SetContent(textX+2*p.Column+1, boardY+2+p.Row, ' ', nil, style)
		}
	}

	t.print(textX, boardY+7, titleStyle, "SCORE")
	t.print(textX, boardY+8, textStyle, fmt.Sprintf("%d", snap.Score))
	t.print(textX, boardY+10, titleStyle, "LEVEL")
	t.print(textX, boardY+11, textStyle, fmt.Sprintf("%d", snap.Level))
	t.print(textX, boardY+13, titleStyle, "LINES")
	t.print(textX, boardY+14, textStyle, fmt.Sprintf("%d", snap.Lines))
	t.print(textX, bottom, frameStyle, "Esc: menu")
}

func (t *terminal) drawGameOver() {
	s := t.session
	result := s.Result()
	x, y := boardX+2, boardY+tetris.BoardHeight/2-3

	lines := []string{
		"GAME OVER",
		fmt.Sprintf("L%d  %d lines", result.Level, result.Lines),
		fmt.Sprintf("score %d", result.Score),
	}
	if s.Qualified() {
		lines = append(lines, "name: "+s.Name()+"_", "Enter saves")
	} else {
		lines = append(lines, "not in top ten", "Enter: rankings")
	}
	if status := s.Status(); status != "" {
		lines = append(lines, status)
	}
	for i, line := range lines {
		t.print(x, y+i, textStyle.Reverse(true), fmt.Sprintf("%-16s", line))
	}
}

func (t *terminal) drawRankings() {
	s := t.session
	t.print(boardX, boardY, titleStyle, "RANKINGS")
	t.print(boardX, boardY+2, frameStyle, fmt.Sprintf("%-3s %-16s %5s %5s %8s", "#", "NAME", "LEVEL", "LINES", "SCORE"))

	for i, e := range s.Rankings() {
		t.print(boardX, boardY+3+i, textStyle, fmt.Sprintf("%-3d %-16s %5d %5d %8d", i+1, e.Name, e.Level, e.Lines, e.Score))
	}
	if len(s.Rankings()) == 0 {
		t.print(boardX, boardY+3, textStyle, "No games yet")
	}

	t.print(boardX, boardY+4+rankings.Limit, frameStyle, "Enter to go back")
}
