package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetris/internal/palette"
	"github.com/plus3/tetris/tetris"
)

const cellSize = 12

// BoardViewer draws the settled grid and the falling piece, and looks up
// blocks by id.
type BoardViewer struct {
	engine   *tetris.Engine
	lookupID int32
}

func NewBoardViewer(engine *tetris.Engine) *BoardViewer {
	return &BoardViewer{engine: engine}
}

func (bv *BoardViewer) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(320, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(220, 420), imgui.CondOnce)

	if !imgui.BeginV("Board", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	snap := bv.engine.Snapshot()
	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()

	border := imgui.ColorU32Vec4(imgui.NewVec4(0.5, 0.5, 0.5, 1))
	drawList.AddRect(origin, imgui.NewVec2(origin.X+tetris.BoardWidth*cellSize, origin.Y+tetris.BoardHeight*cellSize), border)

	fill := func(b tetris.Block, alpha float32) {
		c := palette.Block(b, true, snap.GameOver())
		x := origin.X + float32(b.Position.Column*cellSize)
		y := origin.Y + float32(b.Position.Row*cellSize)
		color := imgui.ColorU32Vec4(imgui.NewVec4(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, alpha))
		drawList.AddRectFilled(imgui.NewVec2(x+1, y+1), imgui.NewVec2(x+cellSize-1, y+cellSize-1), color)
	}

	for _, row := range snap.Grid {
		for _, b := range row {
			if b != nil {
				fill(*b, 1)
			}
		}
	}
	for _, b := range snap.Falling {
		if b.Position.Row >= 0 {
			fill(b, 0.7)
		}
	}
	imgui.Dummy(imgui.NewVec2(tetris.BoardWidth*cellSize, tetris.BoardHeight*cellSize))

	imgui.Separator()
	imgui.SetNextItemWidth(100)
	imgui.InputInt("Block ID", &bv.lookupID)
	if b, ok := bv.engine.Board().Lookup(tetris.BlockID(bv.lookupID)); ok {
		imgui.Text(fmt.Sprintf("%s at (%d, %d) removed: %t", b.Type, b.Position.Column, b.Position.Row, b.Removed))
	} else {
		imgui.Text("not on the board")
	}

	imgui.End()
}
