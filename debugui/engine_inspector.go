package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetris/tetris"
)

// EngineInspector shows the engine's counters and lets the user pause the
// clock and step single ticks. The host reads Paused before advancing the
// scheduler.
type EngineInspector struct {
	engine *tetris.Engine
	Paused bool
}

func NewEngineInspector(engine *tetris.Engine) *EngineInspector {
	return &EngineInspector{engine: engine}
}

func (ei *EngineInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 320), imgui.CondOnce)

	if !imgui.BeginV("Engine", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := ei.engine.Stats()

	switch stats.State {
	case tetris.StateGameOver:
		imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), "GAME OVER")
	case tetris.StateClearing:
		imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "CLEARING")
	default:
		imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), "FALLING")
	}

	imgui.Text(fmt.Sprintf("Level: %d (%d points)", stats.Level+1, stats.LevelPoints))
	imgui.Text(fmt.Sprintf("Lines: %d", stats.Lines))
	imgui.Text(fmt.Sprintf("Score: %.2f", stats.Score))
	imgui.Text(fmt.Sprintf("Pieces Locked: %d", stats.PiecesLocked))
	imgui.Text(fmt.Sprintf("Settled Blocks: %d", stats.Blocks))
	imgui.Text(fmt.Sprintf("Interval: %s (soft drop: %t)", stats.Interval, stats.SoftDrop))
	if len(stats.PendingRows) > 0 {
		imgui.Text(fmt.Sprintf("Pending Rows: %v", stats.PendingRows))
	}

	imgui.Separator()
	ctrl := ei.engine.Controller()
	if piece, ok := ctrl.Active(); ok {
		imgui.Text(fmt.Sprintf("Active: %s at (%d, %d) rotation %d",
			piece.Type.BlockType, piece.Pivot.Column, piece.Pivot.Row, piece.Rotation))
	} else {
		imgui.Text("Active: none")
	}
	if next, ok := ctrl.Next(); ok {
		imgui.Text(fmt.Sprintf("Next: %s rotation %d", next.Type.BlockType, next.Rotation))
	}

	imgui.Separator()
	imgui.Checkbox("Paused", &ei.Paused)
	if ei.Paused {
		imgui.SameLine()
		if imgui.Button("Step Tick") {
			ei.engine.Tick()
		}
	}
	if imgui.Button("Reset") {
		ei.engine.Reset()
	}

	imgui.End()
}
