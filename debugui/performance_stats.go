package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetris/tetris"
)

type PerformanceStats struct {
	scheduler     *tetris.Scheduler
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewPerformanceStats(scheduler *tetris.Scheduler, historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		scheduler:     scheduler,
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

func (ps *PerformanceStats) Render(deltaTime float32) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames

	stats := ps.scheduler.GetStats()

	imgui.Text(fmt.Sprintf("Clock: %s", stats.Now.Truncate(time.Millisecond)))
	imgui.Text(fmt.Sprintf("Tick Interval: %s (ticking: %t, paused: %t)", stats.Interval, stats.Ticking, stats.Paused))
	imgui.Text(fmt.Sprintf("Deferred Commands: %d", stats.Pending))
	imgui.Text(fmt.Sprintf("Executions: %d", stats.TotalExecutions))

	var avgFrameTime float32
	for _, ft := range ps.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(ps.historyFrames)

	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("Job Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("JobStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Job")
			imgui.TableSetupColumn("Count")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableSetupColumn("Last")
			imgui.TableHeadersRow()

			for _, job := range stats.Jobs {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(job.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", job.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(job.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(job.MaxDuration.String())
				imgui.TableNextColumn()
				imgui.Text(job.LastDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
