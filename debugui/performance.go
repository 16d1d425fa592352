package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/snake/engine"
)

// FrameHistory is a ring of recent frame times in milliseconds.
type FrameHistory struct {
	samples []float32
	index   int
	filled  int
}

func NewFrameHistory(frames int) *FrameHistory {
	return &FrameHistory{samples: make([]float32, max(frames, 1))}
}

// Push records a frame that took dt seconds.
func (h *FrameHistory) Push(dt float32) {
	h.samples[h.index] = dt * 1000.0
	h.index = (h.index + 1) % len(h.samples)
	h.filled = min(h.filled+1, len(h.samples))
}

// Average returns the mean frame time over the recorded frames.
func (h *FrameHistory) Average() float32 {
	if h.filled == 0 {
		return 0
	}
	var sum float32
	for _, ms := range h.samples[:h.filled] {
		sum += ms
	}
	return sum / float32(h.filled)
}

// PerformanceWindow shows frame times and the cost of each phase.
type PerformanceWindow struct {
	history *FrameHistory
}

func NewPerformanceWindow(historyFrames int) *PerformanceWindow {
	return &PerformanceWindow{history: NewFrameHistory(historyFrames)}
}

func (pw *PerformanceWindow) Render(stats *engine.SchedulerStats, deltaTime float32) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	pw.history.Push(deltaTime)

	imgui.Text(fmt.Sprintf("Frames: %d", stats.FrameCount))
	imgui.Text(fmt.Sprintf("Phase runs: %d", stats.TotalExecutions))

	avg := pw.history.Average()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &pw.history.samples[0], int32(len(pw.history.samples)))

	if imgui.TreeNodeStr("Phases") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("PhaseStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Phase")
			imgui.TableSetupColumn("Every")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, row := range PhaseRows(stats) {
				imgui.TableNextRow()
				for _, cell := range row {
					imgui.TableNextColumn()
					imgui.Text(cell)
				}
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

// PhaseRows formats scheduler stats as table rows of name, cadence, runs,
// average and maximum duration.
func PhaseRows(stats *engine.SchedulerStats) [][]string {
	rows := make([][]string, 0, len(stats.Systems))
	for _, s := range stats.Systems {
		every := "frame"
		if s.Period > 0 {
			every = s.Period.String()
		}
		rows = append(rows, []string{
			s.Name,
			every,
			fmt.Sprintf("%d", s.ExecutionCount),
			s.AvgDuration.String(),
			s.MaxDuration.String(),
		})
	}
	return rows
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
