package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/plus3/blockfall/engine"
)

// PerformanceStats is a window showing frame times and the scheduler's
// per-system timings.
type PerformanceStats struct {
	scheduler *engine.Scheduler

	historyFrames int
	frameHistory  []float32 // ms, ring buffer
	frameIndex    int
	samples       int

	systemHistory map[string][]float32
}

func NewPerformanceStats(scheduler *engine.Scheduler, historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		scheduler:     scheduler,
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		systemHistory: make(map[string][]float32),
	}
}

// Record adds one frame to the history. Render calls it; it is exported for
// hosts that sample frames without drawing the window.
func (ps *PerformanceStats) Record(dt time.Duration, stats *engine.SchedulerStats) {
	ps.frameHistory[ps.frameIndex] = float32(dt.Seconds() * 1000)

	for _, sys := range stats.Systems {
		hist, ok := ps.systemHistory[sys.Name]
		if !ok {
			hist = make([]float32, ps.historyFrames)
			ps.systemHistory[sys.Name] = hist
		}
		hist[ps.frameIndex] = float32(sys.LastDuration.Seconds() * 1000)
	}

	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
	ps.samples = min(ps.samples+1, ps.historyFrames)
}

// AverageFrameTime returns the mean of the recorded frames.
func (ps *PerformanceStats) AverageFrameTime() time.Duration {
	if ps.samples == 0 {
		return 0
	}
	var total float32
	for _, ft := range ps.frameHistory {
		total += ft
	}
	ms := total / float32(ps.samples)
	return time.Duration(ms * float32(time.Millisecond))
}

// ordered returns a ring buffer oldest-first.
func (ps *PerformanceStats) ordered(ring []float32) []float32 {
	out := make([]float32, len(ring))
	n := copy(out, ring[ps.frameIndex:])
	copy(out[n:], ring[:ps.frameIndex])
	return out
}

func (ps *PerformanceStats) Render(dt time.Duration) {
	stats := ps.scheduler.Stats()
	ps.Record(dt, stats)

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 320), imgui.CondOnce)
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avg := ps.AverageFrameTime()
	fps := 0.0
	if avg > 0 {
		fps = float64(time.Second) / float64(avg)
	}
	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", float64(avg)/float64(time.Millisecond), fps))

	imgui.Separator()
	frames := ps.ordered(ps.frameHistory)
	if implot.BeginPlotV("Frame Time", imgui.NewVec2(-1, 120), 0) {
		implot.SetupAxesV("Frame", "ms", 0, implot.AxisFlagsAutoFit)
		implot.PlotLineFloatPtrInt("frame", &frames[0], int32(len(frames)))
		implot.EndPlot()
	}

	if imgui.TreeNodeStr("Systems") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(sys.LastDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
			}

			imgui.EndTable()
		}

		if implot.BeginPlotV("System Latency", imgui.NewVec2(-1, 140), 0) {
			implot.SetupAxesV("Frame", "ms", 0, implot.AxisFlagsAutoFit)
			for _, sys := range stats.Systems {
				samples := ps.ordered(ps.systemHistory[sys.Name])
				implot.PlotLineFloatPtrInt(sys.Name, &samples[0], int32(len(samples)))
			}
			implot.EndPlot()
		}
		imgui.TreePop()
	}

	imgui.End()
}

// FrameTimer measures wall time between successive calls.
type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) DeltaTime() time.Duration {
	now := time.Now()
	delta := now.Sub(ft.lastFrameTime)
	ft.lastFrameTime = now
	return delta
}
