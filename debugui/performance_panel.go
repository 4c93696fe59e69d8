package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/puckstick/ecs"
)

// PerformancePanel plots frame times and lists per-system timings for each
// named scheduler.
type PerformancePanel struct {
	Storage    *ecs.Storage
	Schedulers []NamedScheduler

	history []float32
	next    int
	last    time.Time
}

type NamedScheduler struct {
	Name      string
	Scheduler *ecs.Scheduler
}

func NewPerformancePanel(storage *ecs.Storage, historyFrames int, schedulers ...NamedScheduler) *PerformancePanel {
	return &PerformancePanel{
		Storage:    storage,
		Schedulers: schedulers,
		history:    make([]float32, historyFrames),
	}
}

// Sample records the time since the previous call, in milliseconds.
func (p *PerformancePanel) Sample(now time.Time) {
	if !p.last.IsZero() {
		p.history[p.next] = float32(now.Sub(p.last).Seconds() * 1000)
		p.next = (p.next + 1) % len(p.history)
	}
	p.last = now
}

// AverageFrameTime returns the mean of the recorded samples in milliseconds.
func (p *PerformancePanel) AverageFrameTime() float32 {
	var sum float32
	var n int
	for _, ms := range p.history {
		if ms > 0 {
			sum += ms
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float32(n)
}

func (p *PerformancePanel) Render() {
	p.Sample(time.Now())

	if !imgui.BeginV("Performance", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := p.Storage.CollectStats()
	imgui.Text(fmt.Sprintf("Entities: %d  Archetypes: %d  Singletons: %d",
		stats.TotalEntityCount, stats.ArchetypeCount, stats.SingletonCount))

	if avg := p.AverageFrameTime(); avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}
	imgui.PlotLinesFloatPtr("##frametime", &p.history[0], int32(len(p.history)))

	for _, named := range p.Schedulers {
		if imgui.TreeNodeStr(named.Name) {
			renderSchedulerTable(named.Name, named.Scheduler.Stats())
			imgui.TreePop()
		}
	}

	if imgui.TreeNodeStr("Archetypes") {
		for _, arch := range stats.ArchetypeBreakdown {
			imgui.BulletText(fmt.Sprintf("0x%08X %v: %d", arch.ID, arch.ComponentTypes, arch.EntityCount))
		}
		imgui.TreePop()
	}

	imgui.End()
}

func renderSchedulerTable(id string, stats *ecs.SchedulerStats) {
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if !imgui.BeginTableV(id+"##systems", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}
	imgui.TableSetupColumn("System")
	imgui.TableSetupColumn("Runs")
	imgui.TableSetupColumn("Avg")
	imgui.TableSetupColumn("Max")
	imgui.TableHeadersRow()

	for _, s := range stats.Systems {
		imgui.TableNextRow()
		imgui.TableNextColumn()
		imgui.Text(s.Name)
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%d", s.ExecutionCount))
		imgui.TableNextColumn()
		imgui.Text(s.AvgDuration.String())
		imgui.TableNextColumn()
		imgui.Text(s.MaxDuration.String())
	}
	imgui.EndTable()
}
