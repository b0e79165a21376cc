package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/tetris"
)

// GameInspector is a window showing the live game state: counters, the piece
// queue, per-kind statistics and a text dump of the board. Its buttons push
// commands through the scheduler like any other input source.
type GameInspector struct {
	scheduler *engine.Scheduler
	showBoard bool
}

func NewGameInspector(scheduler *engine.Scheduler) *GameInspector {
	return &GameInspector{scheduler: scheduler, showBoard: true}
}

// BoardLines renders the board with the active piece overlaid, one string per
// row: '.' for empty squares, the kind letter otherwise.
func BoardLines(snap *tetris.Snapshot) []string {
	lines := make([]string, tetris.Height)
	var sb strings.Builder
	for y := range tetris.Height {
		sb.Reset()
		for x := range tetris.Width {
			cell := snap.CellAt(x, y)
			if cell.Empty() {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(cell.Kind().String())
		}
		lines[y] = sb.String()
	}
	return lines
}

// QueueString joins kinds into a compact string such as "TSZ".
func QueueString(kinds []tetris.Kind) string {
	var sb strings.Builder
	for _, k := range kinds {
		sb.WriteString(k.String())
	}
	return sb.String()
}

func kindColor(k tetris.Kind) imgui.Vec4 {
	c := k.Color()
	return imgui.NewVec4(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, 1)
}

func (gi *GameInspector) Render() {
	snap := gi.scheduler.Game().Snapshot()

	imgui.SetNextWindowPosV(imgui.NewVec2(380, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 560), imgui.CondOnce)
	if !imgui.BeginV("Game Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("State: %s", snap.State))
	imgui.Text(fmt.Sprintf("Score: %d  Level: %d  Lines: %d", snap.Score, snap.Level, snap.Lines))
	imgui.Text(fmt.Sprintf("Fall Interval: %s (accelerated: %t)", snap.FallInterval, snap.Accelerated))

	imgui.Separator()
	if snap.HasActive() {
		imgui.TextColored(kindColor(snap.Active.Kind), fmt.Sprintf("Active: %s at (%d, %d) rot %d",
			snap.Active.Kind, snap.Active.X, snap.Active.Y, snap.Active.Rotation))
	} else {
		imgui.Text("Active: none")
	}
	imgui.Text(fmt.Sprintf("Hold: %s (available: %t)", snap.Hold, snap.CanHold))
	imgui.Text(fmt.Sprintf("Next: %s", QueueString(snap.Next)))

	if imgui.Button("Restart") {
		gi.scheduler.Commands().Push(tetris.Restart)
	}
	imgui.SameLine()
	if imgui.Button("Hold") {
		gi.scheduler.Commands().Push(tetris.Hold)
	}
	imgui.SameLine()
	if imgui.Button("Hard Drop") {
		gi.scheduler.Commands().Push(tetris.HardDrop)
	}

	if imgui.TreeNodeStr("Statistics") {
		imgui.Text(fmt.Sprintf("Locks: %d  Holds: %d", snap.Stats.Locks, snap.Stats.Holds))

		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SpawnTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Kind")
			imgui.TableSetupColumn("Spawned")
			imgui.TableHeadersRow()
			for _, k := range tetris.Kinds {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.TextColored(kindColor(k), k.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", snap.Stats.SpawnedOf(k)))
			}
			imgui.EndTable()
		}

		if imgui.BeginTableV("ClearTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Rows")
			imgui.TableSetupColumn("Clears")
			imgui.TableHeadersRow()
			for i, n := range snap.Stats.Clears {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", i+1))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", n))
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.Checkbox("Show Board", &gi.showBoard)
	if gi.showBoard {
		for _, line := range BoardLines(&snap) {
			imgui.Text(line)
		}
	}

	imgui.End()
}
