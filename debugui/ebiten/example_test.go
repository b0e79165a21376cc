package ebiten_test

import (
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/tetris"
)

// Host implements ebiten.Game and draws the debug panels over the game.
type Host struct {
	scheduler    *engine.Scheduler
	imguiBackend *debugui_ebiten.ImguiBackend
}

func (h *Host) Update() error {
	// Begin ImGui frame before executing systems
	h.imguiBackend.BeginFrame()

	h.scheduler.Once(time.Second / 60)

	// End ImGui frame after systems complete
	h.imguiBackend.EndFrame()
	return nil
}

func (h *Host) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	// ...

	// Draw ImGui overlay on top
	h.imguiBackend.Draw(screen)
}

func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	h.imguiBackend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	backend := debugui_ebiten.NewImguiBackend("Blockfall Debug", 1280, 720)

	game := tetris.New(tetris.DefaultConfig(), rand.NewPCG(1, 1))
	scheduler := engine.NewScheduler(game)

	inspector := debugui.NewGameInspector(scheduler)
	perf := debugui.NewPerformanceStats(scheduler, 120)

	panels := &debugui.ImguiSystem{}
	panels.Add(inspector.Render)
	panels.Add(func() { perf.Render(time.Second / 60) })
	scheduler.Register(panels)

	host := &Host{scheduler: scheduler, imguiBackend: backend}
	if err := ebiten.RunGame(host); err != nil {
		panic(err)
	}
}
