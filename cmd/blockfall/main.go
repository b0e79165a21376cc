package main

import (
	"errors"
	"flag"
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/tetris"
)

const (
	baseCellSize = 24
	flashTicks   = 6
)

// Host implements ebiten.Game around a scheduler. Ebiten calls Update at a
// fixed TPS, so each Update is exactly one scheduler frame.
type Host struct {
	scheduler *engine.Scheduler
	kb        keyboard
	layout    layout

	imguiBackend *debugui_ebiten.ImguiBackend
	panels       *debugui.ImguiSystem
	showPanels   bool

	flash int
	dt    time.Duration
}

func NewHost(game *tetris.Game, cellSize int) *Host {
	h := &Host{
		scheduler: engine.NewScheduler(game),
		kb:        ebitenKeyboard{},
		layout:    newLayout(cellSize),
		dt:        time.Second / time.Duration(ebiten.DefaultTPS),
	}
	game.Subscribe(h.onEvent)
	return h
}

// EnableDebugUI attaches the ImGui overlay. F1 toggles it at runtime.
func (h *Host) EnableDebugUI(backend *debugui_ebiten.ImguiBackend) {
	h.imguiBackend = backend
	h.showPanels = true

	inspector := debugui.NewGameInspector(h.scheduler)
	perf := debugui.NewPerformanceStats(h.scheduler, 120)

	h.panels = &debugui.ImguiSystem{}
	h.panels.Add(func() {
		if h.showPanels {
			inspector.Render()
		}
	})
	h.panels.Add(func() {
		if h.showPanels {
			perf.Render(h.dt)
		}
	})
	h.scheduler.Register(h.panels)
}

func (h *Host) onEvent(e tetris.Event) {
	switch e.Type {
	case tetris.EventClear:
		h.flash = flashTicks
		log.Printf("cleared %d lines (+%d) score=%d", e.Lines, e.Delta, e.Score)
	case tetris.EventLevelUp:
		log.Printf("level up: %d", e.Level)
	case tetris.EventGameOver:
		log.Printf("game over: score=%d level=%d", e.Score, e.Level)
	}
}

func (h *Host) keyboardCaptured() bool {
	return h.panels != nil && h.showPanels && h.panels.InputState.WantCaptureKeyboard
}

func (h *Host) Update() error {
	if h.kb.JustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if h.imguiBackend != nil && h.kb.JustPressed(ebiten.KeyF1) {
		h.showPanels = !h.showPanels
	}

	if h.imguiBackend != nil {
		h.imguiBackend.BeginFrame()
	}

	if !h.keyboardCaptured() {
		pollInput(h.kb, h.scheduler.Commands())
	}
	h.scheduler.Once(h.dt)
	if h.flash > 0 {
		h.flash--
	}

	if h.imguiBackend != nil {
		h.imguiBackend.EndFrame()
	}
	return nil
}

func (h *Host) Draw(screen *ebiten.Image) {
	snap := h.scheduler.Game().Snapshot()
	h.layout.draw(screen, &snap, h.flash > 0)

	if h.imguiBackend != nil {
		h.imguiBackend.Draw(screen)
	}
}

func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if h.imguiBackend != nil {
		h.imguiBackend.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return h.layout.width(), h.layout.height()
}

func main() {
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for the piece sequence.")
	scale := flag.Float64("scale", 1.0, "Window scale factor.")
	debug := flag.Bool("debug", false, "Show the ImGui debug overlay (toggle with F1).")
	fastFall := flag.Duration("fast-fall", tetris.DefaultFastFall, "Gravity interval once soft drop accelerates.")
	softDelay := flag.Duration("soft-drop-delay", tetris.DefaultSoftDropDelay, "How long soft drop is held before it accelerates.")
	flag.Parse()

	cfg := tetris.Config{FastFall: *fastFall, SoftDropDelay: *softDelay}
	game := tetris.New(cfg, rand.NewPCG(*seed, *seed))
	host := NewHost(game, int(baseCellSize * *scale))
	log.Printf("starting blockfall seed=%d", *seed)

	ebiten.SetWindowTitle("Blockfall")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if *debug {
		host.EnableDebugUI(debugui_ebiten.NewImguiBackend("Blockfall", 1280, 720))
	} else {
		ebiten.SetWindowSize(host.layout.width(), host.layout.height())
	}

	if err := ebiten.RunGame(host); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("blockfall: %v", err)
	}
	log.Printf("exit: score=%d level=%d lines=%d", game.Score(), game.Level(), game.Lines())
}
