package engine_test

import (
	"fmt"
	"math/rand/v2"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/tetris"
)

// ExampleScheduler wires a game to a scheduler. Commands pushed between frames
// are applied at the start of the next frame, before gravity.
func ExampleScheduler() {
	game := tetris.New(tetris.DefaultConfig(), rand.NewPCG(1, 1))
	scheduler := engine.NewScheduler(game)

	scheduler.RegisterNamed("Report", engine.SystemFunc(func(frame *engine.Frame) {
		snap := frame.Game.Snapshot()
		fmt.Printf("frame %d: row %d, locks %d\n", frame.Number, snap.Active.Y, snap.Stats.Locks)
	}))

	scheduler.Once(tetris.BaseFallInterval)
	scheduler.Commands().Push(tetris.HardDrop)
	scheduler.Once(0)

	// Output:
	// frame 1: row 1, locks 0
	// frame 2: row 0, locks 1
}
