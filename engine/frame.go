package engine

import (
	"time"

	"github.com/plus3/blockfall/tetris"
)

// Frame is what every system sees during one scheduler step.
type Frame struct {
	// Number counts frames from 1.
	Number    uint64
	DeltaTime time.Duration
	Game      *tetris.Game
	Commands  *Commands
}
