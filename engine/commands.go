package engine

import (
	"sync"

	"github.com/plus3/blockfall/tetris"
)

// Commands buffers player commands until the next frame applies them. Push and
// Defer may be called from any goroutine; Flush is called by the loop that
// owns the game.
type Commands struct {
	mu     sync.Mutex
	queue  []tetris.Command
	defers []func()

	// swapped in on Flush so pushes during a flush land in the next frame
	spare []tetris.Command
}

// NewCommands returns an empty buffer.
func NewCommands() *Commands {
	return &Commands{}
}

// Push queues a command for the next flush.
func (c *Commands) Push(cmd tetris.Command) {
	c.mu.Lock()
	c.queue = append(c.queue, cmd)
	c.mu.Unlock()
}

// Defer queues a function to run after the queued commands of the next flush.
func (c *Commands) Defer(fn func()) {
	c.mu.Lock()
	c.defers = append(c.defers, fn)
	c.mu.Unlock()
}

// Len returns the number of commands waiting.
func (c *Commands) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.queue)
}

// Flush applies every queued command to game in push order, then runs the
// deferred functions, and resets the buffer. It returns the number of commands
// applied.
func (c *Commands) Flush(game *tetris.Game) int {
	c.mu.Lock()
	queue := c.queue
	c.queue = c.spare[:0]
	defers := c.defers
	c.defers = nil
	c.mu.Unlock()

	for _, cmd := range queue {
		game.Apply(cmd)
	}
	for _, fn := range defers {
		fn()
	}

	c.mu.Lock()
	c.spare = queue[:0]
	c.mu.Unlock()
	return len(queue)
}
