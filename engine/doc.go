// Package engine drives a tetris.Game from a host loop. Input goroutines push
// commands into a shared buffer; the scheduler runs its systems in
// registration order every frame, and the built-in ordering guarantees that
// queued commands are applied before gravity advances.
package engine
