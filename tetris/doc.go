// Package tetris implements the simulation core of a falling-block puzzle game.
//
// A Game owns the board, the active piece, the hold slot, the upcoming queue and
// the score/level tracker. Hosts drive it with discrete commands (see Command)
// and elapsed-time deltas (Game.Tick), and read its state through Game.Snapshot,
// which returns a deep copy that can be handed to a renderer.
//
// The package does no I/O, keeps no globals and never reads a wall clock. All
// randomness comes from the rand.Source passed to New, so a seeded source
// replays the exact same piece sequence.
package tetris
