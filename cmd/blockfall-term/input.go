package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
)

// action is what a key press means to the terminal host.
type action uint8

const (
	actionNone action = iota
	actionCommand
	actionSoftDrop
	actionQuit
)

// mapKey translates a key event. Soft drop is reported separately because
// terminals send repeats instead of press/release pairs.
func mapKey(ev *tcell.EventKey) (action, tetris.Command) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit, 0
	case tcell.KeyLeft:
		return actionCommand, tetris.MoveLeft
	case tcell.KeyRight:
		return actionCommand, tetris.MoveRight
	case tcell.KeyUp:
		return actionCommand, tetris.RotateCW
	case tcell.KeyDown:
		return actionSoftDrop, 0
	case tcell.KeyRune:
	default:
		return actionNone, 0
	}

	switch ev.Rune() {
	case 'h', 'a':
		return actionCommand, tetris.MoveLeft
	case 'l', 'd':
		return actionCommand, tetris.MoveRight
	case 'k', 'w', 'x':
		return actionCommand, tetris.RotateCW
	case 'j', 's':
		return actionSoftDrop, 0
	case ' ':
		return actionCommand, tetris.HardDrop
	case 'c':
		return actionCommand, tetris.Hold
	case 'r':
		return actionCommand, tetris.Restart
	case 'q':
		return actionQuit, 0
	}
	return actionNone, 0
}

// softDropKey turns a stream of key repeats into press and release edges. The
// key counts as released once no repeat has arrived for timeout.
type softDropKey struct {
	timeout time.Duration
	held    bool
	last    time.Time
}

// repeat records a key event and reports whether it starts a new press.
func (k *softDropKey) repeat(now time.Time) bool {
	k.last = now
	if k.held {
		return false
	}
	k.held = true
	return true
}

// expired reports, once, that the key has gone quiet.
func (k *softDropKey) expired(now time.Time) bool {
	if !k.held || now.Sub(k.last) < k.timeout {
		return false
	}
	k.held = false
	return true
}
