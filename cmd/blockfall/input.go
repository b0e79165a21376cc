package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/tetris"
)

const (
	// auto-repeat for horizontal moves, in ticks
	repeatDelay = 10
	repeatEvery = 3
)

// keyboard is the slice of inpututil the host needs.
type keyboard interface {
	JustPressed(k ebiten.Key) bool
	JustReleased(k ebiten.Key) bool
	PressDuration(k ebiten.Key) int
}

type ebitenKeyboard struct{}

func (ebitenKeyboard) JustPressed(k ebiten.Key) bool  { return inpututil.IsKeyJustPressed(k) }
func (ebitenKeyboard) JustReleased(k ebiten.Key) bool { return inpututil.IsKeyJustReleased(k) }
func (ebitenKeyboard) PressDuration(k ebiten.Key) int { return inpututil.KeyPressDuration(k) }

type binding struct {
	keys   []ebiten.Key
	cmd    tetris.Command
	repeat bool
}

var bindings = []binding{
	{keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, cmd: tetris.MoveLeft, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, cmd: tetris.MoveRight, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyX, ebiten.KeyW}, cmd: tetris.RotateCW},
	{keys: []ebiten.Key{ebiten.KeySpace}, cmd: tetris.HardDrop},
	{keys: []ebiten.Key{ebiten.KeyC, ebiten.KeyShiftLeft}, cmd: tetris.Hold},
	{keys: []ebiten.Key{ebiten.KeyR}, cmd: tetris.Restart},
}

var softDropKeys = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}

func repeating(kb keyboard, k ebiten.Key) bool {
	d := kb.PressDuration(k)
	return d > repeatDelay && (d-repeatDelay)%repeatEvery == 0
}

// pollInput turns this tick's key edges into commands.
func pollInput(kb keyboard, cmds *engine.Commands) {
	for _, b := range bindings {
		for _, k := range b.keys {
			if kb.JustPressed(k) || (b.repeat && repeating(kb, k)) {
				cmds.Push(b.cmd)
				break
			}
		}
	}

	for _, k := range softDropKeys {
		if kb.JustPressed(k) {
			cmds.Push(tetris.SoftDropPress)
		}
		if kb.JustReleased(k) {
			cmds.Push(tetris.SoftDropRelease)
		}
	}
}
