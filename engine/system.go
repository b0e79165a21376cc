package engine

// System is one step of the frame. Systems run in the order they were
// registered and may keep state between frames.
type System interface {
	Execute(frame *Frame)
}

// SystemFunc adapts a plain function to System.
type SystemFunc func(frame *Frame)

func (f SystemFunc) Execute(frame *Frame) { f(frame) }

// CommandSystem applies the buffered commands to the game.
type CommandSystem struct{}

func (CommandSystem) Execute(frame *Frame) {
	frame.Commands.Flush(frame.Game)
}

// GravitySystem advances the game clock by the frame's delta time.
type GravitySystem struct{}

func (GravitySystem) Execute(frame *Frame) {
	frame.Game.Tick(frame.DeltaTime)
}
