package tetris

// Command is a discrete, already-debounced input forwarded by a host.
type Command uint8

const (
	MoveLeft Command = iota + 1
	MoveRight
	RotateCW
	SoftDropPress
	SoftDropRelease
	HardDrop
	Hold
	Restart
)

var commandNames = [...]string{
	"None",
	"MoveLeft",
	"MoveRight",
	"RotateCW",
	"SoftDropPress",
	"SoftDropRelease",
	"HardDrop",
	"Hold",
	"Restart",
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "Unknown"
}

// Commands lists every command, in declaration order.
var Commands = []Command{
	MoveLeft, MoveRight, RotateCW, SoftDropPress, SoftDropRelease, HardDrop, Hold, Restart,
}

// Apply dispatches a command to the matching Game method. Unknown commands are
// ignored.
func (g *Game) Apply(cmd Command) {
	switch cmd {
	case MoveLeft:
		g.MoveLeft()
	case MoveRight:
		g.MoveRight()
	case RotateCW:
		g.Rotate()
	case SoftDropPress:
		g.SoftDropPress()
	case SoftDropRelease:
		g.SoftDropRelease()
	case HardDrop:
		g.HardDrop()
	case Hold:
		g.Hold()
	case Restart:
		g.Restart()
	}
}
