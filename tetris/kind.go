package tetris

// Kind identifies one of the seven tetromino shapes.
type Kind uint8

const (
	NoKind Kind = iota
	I
	O
	T
	S
	Z
	J
	L
)

// KindCount is the number of playable kinds, and the size of one bag.
const KindCount = 7

// Kinds lists the playable kinds in catalog order.
var Kinds = [KindCount]Kind{I, O, T, S, Z, J, L}

var kindNames = [...]string{"-", "I", "O", "T", "S", "Z", "J", "L"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "?"
}

// Valid reports whether k is one of the seven playable kinds.
func (k Kind) Valid() bool {
	return k >= I && k <= L
}

// RGB is a display color. The core never stores colors on the board; renderers
// derive them from the kind tag with Kind.Color.
type RGB struct {
	R, G, B uint8
}

var kindColors = [...]RGB{
	NoKind: {0, 0, 0},
	I:      {0, 255, 255},
	O:      {255, 255, 0},
	T:      {128, 0, 128},
	S:      {0, 255, 0},
	Z:      {255, 0, 0},
	J:      {0, 0, 255},
	L:      {255, 165, 0},
}

// Color returns the display color for the kind. NoKind and unknown values map to black.
func (k Kind) Color() RGB {
	if int(k) < len(kindColors) {
		return kindColors[k]
	}
	return RGB{}
}
