package tetris

// Point is a cell coordinate. Within a shape table it is an offset from the
// piece anchor; elsewhere it is an absolute board coordinate.
type Point struct {
	X, Y int
}

// rotations holds every kind's rotation states in order. I, S and Z only carry
// two states and O carries one; rotating past the last state wraps to index 0.
var rotations = [...][][4]Point{
	I: {
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
	},
	O: {
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	T: {
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	S: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	Z: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
	},
	J: {
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	L: {
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
}

// RotationCount returns the number of rotation states in the kind's table.
// It panics if kind is not a playable kind.
func RotationCount(kind Kind) int {
	mustValid(kind)
	return len(rotations[kind])
}

// Shape returns the occupied offsets of the kind at the given rotation index.
// The index must already be wrapped into [0, RotationCount(kind)); anything
// else is a caller bug and panics.
func Shape(kind Kind, rotation int) [4]Point {
	mustValid(kind)
	states := rotations[kind]
	if rotation < 0 || rotation >= len(states) {
		panic("tetris: rotation index out of range for " + kind.String())
	}
	return states[rotation]
}

func mustValid(kind Kind) {
	if !kind.Valid() {
		panic("tetris: invalid piece kind " + kind.String())
	}
}
