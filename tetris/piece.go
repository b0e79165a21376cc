package tetris

// Spawn anchor for every new active piece.
const (
	SpawnX = Width/2 - 2
	SpawnY = 0
)

// Piece is a tetromino placed on the board: its kind, the anchor its shape
// offsets are relative to, and an index into the kind's rotation table.
type Piece struct {
	Kind     Kind
	X, Y     int
	Rotation int
}

// Spawn returns a piece of the given kind at the spawn anchor with rotation 0.
func Spawn(kind Kind) Piece {
	mustValid(kind)
	return Piece{Kind: kind, X: SpawnX, Y: SpawnY}
}

// Shape returns the offsets of the piece's current rotation state.
func (p Piece) Shape() [4]Point {
	return Shape(p.Kind, p.Rotation)
}

// Cells returns the absolute board coordinates the piece occupies.
func (p Piece) Cells() [4]Point {
	cells := p.Shape()
	for i := range cells {
		cells[i].X += p.X
		cells[i].Y += p.Y
	}
	return cells
}

// Rotated returns the piece advanced to its next rotation state, wrapping at
// the end of the kind's table. The anchor is unchanged.
func (p Piece) Rotated() Piece {
	p.Rotation = (p.Rotation + 1) % RotationCount(p.Kind)
	return p
}

// Translated returns the piece with its anchor moved by (dx, dy).
func (p Piece) Translated(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}
