package tetris

// Collides reports whether the piece, shifted by (dx, dy), would leave the board
// or overlap a locked cell. Every mutation of the active piece is checked
// through here before it is committed.
func Collides(b *Board, p Piece, dx, dy int) bool {
	for _, off := range p.Shape() {
		x := p.X + dx + off.X
		y := p.Y + dy + off.Y

		if !InBounds(x, y) {
			return true
		}

		if b.IsOccupied(x, y) {
			return true
		}
	}

	return false
}

// dropDistance returns how many rows the piece can fall before it would collide.
func dropDistance(b *Board, p Piece) int {
	dy := 0
	for !Collides(b, p, 0, dy+1) {
		dy++
	}
	return dy
}
