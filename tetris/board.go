package tetris

const (
	Width  = 10
	Height = 20
)

// Cell is a single board square: Empty, or the kind of the piece that locked there.
type Cell uint8

// Empty is the zero Cell.
const Empty Cell = 0

// CellOf returns the cell value that marks a square occupied by kind.
func CellOf(kind Kind) Cell {
	return Cell(kind)
}

func (c Cell) Empty() bool { return c == Empty }

func (c Cell) Kind() Kind { return Kind(c) }

// Board is the fixed-size playfield, row-major with row 0 at the top.
// The zero value is an empty board.
type Board struct {
	cells [Height][Width]Cell
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// InBounds reports whether (x, y) lies on the board.
func InBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// IsOccupied reports whether the square at (x, y) holds a locked cell.
// Out-of-bounds squares report false; Collides is what treats them as blocked.
func (b *Board) IsOccupied(x, y int) bool {
	if !InBounds(x, y) {
		return false
	}
	return !b.cells[y][x].Empty()
}

// Cell returns the square at (x, y), or Empty when out of bounds.
func (b *Board) Cell(x, y int) Cell {
	if !InBounds(x, y) {
		return Empty
	}
	return b.cells[y][x]
}

// Set writes a single square. Out-of-bounds writes are ignored.
func (b *Board) Set(x, y int, c Cell) {
	if !InBounds(x, y) {
		return
	}
	b.cells[y][x] = c
}

// FillRow occupies every square of row y with kind except the listed columns.
func (b *Board) FillRow(y int, kind Kind, holes ...int) {
	if y < 0 || y >= Height {
		return
	}
	for x := range Width {
		b.cells[y][x] = CellOf(kind)
	}
	for _, x := range holes {
		b.Set(x, y, Empty)
	}
}

// Stamp writes the piece's cells into the board. The caller must have checked
// that the placement does not collide; stamping an out-of-bounds placement
// panics.
func (b *Board) Stamp(p Piece) {
	c := CellOf(p.Kind)
	for _, pt := range p.Cells() {
		b.cells[pt.Y][pt.X] = c
	}
}

// CompactFullRows removes every row with no empty square, shifts the remaining
// rows down keeping their order, inserts that many empty rows at the top and
// returns the number of rows removed.
func (b *Board) CompactFullRows() int {
	write := Height - 1
	for read := Height - 1; read >= 0; read-- {
		if rowFull(&b.cells[read]) {
			continue
		}
		if write != read {
			b.cells[write] = b.cells[read]
		}
		write--
	}

	cleared := write + 1
	for y := 0; y < cleared; y++ {
		b.cells[y] = [Width]Cell{}
	}
	return cleared
}

func rowFull(row *[Width]Cell) bool {
	for _, c := range row {
		if c.Empty() {
			return false
		}
	}
	return true
}

// Cells returns a copy of the grid.
func (b *Board) Cells() [Height][Width]Cell {
	return b.cells
}

// Count returns the number of occupied squares.
func (b *Board) Count() int {
	n := 0
	for y := range Height {
		for x := range Width {
			if !b.cells[y][x].Empty() {
				n++
			}
		}
	}
	return n
}

// Reset empties the board.
func (b *Board) Reset() {
	b.cells = [Height][Width]Cell{}
}
