package tetris

import "time"

// NextCount is how many upcoming kinds a snapshot exposes.
const NextCount = 7

// ActiveView describes the piece in play for renderers.
type ActiveView struct {
	Kind     Kind // NoKind when no piece is in play
	X, Y     int
	Rotation int
	Cells    [4]Point // absolute board coordinates
	Color    RGB
}

// Snapshot is a deep copy of everything a renderer needs. Mutating it has no
// effect on the game.
type Snapshot struct {
	Board        [Height][Width]Cell
	Active       ActiveView
	Next         []Kind
	Hold         Kind
	CanHold      bool
	Score        int
	Level        int
	Lines        int
	FallInterval time.Duration
	Accelerated  bool
	State        State
	GameOver     bool
	Stats        StatsView
}

// Snapshot returns the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Board:        g.board.Cells(),
		Next:         g.bag.Peek(NextCount),
		Hold:         g.hold,
		CanHold:      g.canHold,
		Score:        g.tracker.Score(),
		Level:        g.tracker.Level(),
		Lines:        g.tracker.Lines(),
		FallInterval: g.FallInterval(),
		Accelerated:  g.accelerated,
		State:        g.state,
		GameOver:     g.state == GameOver,
		Stats:        g.stats.view(),
	}

	if g.active.Kind.Valid() {
		s.Active = ActiveView{
			Kind:     g.active.Kind,
			X:        g.active.X,
			Y:        g.active.Y,
			Rotation: g.active.Rotation,
			Cells:    g.active.Cells(),
			Color:    g.active.Kind.Color(),
		}
	}
	return s
}

// HasActive reports whether a piece is in play.
func (s *Snapshot) HasActive() bool {
	return s.Active.Kind.Valid()
}

// Overlaps returns the active cells that lie off the board or on a locked
// cell. It is empty for every reachable state.
func (s *Snapshot) Overlaps() []Point {
	if !s.HasActive() {
		return nil
	}
	var bad []Point
	for _, pt := range s.Active.Cells {
		if !InBounds(pt.X, pt.Y) || !s.Board[pt.Y][pt.X].Empty() {
			bad = append(bad, pt)
		}
	}
	return bad
}

// CellAt returns what a renderer should draw at (x, y): the locked cell, or the
// active piece's kind if it covers the square.
func (s *Snapshot) CellAt(x, y int) Cell {
	if !InBounds(x, y) {
		return Empty
	}
	if s.HasActive() {
		for _, pt := range s.Active.Cells {
			if pt.X == x && pt.Y == y {
				return CellOf(s.Active.Kind)
			}
		}
	}
	return s.Board[y][x]
}
