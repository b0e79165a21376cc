package tetris

// Hooks for black-box tests that need to stage a specific position.

func (g *Game) BoardForTest() *Board { return g.board }

func (g *Game) SetActiveForTest(p Piece) { g.active = p }
