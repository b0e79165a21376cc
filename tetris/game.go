package tetris

import (
	"math/rand/v2"
	"time"
)

// State is the game's top-level mode.
type State uint8

const (
	Playing State = iota
	GameOver
)

func (s State) String() string {
	switch s {
	case Playing:
		return "Playing"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Game is the state machine that owns one game: board, active piece, hold
// slot, upcoming queue, score and level. It is not safe for concurrent use;
// hosts call it from a single loop.
type Game struct {
	cfg     Config
	board   *Board
	bag     *Bag
	tracker *Tracker
	stats   *Stats

	active  Piece
	hold    Kind
	canHold bool
	state   State

	fallTimer time.Duration

	// soft drop hold tracking, fed by the Tick dt stream
	softDrop    bool
	softHeld    time.Duration
	accelerated bool

	listeners []Listener
}

// New starts a game. All piece randomness is drawn from src, so two games
// built from equally seeded sources play out identically under the same
// inputs.
func New(cfg Config, src rand.Source) *Game {
	g := &Game{
		cfg:     cfg.withDefaults(),
		board:   NewBoard(),
		bag:     NewBag(src),
		tracker: NewTracker(),
		stats:   NewStats(),
	}
	g.reset()
	return g
}

func (g *Game) reset() {
	g.board.Reset()
	g.bag.Reset()
	g.tracker.Reset()
	g.stats.Reset()

	g.hold = NoKind
	g.canHold = true
	g.state = Playing
	g.fallTimer = 0
	g.softDrop = false
	g.softHeld = 0
	g.accelerated = false

	g.spawn(g.bag.Draw())
}

// spawn makes kind the active piece at the spawn anchor. If that placement
// already collides the game is over and no piece is left in play.
func (g *Game) spawn(kind Kind) bool {
	g.active = Spawn(kind)
	g.stats.recordSpawn(kind)

	if Collides(g.board, g.active, 0, 0) {
		g.active = Piece{}
		g.state = GameOver
		g.softDrop = false
		g.accelerated = false
		g.emit(Event{Type: EventGameOver, Kind: kind})
		return false
	}
	return true
}

func (g *Game) playing() bool {
	return g.state == Playing
}

// Tick advances time by dt. Once the accumulated time reaches the current fall
// interval the timer restarts and the active piece moves down one row, locking
// if it cannot.
func (g *Game) Tick(dt time.Duration) {
	if !g.playing() {
		return
	}

	if g.softDrop {
		g.softHeld += dt
		if g.softHeld >= g.cfg.SoftDropDelay {
			g.accelerated = true
		}
	}

	g.fallTimer += dt
	if g.fallTimer < g.FallInterval() {
		return
	}
	g.fallTimer = 0

	if !Collides(g.board, g.active, 0, 1) {
		g.active.Y++
		return
	}
	g.lock()
}

// lock commits the active piece, clears rows, scores, and brings in the next
// piece.
func (g *Game) lock() {
	locked := g.active

	g.board.Stamp(locked)
	lines := g.board.CompactFullRows()
	g.canHold = true

	delta, leveled := g.tracker.Award(lines)
	g.stats.recordLock(lines)

	g.emit(Event{Type: EventLock, Kind: locked.Kind})
	if lines > 0 {
		g.emit(Event{Type: EventClear, Kind: locked.Kind, Lines: lines, Delta: delta})
	}
	if leveled {
		g.emit(Event{Type: EventLevelUp})
	}

	g.spawn(g.bag.Draw())
}

func (g *Game) shift(dx int) {
	if !g.playing() {
		return
	}
	if !Collides(g.board, g.active, dx, 0) {
		g.active.X += dx
	}
}

// MoveLeft shifts the active piece one column left unless blocked.
func (g *Game) MoveLeft() { g.shift(-1) }

// MoveRight shifts the active piece one column right unless blocked.
func (g *Game) MoveRight() { g.shift(1) }

// Rotate advances the active piece to its next rotation state. A rotation that
// would collide is reverted; there is no kick search.
func (g *Game) Rotate() {
	if !g.playing() {
		return
	}
	rotated := g.active.Rotated()
	if !Collides(g.board, rotated, 0, 0) {
		g.active = rotated
	}
}

// SoftDropStep moves the active piece down one row unless blocked. It never locks.
func (g *Game) SoftDropStep() {
	if !g.playing() {
		return
	}
	if !Collides(g.board, g.active, 0, 1) {
		g.active.Y++
	}
}

// SoftDropPress steps the piece down once and starts measuring how long the
// soft drop is held. After Config.SoftDropDelay of ticks the fall interval
// switches to Config.FastFall.
func (g *Game) SoftDropPress() {
	if !g.playing() {
		return
	}
	g.SoftDropStep()
	g.softDrop = true
	g.softHeld = 0
}

// SoftDropRelease ends a soft drop and restores the normal fall interval
// immediately.
func (g *Game) SoftDropRelease() {
	g.softDrop = false
	g.softHeld = 0
	g.accelerated = false
}

// HardDrop drops the active piece to the lowest legal row and locks it.
func (g *Game) HardDrop() {
	if !g.playing() {
		return
	}
	g.active.Y += dropDistance(g.board, g.active)
	g.lock()
}

// Hold sets the active piece's kind aside. With an empty slot the next piece
// from the queue comes in; otherwise the held kind is swapped in. Either way the
// incoming piece starts at the spawn anchor with rotation 0, and Hold is
// disabled until the next lock.
func (g *Game) Hold() {
	if !g.playing() || !g.canHold {
		return
	}

	current := g.active.Kind
	next := g.hold
	if next == NoKind {
		next = g.bag.Draw()
	}
	g.hold = current
	g.canHold = false
	g.stats.recordHold()

	g.emit(Event{Type: EventHold, Kind: current})
	g.spawn(next)
}

// Restart throws away the current game and starts a fresh one. It is accepted
// in every state.
func (g *Game) Restart() {
	g.reset()
	g.emit(Event{Type: EventRestart})
}

func (g *Game) State() State { return g.state }

func (g *Game) IsOver() bool { return g.state == GameOver }

func (g *Game) Score() int { return g.tracker.Score() }

func (g *Game) Level() int { return g.tracker.Level() }

func (g *Game) Lines() int { return g.tracker.Lines() }

// Active returns the piece in play. Its Kind is NoKind once the game is over.
func (g *Game) Active() Piece { return g.active }

// Held returns the kind in the hold slot, or NoKind.
func (g *Game) Held() Kind { return g.hold }

func (g *Game) CanHold() bool { return g.canHold }

// Accelerated reports whether the held soft drop has switched gravity to the
// fast interval.
func (g *Game) Accelerated() bool { return g.accelerated }

// FallInterval returns the gravity interval in effect.
func (g *Game) FallInterval() time.Duration {
	if g.accelerated {
		return g.cfg.FastFall
	}
	return g.tracker.FallInterval()
}

// Stats returns the live statistics for the current game.
func (g *Game) Stats() *Stats { return g.stats }
