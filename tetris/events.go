package tetris

// EventType classifies an Event.
type EventType uint8

const (
	// EventLock fires every time a piece is committed to the board.
	EventLock EventType = iota + 1
	// EventClear fires after a lock that removed at least one row.
	EventClear
	EventLevelUp
	EventHold
	EventGameOver
	EventRestart
)

var eventNames = [...]string{"None", "Lock", "Clear", "LevelUp", "Hold", "GameOver", "Restart"}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "Unknown"
}

// Event reports a state change to subscribers. Only the fields relevant to the
// type are set.
type Event struct {
	Type  EventType
	Kind  Kind // locked or held piece
	Lines int  // rows removed by a clear
	Delta int  // score added by a clear
	Score int
	Level int
}

// Listener receives events synchronously from inside the Game call that
// produced them. It must not call back into the Game.
type Listener func(Event)

// Subscribe registers a listener. Listeners are called in registration order.
func (g *Game) Subscribe(l Listener) {
	g.listeners = append(g.listeners, l)
}

func (g *Game) emit(e Event) {
	if len(g.listeners) == 0 {
		return
	}
	e.Score = g.tracker.Score()
	e.Level = g.tracker.Level()
	for _, l := range g.listeners {
		l(e)
	}
}
