package tetris

import "time"

const (
	// BaseFallInterval is the gravity interval at level 1.
	BaseFallInterval = 500 * time.Millisecond
	// MinFallInterval is the floor the level curve bottoms out at.
	MinFallInterval = 100 * time.Millisecond
	// fallStep is how much each level shortens the interval.
	fallStep = 50 * time.Millisecond

	levelThreshold = 1000
)

var linePoints = [...]int{0, 100, 300, 500, 800}

// Points returns the score awarded for clearing lines rows in one lock at level.
func Points(lines, level int) int {
	if lines < 0 || lines >= len(linePoints) {
		return 0
	}
	return linePoints[lines] * level
}

// LevelInterval returns the gravity interval for a level.
func LevelInterval(level int) time.Duration {
	return max(MinFallInterval, BaseFallInterval-time.Duration(level-1)*fallStep)
}

// Tracker converts cleared-row counts into score and level, and level into the
// gravity interval.
type Tracker struct {
	score    int
	level    int
	lines    int
	interval time.Duration
}

// NewTracker returns a tracker at level 1 with no score.
func NewTracker() *Tracker {
	t := &Tracker{}
	t.Reset()
	return t
}

// Reset returns the tracker to level 1 with no score.
func (t *Tracker) Reset() {
	t.score = 0
	t.level = 1
	t.lines = 0
	t.interval = BaseFallInterval
}

// Award applies one lock event that cleared lines rows. It returns the score
// added and whether the level went up.
//
// The level rises at most once per call, even when a single award crosses
// more than one threshold.
func (t *Tracker) Award(lines int) (delta int, leveled bool) {
	if lines <= 0 {
		return 0, false
	}

	delta = Points(lines, t.level)
	t.score += delta
	t.lines += lines

	if t.score/(levelThreshold*t.level) > t.level {
		t.level++
		t.interval = LevelInterval(t.level)
		leveled = true
	}
	return delta, leveled
}

func (t *Tracker) Score() int { return t.score }

func (t *Tracker) Level() int { return t.level }

// Lines returns the total number of rows cleared.
func (t *Tracker) Lines() int { return t.lines }

// FallInterval returns the level's gravity interval.
func (t *Tracker) FallInterval() time.Duration { return t.interval }
