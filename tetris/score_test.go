package tetris

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoints(t *testing.T) {
	for _, level := range []int{1, 2, 7} {
		assert.Equal(t, 0, Points(0, level))
		assert.Equal(t, 100*level, Points(1, level))
		assert.Equal(t, 300*level, Points(2, level))
		assert.Equal(t, 500*level, Points(3, level))
		assert.Equal(t, 800*level, Points(4, level))
	}
	assert.Equal(t, 0, Points(5, 1))
	assert.Equal(t, 0, Points(-1, 1))
}

func TestLevelInterval(t *testing.T) {
	assert.Equal(t, 500*time.Millisecond, LevelInterval(1))
	assert.Equal(t, 450*time.Millisecond, LevelInterval(2))
	assert.Equal(t, 100*time.Millisecond, LevelInterval(9))
	assert.Equal(t, 100*time.Millisecond, LevelInterval(30))
}

func TestTrackerAward(t *testing.T) {
	tr := NewTracker()
	assert.Equal(t, 1, tr.Level())
	assert.Equal(t, BaseFallInterval, tr.FallInterval())

	delta, leveled := tr.Award(0)
	assert.Zero(t, delta)
	assert.False(t, leveled)

	tr.Award(4)
	tr.Award(4)
	tr.Award(2)
	assert.Equal(t, 1900, tr.Score())
	assert.Equal(t, 1, tr.Level())

	// 2000 / (1000*1) = 2 > 1
	delta, leveled = tr.Award(1)
	assert.Equal(t, 100, delta)
	assert.True(t, leveled)
	assert.Equal(t, 2000, tr.Score())
	assert.Equal(t, 2, tr.Level())
	assert.Equal(t, 450*time.Millisecond, tr.FallInterval())
	assert.Equal(t, 11, tr.Lines())

	// Points now scale with level 2.
	delta, _ = tr.Award(1)
	assert.Equal(t, 200, delta)
}

func TestTrackerSingleLevelPerAward(t *testing.T) {
	tr := NewTracker()
	tr.score = 11_900

	_, leveled := tr.Award(1)
	assert.True(t, leveled)
	// 12000 clears the thresholds for several levels, but only one is granted.
	assert.Equal(t, 2, tr.Level())
	assert.Equal(t, LevelInterval(2), tr.FallInterval())

	_, leveled = tr.Award(1)
	assert.True(t, leveled)
	assert.Equal(t, 3, tr.Level())
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker()
	tr.score = 50_000
	tr.Award(4)
	tr.Reset()
	assert.Zero(t, tr.Score())
	assert.Zero(t, tr.Lines())
	assert.Equal(t, 1, tr.Level())
	assert.Equal(t, BaseFallInterval, tr.FallInterval())
}

func TestStats(t *testing.T) {
	s := NewStats()
	s.recordSpawn(T)
	s.recordSpawn(T)
	s.recordSpawn(I)
	s.recordLock(0)
	s.recordLock(4)
	s.recordLock(1)
	s.recordLock(1)
	s.recordHold()

	assert.Equal(t, 2, s.Spawned(T))
	assert.Equal(t, 1, s.Spawned(I))
	assert.Zero(t, s.Spawned(Z))
	assert.Equal(t, 4, s.Locks())
	assert.Equal(t, 2, s.Clears(1))
	assert.Equal(t, 1, s.Clears(4))
	assert.Equal(t, 1, s.Holds())

	v := s.view()
	assert.Equal(t, 2, v.SpawnedOf(T))
	assert.Equal(t, [4]int{2, 0, 0, 1}, v.Clears)

	s.Reset()
	assert.Zero(t, s.Spawned(T))
	assert.Zero(t, s.Locks())
	assert.Equal(t, StatsView{}, s.view())
}
