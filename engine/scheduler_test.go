package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSystem struct {
	seen []uint64
	y    []int
}

func (s *recordingSystem) Execute(frame *engine.Frame) {
	s.seen = append(s.seen, frame.Number)
	s.y = append(s.y, frame.Game.Active().Y)
}

func TestSchedulerAppliesCommandsBeforeGravity(t *testing.T) {
	g := newGame(5)
	s := engine.NewScheduler(g)

	s.Commands().Push(tetris.HardDrop)
	s.Once(tetris.BaseFallInterval)

	// The hard drop locked the first piece, then gravity moved the new one.
	assert.Equal(t, 1, g.Stats().Locks())
	assert.Equal(t, tetris.SpawnY+1, g.Active().Y)
}

func TestSchedulerTicksWithDelta(t *testing.T) {
	g := newGame(6)
	s := engine.NewScheduler(g)

	for range 4 {
		s.Once(100 * time.Millisecond)
	}
	assert.Equal(t, tetris.SpawnY, g.Active().Y)

	s.Once(100 * time.Millisecond)
	assert.Equal(t, tetris.SpawnY+1, g.Active().Y)
}

func TestSchedulerUserSystemsRunAfterBuiltins(t *testing.T) {
	g := newGame(7)
	s := engine.NewScheduler(g)
	rec := &recordingSystem{}
	s.Register(rec)

	s.Once(tetris.BaseFallInterval)
	s.Once(tetris.BaseFallInterval)

	assert.Equal(t, []uint64{1, 2}, rec.seen)
	assert.Equal(t, []int{1, 2}, rec.y)
}

func TestSchedulerStats(t *testing.T) {
	s := engine.NewScheduler(newGame(8))
	s.Register(&recordingSystem{})
	s.RegisterNamed("Render", engine.SystemFunc(func(*engine.Frame) {}))

	stats := s.Stats()
	require.Equal(t, 4, stats.SystemCount)
	assert.Zero(t, stats.Systems[0].MinDuration, "unexecuted systems report zero")

	for range 3 {
		s.Once(time.Millisecond)
	}

	stats = s.Stats()
	assert.Equal(t, uint64(3), stats.Frames)
	assert.Equal(t, int64(12), stats.TotalExecutions)

	names := make([]string, 0, len(stats.Systems))
	for _, sys := range stats.Systems {
		names = append(names, sys.Name)
		assert.Equal(t, int64(3), sys.ExecutionCount)
		assert.LessOrEqual(t, sys.MinDuration, sys.AvgDuration)
		assert.LessOrEqual(t, sys.AvgDuration, sys.MaxDuration)
		assert.Equal(t, sys.TotalDuration/3, sys.AvgDuration)
	}
	assert.Equal(t, []string{"CommandSystem", "GravitySystem", "recordingSystem", "Render"}, names)
}

func TestSchedulerRunStopsOnCancel(t *testing.T) {
	s := engine.NewScheduler(newGame(9))

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		s.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Positive(t, s.Stats().Frames)
}
