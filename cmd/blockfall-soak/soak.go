package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/tetris"
)

// maxFrameStep bounds the simulated delta fed to each frame.
const maxFrameStep = 120 * time.Millisecond

// GameResult is what one soak worker observed.
type GameResult struct {
	Frames    int64
	Commands  int64
	Locks     int
	Lines     int
	GameOvers int
	TopScore  int
	MaxLevel  int
	Spawned   [tetris.KindCount]int
	Clears    [4]int
	FrameTime Stats
}

func (r *GameResult) merge(o *GameResult) {
	r.Frames += o.Frames
	r.Commands += o.Commands
	r.Locks += o.Locks
	r.Lines += o.Lines
	r.GameOvers += o.GameOvers
	r.TopScore = max(r.TopScore, o.TopScore)
	r.MaxLevel = max(r.MaxLevel, o.MaxLevel)
	for i := range r.Spawned {
		r.Spawned[i] += o.Spawned[i]
	}
	for i := range r.Clears {
		r.Clears[i] += o.Clears[i]
	}
	r.FrameTime.Samples = append(r.FrameTime.Samples, o.FrameTime.Samples...)
}

// InvariantSystem checks the game after every frame and records the first
// violation it sees.
type InvariantSystem struct {
	lastScore int
	lastLevel int
	err       error
}

func (s *InvariantSystem) Execute(frame *engine.Frame) {
	if s.err != nil {
		return
	}
	snap := frame.Game.Snapshot()

	if bad := snap.Overlaps(); len(bad) > 0 {
		s.err = fmt.Errorf("frame %d: active %s overlaps board at %v", frame.Number, snap.Active.Kind, bad)
		return
	}
	if snap.GameOver == snap.HasActive() {
		s.err = fmt.Errorf("frame %d: state %s with active piece %t", frame.Number, snap.State, snap.HasActive())
		return
	}
	if snap.Score < s.lastScore || snap.Level < s.lastLevel {
		s.err = fmt.Errorf("frame %d: score/level went backwards: %d/%d -> %d/%d",
			frame.Number, s.lastScore, s.lastLevel, snap.Score, snap.Level)
		return
	}
	if len(snap.Next) != tetris.NextCount {
		s.err = fmt.Errorf("frame %d: next queue has %d kinds", frame.Number, len(snap.Next))
		return
	}
	s.lastScore, s.lastLevel = snap.Score, snap.Level
}

func (s *InvariantSystem) restarted() {
	s.lastScore, s.lastLevel = 0, 1
}

// runGame plays one game with random input until ctx is done, restarting after
// every game over. Simulated time advances by a random step per frame so the
// run is not tied to wall-clock speed.
func runGame(ctx context.Context, seed uint64) (*GameResult, error) {
	game := tetris.New(tetris.DefaultConfig(), rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	input := rand.New(rand.NewPCG(seed+1, seed))

	scheduler := engine.NewScheduler(game)
	invariants := &InvariantSystem{lastLevel: 1}
	scheduler.Register(invariants)

	result := &GameResult{}
	game.Subscribe(func(e tetris.Event) {
		switch e.Type {
		case tetris.EventLock:
			result.Locks++
		case tetris.EventClear:
			result.Lines += e.Lines
		case tetris.EventGameOver:
			result.GameOvers++
		}
		result.TopScore = max(result.TopScore, e.Score)
		result.MaxLevel = max(result.MaxLevel, e.Level)
	})

	// Restart is issued by the loop on game over, not drawn at random.
	playable := tetris.Commands[:len(tetris.Commands)-1]

	for ctx.Err() == nil {
		if game.IsOver() {
			collectStats(result, game.Stats())
			scheduler.Commands().Push(tetris.Restart)
			scheduler.Commands().Defer(invariants.restarted)
		} else if input.IntN(3) == 0 {
			scheduler.Commands().Push(playable[input.IntN(len(playable))])
			result.Commands++
		}

		dt := time.Duration(input.Int64N(int64(maxFrameStep)))
		start := time.Now()
		scheduler.Once(dt)
		result.FrameTime.Samples = append(result.FrameTime.Samples, time.Since(start))
		result.Frames++

		if invariants.err != nil {
			return result, fmt.Errorf("seed %d: %w", seed, invariants.err)
		}
	}

	collectStats(result, game.Stats())
	return result, nil
}

func collectStats(r *GameResult, stats *tetris.Stats) {
	for i, k := range tetris.Kinds {
		r.Spawned[i] += stats.Spawned(k)
	}
	for i := range r.Clears {
		r.Clears[i] += stats.Clears(i + 1)
	}
}
