package main

import (
	"io"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(60, 26)
	t.Cleanup(screen.Fini)
	return screen
}

func newApp(t *testing.T) (*App, *tetris.Game) {
	t.Helper()
	sound, err := NewSound(true)
	require.NoError(t, err)
	game := tetris.New(tetris.DefaultConfig(), rand.NewPCG(5, 5))
	return NewApp(newSimScreen(t), game, sound, 250*time.Millisecond), game
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		act  action
		cmd  tetris.Command
	}{
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), actionCommand, tetris.MoveLeft},
		{"right arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), actionCommand, tetris.MoveRight},
		{"up arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), actionCommand, tetris.RotateCW},
		{"down arrow", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), actionSoftDrop, 0},
		{"h", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), actionCommand, tetris.MoveLeft},
		{"l", tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), actionCommand, tetris.MoveRight},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), actionCommand, tetris.HardDrop},
		{"c", tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone), actionCommand, tetris.Hold},
		{"r", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), actionCommand, tetris.Restart},
		{"j", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), actionSoftDrop, 0},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), actionQuit, 0},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), actionQuit, 0},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), actionNone, 0},
		{"unbound key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), actionNone, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			act, cmd := mapKey(tt.ev)
			assert.Equal(t, tt.act, act)
			assert.Equal(t, tt.cmd, cmd)
		})
	}
}

func TestSoftDropKey(t *testing.T) {
	k := softDropKey{timeout: 100 * time.Millisecond}
	start := time.Now()

	assert.False(t, k.expired(start), "idle key never expires")
	assert.True(t, k.repeat(start))
	assert.False(t, k.repeat(start.Add(50*time.Millisecond)), "repeats continue the press")
	assert.False(t, k.expired(start.Add(120*time.Millisecond)))
	assert.True(t, k.expired(start.Add(150*time.Millisecond)))
	assert.False(t, k.expired(start.Add(300*time.Millisecond)), "release is reported once")
	assert.True(t, k.repeat(start.Add(400*time.Millisecond)))
}

func TestHandleQueuesCommands(t *testing.T) {
	app, _ := newApp(t)
	now := time.Now()
	cmds := app.scheduler.Commands()

	assert.True(t, app.handle(tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone), now))
	assert.Equal(t, 1, cmds.Len())

	app.handle(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), now)
	app.handle(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), now.Add(30*time.Millisecond))
	assert.Equal(t, 2, cmds.Len(), "key repeats press soft drop once")

	app.handle(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), now)
	assert.Equal(t, 2, cmds.Len())

	assert.False(t, app.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), now))
}

func TestFrameRendersAfterTick(t *testing.T) {
	app, game := newApp(t)
	app.scheduler.Commands().Push(tetris.HardDrop)
	app.scheduler.Once(16 * time.Millisecond)

	require.Equal(t, 1, game.Stats().Locks())
	screen := app.screen.(tcell.SimulationScreen)

	snap := game.Snapshot()
	for _, pt := range snap.Active.Cells {
		_, _, style, _ := screen.GetContent(boardLeft+pt.X*cellWidth, boardTop+pt.Y)
		assert.Equal(t, kindStyle(snap.Active.Kind), style, "active cell %v", pt)
	}
}

func readRow(screen tcell.SimulationScreen, x, y, n int) string {
	out := make([]rune, n)
	for i := range n {
		r, _, _, _ := screen.GetContent(x+i, y)
		out[i] = r
	}
	return string(out)
}

func TestDrawSidebar(t *testing.T) {
	screen := newSimScreen(t)
	game := tetris.New(tetris.DefaultConfig(), rand.NewPCG(6, 6))
	snap := game.Snapshot()

	draw(screen, &snap)

	assert.Equal(t, "Score  0", readRow(screen, sideLeft, boardTop, 8))
	assert.Equal(t, "Level  1", readRow(screen, sideLeft, boardTop+1, 8))
	assert.Equal(t, "Hold", readRow(screen, sideLeft, boardTop+4, 4))

	r, _, _, _ := screen.GetContent(boardLeft-1, boardTop+tetris.Height)
	assert.Equal(t, '└', r)
}

func TestDrawGameOver(t *testing.T) {
	screen := newSimScreen(t)
	snap := tetris.Snapshot{Level: 1, GameOver: true, State: tetris.GameOver}

	draw(screen, &snap)

	bottom := boardTop + tetris.Height
	assert.Equal(t, "GAME OVER", readRow(screen, sideLeft, bottom-2, 9))
}

func TestToneFor(t *testing.T) {
	assert.Less(t, toneFor(1), toneFor(2))
	assert.Less(t, toneFor(2), toneFor(3))
	assert.Less(t, toneFor(3), toneFor(4))
	assert.Equal(t, toneFor(4), toneFor(9))
}

func TestMutedSoundIsSilent(t *testing.T) {
	s, err := NewSound(true)
	require.NoError(t, err)
	s.Clear(4)
	s.GameOver()
	s.Close()
}

func TestSetupLoggingDisabled(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	f := setupLogging(false, t.TempDir())
	assert.Nil(t, f)
	assert.Equal(t, io.Discard, log.Writer())
}

func TestSetupLoggingEnabled(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	defer log.SetFlags(log.LstdFlags)

	dir := filepath.Join(t.TempDir(), "logs")
	f := setupLogging(true, dir)
	require.NotNil(t, f)
	defer f.Close()

	log.Println("Test log message")

	info, err := os.Stat(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
