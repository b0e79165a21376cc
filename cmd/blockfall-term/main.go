package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/tetris"
)

// App is the terminal host: it owns the screen, feeds key events into the
// scheduler's command buffer and redraws after every frame.
type App struct {
	screen    tcell.Screen
	scheduler *engine.Scheduler
	sound     *Sound
	softDrop  softDropKey
}

func NewApp(screen tcell.Screen, game *tetris.Game, sound *Sound, releaseAfter time.Duration) *App {
	app := &App{
		screen:    screen,
		scheduler: engine.NewScheduler(game),
		sound:     sound,
		softDrop:  softDropKey{timeout: releaseAfter},
	}

	game.Subscribe(app.onEvent)
	app.scheduler.RegisterNamed("Render", engine.SystemFunc(func(frame *engine.Frame) {
		snap := frame.Game.Snapshot()
		draw(app.screen, &snap)
		app.screen.Show()
	}))
	return app
}

func (a *App) onEvent(e tetris.Event) {
	switch e.Type {
	case tetris.EventClear:
		log.Printf("cleared %d lines (+%d) score=%d level=%d", e.Lines, e.Delta, e.Score, e.Level)
		a.sound.Clear(e.Lines)
	case tetris.EventLevelUp:
		log.Printf("level up: %d", e.Level)
	case tetris.EventGameOver:
		log.Printf("game over: score=%d level=%d", e.Score, e.Level)
		a.sound.GameOver()
	case tetris.EventRestart:
		log.Println("restart")
	}
}

// handle processes one terminal event and reports whether to keep running.
func (a *App) handle(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		act, cmd := mapKey(ev)
		switch act {
		case actionQuit:
			return false
		case actionCommand:
			a.scheduler.Commands().Push(cmd)
		case actionSoftDrop:
			if a.softDrop.repeat(now) {
				a.scheduler.Commands().Push(tetris.SoftDropPress)
			}
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

// Run drives the game until ctx is cancelled or the player quits.
func (a *App) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	lastTime := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-eventChan:
			if !a.handle(ev, time.Now()) {
				return
			}
		case now := <-ticker.C:
			if a.softDrop.expired(now) {
				a.scheduler.Commands().Push(tetris.SoftDropRelease)
			}
			a.scheduler.Once(now.Sub(lastTime))
			lastTime = now
		}
	}
}

func main() {
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for the piece sequence.")
	debug := flag.Bool("debug", false, "Write a debug log to -log-dir.")
	logDir := flag.String("log-dir", "logs", "Directory for the debug log.")
	tick := flag.Duration("tick", 16*time.Millisecond, "Frame interval.")
	release := flag.Duration("soft-release", 250*time.Millisecond, "Treat soft drop as released after this long without a key repeat.")
	mute := flag.Bool("mute", false, "Disable sound.")
	flag.Parse()

	if f := setupLogging(*debug, *logDir); f != nil {
		defer f.Close()
	}
	log.Printf("starting blockfall-term seed=%d", *seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	sound, err := NewSound(*mute)
	if err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sound.Close()

	game := tetris.New(tetris.DefaultConfig(), rand.NewPCG(*seed, *seed))
	app := NewApp(screen, game, sound, *release)
	app.Run(context.Background(), *tick)

	log.Printf("exit: score=%d level=%d lines=%d", game.Score(), game.Level(), game.Lines())
}
