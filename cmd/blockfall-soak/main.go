package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	games := flag.Int("games", runtime.GOMAXPROCS(0), "The number of independent games to run in parallel.")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Base seed; game i uses seed+i.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting blockfall soak test...")

	report := &Report{
		Duration:       *duration,
		Games:          *games,
		Seed:           *seed,
		GCPauseMetrics: *gcPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running %d games for %s (seed %d)...\n", *games, *duration, *seed)
	startTime := time.Now()
	err := soak(context.Background(), report, *duration, *games, *seed)
	report.TotalTime = time.Since(startTime)
	runtime.ReadMemStats(&report.MemStatsEnd)

	if err != nil {
		report.Violation = err.Error()
		log.Printf("Invariant violation: %v", err)
	}
	log.Println("Soak finished.")

	fmt.Println("\n\n--- Soak Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if report.Violation != "" {
		os.Exit(1)
	}
}

// soak runs games in parallel until duration elapses or one of them breaks an
// invariant, and merges their results into report.
func soak(ctx context.Context, report *Report, duration time.Duration, games int, seed uint64) error {
	ctx, cancel := context.WithTimeout(ctx, duration)
	defer cancel()

	results := make([]*GameResult, games)
	group, ctx := errgroup.WithContext(ctx)
	for i := range games {
		group.Go(func() error {
			res, err := runGame(ctx, seed+uint64(i))
			results[i] = res
			return err
		})
	}
	err := group.Wait()

	for _, res := range results {
		if res != nil {
			report.Totals.merge(res)
		}
	}
	report.Totals.FrameTime.Finalize()
	return err
}
