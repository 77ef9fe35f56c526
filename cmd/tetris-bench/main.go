package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	games := flag.Int("games", 1000, "The number of engines to run side by side.")
	frame := flag.Duration("frame", 16*time.Millisecond, "Game time each engine advances per update.")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for piece draws and bot input.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()

	log.Info().Int("games", *games).Uint64("seed", *seed).Msg("starting tetris bench")
	fleet := newFleet(*games, *seed)

	report := &Report{
		Duration:       *duration,
		Games:          *games,
		Frame:          *frame,
		Seed:           *seed,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Info().Dur("duration", *duration).Msg("running")
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			fleet.update(*frame)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.GameTime = time.Duration(totalUpdates) * *frame
	report.UpdateTime.Finalize()
	report.Results = fleet.summary()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Info().Int("finished", report.Results.Games).Msg("bench finished")

	fmt.Println("\n--- Tetris Bench Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("failed to generate report")
	}
	fmt.Println("--- End of Report ---")
}
