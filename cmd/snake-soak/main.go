package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/plus3/snake/game"
	"github.com/plus3/snake/snake"
)

func main() {
	cfg := game.DefaultConfig()
	game.BindFlags(flag.CommandLine, &cfg)
	duration := flag.Duration("duration", 10*time.Minute, "Simulated time to play for.")
	fps := flag.Int("fps", 60, "Simulated frames per second.")
	verbose := flag.Bool("v", false, "Log every score change and game over.")
	flag.Parse()

	if !*verbose {
		cfg.Logger = log.New(io.Discard, "", 0)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	report, err := Soak(ctx, cfg, *duration, *fps)
	if err != nil {
		log.Fatalf("Soak failed: %v", err)
	}

	fmt.Println("\n\n--- Snake Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// Soak plays one autopilot session headless for duration of simulated time
// and checks the board after every frame.
func Soak(ctx context.Context, cfg game.Config, duration time.Duration, fps int) (*Report, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("fps must be positive, got %d", fps)
	}

	g, err := game.New(cfg, &game.Autopilot{})
	if err != nil {
		return nil, err
	}

	log.Printf("Soaking session %s for %s of game time...", g.ID(), duration)

	report := &Report{
		Session:  g.ID().String(),
		Config:   cfg,
		Duration: duration,
		FPS:      fps,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	dt := 1.0 / float64(fps)
	frames := int64(duration.Seconds() * float64(fps))
	startTime := time.Now()

Loop:
	for report.Frames < frames {
		select {
		case <-ctx.Done():
			report.Interrupted = true
			break Loop
		default:
		}

		updateStart := time.Now()
		g.Update(dt)
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
		report.Frames++

		for _, c := range g.Events().Collisions {
			switch c {
			case snake.WallCollision:
				report.WallDeaths++
			case snake.SelfCollision:
				report.SelfDeaths++
			}
		}

		snap := g.Snapshot()
		if err := check(cfg.Sim, snap); err != nil {
			return nil, fmt.Errorf("frame %d: %w", report.Frames, err)
		}
		report.Longest = max(report.Longest, len(snap.Segments))
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()

	final := g.Snapshot()
	report.Games = final.Games
	report.Best = final.Best
	report.Phases = g.Stats().Systems

	log.Println("Soak finished.")
	return report, nil
}

// check verifies the board invariants a running game must keep.
func check(cfg snake.Config, snap snake.Snapshot) error {
	if len(snap.Food) > cfg.FoodLimit {
		return fmt.Errorf("%d food over limit %d", len(snap.Food), cfg.FoodLimit)
	}
	for _, f := range snap.Food {
		if !cfg.Arena.Contains(f) {
			return fmt.Errorf("%w: food at %v", snake.ErrOutOfBounds, f)
		}
	}
	for i, c := range snap.Segments {
		if !cfg.Arena.Contains(c) {
			return fmt.Errorf("%w: segment %d at %v", snake.ErrOutOfBounds, i, c)
		}
	}
	return nil
}
