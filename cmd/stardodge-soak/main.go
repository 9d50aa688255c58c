// Command stardodge-soak runs the simulation headlessly with a scripted
// pilot and prints a timing report.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/plus3/stardodge/config"
	"github.com/plus3/stardodge/internal/soak"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "Wall-clock limit for the run, 0 for none.")
	ticks := flag.Int("ticks", 0, "Fixed tick limit, 0 for none.")
	seed := flag.Uint64("seed", 0, "Random seed, overrides the config when non-zero.")
	configPath := flag.String("config", "", "YAML config file; its tuning and seed are used.")
	profileMode := flag.String("profile", "", "Profile to write into -profile-dir: cpu or mem.")
	profileDir := flag.String("profile-dir", ".", "Directory for profile output.")
	flag.Parse()

	if *duration <= 0 && *ticks <= 0 {
		log.Fatalf("[soak] one of -duration or -ticks must be positive")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[soak] %v", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*profileDir), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath(*profileDir), profile.NoShutdownHook).Stop()
	default:
		log.Fatalf("[soak] unknown profile %q", *profileMode)
	}

	log.Printf("[soak] starting: duration=%v ticks=%d", *duration, *ticks)
	report := soak.Run(context.Background(), soak.Config{
		Duration: *duration,
		Ticks:    *ticks,
		Seed:     cfg.Seed,
		Tuning:   cfg.Tuning,
		Width:    float64(cfg.Window.Width),
		Height:   float64(cfg.Window.Height),
	}, soak.DefaultPilot())

	fmt.Println("\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Printf("[soak] failed to generate report: %v", err)
		return
	}
	fmt.Println("--- End of Report ---")
}
