// Command stardodge runs the game in an Ebiten window.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"
	"github.com/plus3/stardodge/arcade"
	"github.com/plus3/stardodge/client"
	"github.com/plus3/stardodge/config"
	"github.com/plus3/stardodge/scores"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("[stardodge] %v", err)
	}
}

func run() error {
	configPath := flag.String("config", "", "YAML config file layered over the defaults.")
	debug := flag.Bool("debug", false, "Show the ImGui debug overlay (toggle with F3).")
	windowed := flag.Bool("windowed", false, "Run in a window instead of fullscreen.")
	seed := flag.Uint64("seed", 0, "Random seed, overrides the config when non-zero.")
	cpuProfile := flag.String("cpuprofile", "", "Write a CPU profile into this directory.")
	dumpConfig := flag.Bool("dump-config", false, "Print the effective config as YAML and exit.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *windowed {
		cfg.Window.Fullscreen = false
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	if *dumpConfig {
		out, err := cfg.Encode()
		if err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		fmt.Print(string(out))
		return nil
	}

	if *cpuProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuProfile), profile.NoShutdownHook).Stop()
	}

	store := scores.Open()
	world := arcade.NewWorld(arcade.Options{
		Tuning: cfg.Tuning,
		Step:   cfg.Step(),
		Seed:   cfg.Seed,
		Best:   store.Best(),
		OnGameOver: func(score int, record bool) {
			log.Printf("[stardodge] game over: score=%d new_best=%t", score, record)
			if _, err := store.Submit(score); err != nil {
				log.Printf("[stardodge] save score: %v", err)
			}
		},
	})

	game := client.NewGame(world, client.Options{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Debug:  *debug,
	})

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)

	return ebiten.RunGame(game)
}
