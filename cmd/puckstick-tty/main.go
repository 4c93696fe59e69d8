package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/puckstick/hockey"
	"github.com/plus3/puckstick/terminal"
)

func main() {
	defaults := terminal.DefaultOptions()
	configPath := flag.String("config", "", "Path to a TOML config file. Built-in defaults are used when empty.")
	collision := flag.String("collision", "", "Paddle collision test, strict or lenient. Overrides the config file.")
	tps := flag.Int("tps", defaults.TPS, "Game ticks per second.")
	hold := flag.Duration("hold", defaults.Hold, "How long a key counts as held after its last repeat.")
	logPath := flag.String("log", "", "Append log output to this file. Logging is off when empty.")
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := hockey.LoadConfig(*configPath)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to load config: %v", err)
	}
	if *collision != "" {
		if cfg.Collision, err = hockey.ParseCollisionMode(*collision); err != nil {
			log.SetOutput(os.Stderr)
			log.Fatalf("Invalid -collision: %v", err)
		}
	}

	world := hockey.NewWorld(cfg)
	world.OnGameOver(func(s hockey.Snapshot) {
		log.Printf("Game over after %d ticks (%d wall, %d paddle bounces)",
			s.Session.Ticks, s.Session.WallBounces, s.Session.PaddleBounces)
	})

	screen, err := tcell.NewScreen()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to initialise screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Printf("Starting terminal game at %d ticks per second", *tps)
	start := time.Now()
	err = terminal.Run(ctx, screen, world, terminal.Options{TPS: *tps, Hold: *hold})
	screen.Fini()

	if err != nil && !errors.Is(err, context.Canceled) {
		log.SetOutput(os.Stderr)
		log.Fatalf("Terminal game failed: %v", err)
	}
	log.Printf("Stopped after %s", time.Since(start).Round(time.Millisecond))
}
