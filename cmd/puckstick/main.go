package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/puckstick/debugui"
	debugui_ebiten "github.com/plus3/puckstick/debugui/ebiten"
	"github.com/plus3/puckstick/display"
	"github.com/plus3/puckstick/hockey"
)

const windowTitle = "Puckstick"

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file. Built-in defaults are used when empty.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug overlay. F1 toggles it.")
	collision := flag.String("collision", "", "Paddle collision test, strict or lenient. Overrides the config file.")
	flag.Parse()

	cfg, err := hockey.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *collision != "" {
		if cfg.Collision, err = hockey.ParseCollisionMode(*collision); err != nil {
			log.Fatalf("Invalid -collision: %v", err)
		}
	}
	log.Printf("Starting %s: field %gx%g, %s collision", windowTitle, cfg.Field.Width, cfg.Field.Height, cfg.Collision)

	world := hockey.NewWorld(cfg)
	world.OnGameOver(func(s hockey.Snapshot) {
		log.Printf("Game over after %d ticks (%d wall, %d paddle bounces)",
			s.Session.Ticks, s.Session.WallBounces, s.Session.PaddleBounces)
	})

	game := display.NewGame(world)
	if *debug {
		// The ImGui backend creates and sizes the window itself.
		game.SetOverlay(debugui_ebiten.NewOverlay(world, windowTitle,
			debugui.NamedScheduler{Name: "Render", Scheduler: game.RenderScheduler()}))
	} else {
		ebiten.SetWindowSize(int(cfg.Field.Width), int(cfg.Field.Height))
		ebiten.SetWindowTitle(windowTitle)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Game exited: %v", err)
	}
	log.Println("Bye.")
}
