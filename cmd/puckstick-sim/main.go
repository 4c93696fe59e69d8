package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/plus3/puckstick/hockey"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file. Built-in defaults are used when empty.")
	sessions := flag.Int("sessions", 10, "Number of sessions to play.")
	maxTicks := flag.Uint64("max-ticks", 10000, "Stop a session after this many ticks. 0 means no limit.")
	policyName := flag.String("policy", "track", "Input policy: idle, track or random.")
	seed := flag.Int64("seed", 1, "Seed for the random policy.")
	flag.Parse()

	cfg, err := hockey.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	policy, err := NewPolicy(*policyName, *seed)
	if err != nil {
		log.Fatalf("Invalid -policy: %v", err)
	}
	if *maxTicks == 0 && policy.Name() == "track" {
		log.Println("Warning: the track policy may never lose; sessions have no tick limit.")
	}

	log.Printf("Playing %d sessions with the %s policy...", *sessions, policy.Name())

	world := hockey.NewWorld(cfg)
	report := Simulate(world, policy, *sessions, *maxTicks)
	report.Seed = *seed

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Simulation Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// Simulate plays sessions games on world, resetting it between them.
func Simulate(world *hockey.World, policy Policy, sessions int, maxTicks uint64) *Report {
	report := &Report{
		Policy:    policy.Name(),
		Sessions:  sessions,
		MaxTicks:  maxTicks,
		Collision: world.Config().Collision.String(),
	}

	d := newDriver(policy, world.Config().Keys)
	start := time.Now()

	for i := range sessions {
		if i > 0 {
			world.Reset()
			d.reset()
		}

		for maxTicks == 0 || world.Session().Ticks < maxTicks {
			d.steer(world)

			tickStart := time.Now()
			out := world.Step()
			report.TickTime.Samples = append(report.TickTime.Samples, time.Since(tickStart))

			if out != hockey.Continued {
				break
			}
		}

		s := world.Session()
		report.Results = append(report.Results, Result{
			Session:       i + 1,
			Ticks:         s.Ticks,
			WallBounces:   s.WallBounces,
			PaddleBounces: s.PaddleBounces,
			Ended:         s.Over(),
		})
	}

	report.TotalTime = time.Since(start)
	report.TickTime.Finalize()
	report.Systems = world.Scheduler.Stats().Systems
	report.summarize()
	return report
}
