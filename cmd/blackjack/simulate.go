package main

import (
	"fmt"
	"time"

	"github.com/lox/blackjack-cli/internal/simulator"
	"github.com/lox/blackjack-cli/internal/strategy"
)

// SimulateCmd plays automated sessions and reports strategy performance.
type SimulateCmd struct {
	rulesFlags

	Strategy string `help:"Strategy mode: BS, BS-AF, HL or HL-AF" default:"BS"`
	Shuffles int    `help:"Number of reshuffles to play through" default:"10"`
	Seed     int64  `help:"RNG seed (0 for random)"`
	Compare  bool   `help:"Run all four strategy modes and compare"`
}

func (c *SimulateCmd) Run(cli *CLI) error {
	cfg, err := c.resolve(strategy.Mode(c.Strategy))
	if err != nil {
		return err
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sim := simulator.New(simulator.Config{
		Rules:    cfg,
		Shuffles: c.Shuffles,
		Seed:     seed,
		Logger:   newLogger(cli.Verbose),
	})

	if c.Compare {
		results, err := sim.Compare()
		if err != nil {
			return err
		}
		for i, result := range results {
			if i > 0 {
				fmt.Println()
			}
			fmt.Println(result.Summary())
		}
		return nil
	}

	result, err := sim.Run()
	if err != nil {
		return err
	}
	fmt.Println(result.Summary())
	return nil
}
