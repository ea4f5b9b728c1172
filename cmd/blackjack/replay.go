package main

import (
	"fmt"

	"github.com/sanity-io/litter"

	"github.com/lox/blackjack-cli/internal/display"
	"github.com/lox/blackjack-cli/internal/game"
	"github.com/lox/blackjack-cli/internal/replay"
	"github.com/lox/blackjack-cli/internal/strategy"
)

// ReplayCmd reruns a recorded session: the shoe comes from a card file and
// every player decision from a command file.
type ReplayCmd struct {
	rulesFlags

	ShoeFile    string `arg:"" help:"File of card tokens drawn in order" type:"existingfile"`
	CommandFile string `arg:"" help:"File of player commands" type:"existingfile"`
}

func (c *ReplayCmd) Run(cli *CLI) error {
	cfg, err := c.resolve("")
	if err != nil {
		return err
	}

	logger := newLogger(cli.Verbose)

	shoe, err := replay.ReadShoeFile(c.ShoeFile)
	if err != nil {
		return err
	}
	cmds, err := replay.ReadCommandsFile(c.CommandFile)
	if err != nil {
		return err
	}

	source := replay.NewSource(cmds)
	engine := game.New(game.Options{
		MinBet:           cfg.MinBet,
		MaxBet:           cfg.MaxBet,
		StartingBalance:  cfg.Balance,
		ShoeDecks:        cfg.ShoeDecks,
		ReshufflePercent: cfg.ReshufflePercent,
		Source:           source,
		Advisor:          strategy.Advisor{},
		Observer:         display.NewTerminal(nil),
		Logger:           logger,
		Shoe:             shoe,
	})

	logger.Info("starting replay",
		"shoe_cards", shoe.Remaining(), "commands", len(cmds))

	if err := engine.PlaySession(); err != nil {
		return err
	}

	if source.Remaining() > 0 {
		logger.Warn("replay ended with commands left over", "remaining", source.Remaining())
	}

	if cli.Verbose {
		fmt.Println("final counting state:")
		litter.Dump(engine.Stats().Counts())
	}
	return nil
}
