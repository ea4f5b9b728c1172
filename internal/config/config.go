// Package config resolves and validates the game configuration from CLI
// flags and an optional HCL table-rules file.
package config

import (
	"fmt"

	"github.com/lox/blackjack-cli/internal/strategy"
)

// Config is the fully resolved game configuration.
type Config struct {
	MinBet           int
	MaxBet           int
	Balance          float64
	ShoeDecks        int
	ReshufflePercent int

	// Strategy drives the auto-player in simulation mode.
	Strategy strategy.Mode
}

// Validate checks the table constraints: the maximum bet must be 10-20x the
// minimum, the balance must cover at least 50 minimum bets, the shoe holds
// 4-8 decks, and the reshuffle threshold is a percentage of at least 10.
func (c Config) Validate() error {
	if c.MinBet < 1 {
		return fmt.Errorf("min bet must be at least 1, got %d", c.MinBet)
	}
	if c.MaxBet < 10*c.MinBet || c.MaxBet > 20*c.MinBet {
		return fmt.Errorf("max bet must be between %d and %d (10-20x min bet), got %d",
			10*c.MinBet, 20*c.MinBet, c.MaxBet)
	}
	if c.Balance < 50*float64(c.MinBet) {
		return fmt.Errorf("balance must be at least %d (50x min bet), got %v",
			50*c.MinBet, c.Balance)
	}
	if c.ShoeDecks < 4 || c.ShoeDecks > 8 {
		return fmt.Errorf("shoe must hold between 4 and 8 decks, got %d", c.ShoeDecks)
	}
	if c.ReshufflePercent < 10 || c.ReshufflePercent > 100 {
		return fmt.Errorf("reshuffle percent must be between 10 and 100, got %d", c.ReshufflePercent)
	}
	if c.Strategy != "" && !c.Strategy.Valid() {
		return fmt.Errorf("unknown strategy %q (want BS, BS-AF, HL or HL-AF)", c.Strategy)
	}
	return nil
}
