package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/blackjack-cli/internal/strategy"
)

// RulesFile is the on-disk table-rules format:
//
//	table {
//	  min_bet           = 5
//	  max_bet           = 100
//	  balance           = 500
//	  shoe_decks        = 4
//	  reshuffle_percent = 50
//	}
type RulesFile struct {
	Table TableRules `hcl:"table,block"`
}

// TableRules holds the table parameters a rules file may set. CLI flags
// override any value set here.
type TableRules struct {
	MinBet           int     `hcl:"min_bet,optional"`
	MaxBet           int     `hcl:"max_bet,optional"`
	Balance          float64 `hcl:"balance,optional"`
	ShoeDecks        int     `hcl:"shoe_decks,optional"`
	ReshufflePercent int     `hcl:"reshuffle_percent,optional"`
}

// DefaultRules returns the built-in table rules.
func DefaultRules() *RulesFile {
	return &RulesFile{
		Table: TableRules{
			MinBet:           5,
			MaxBet:           100,
			Balance:          500,
			ShoeDecks:        4,
			ReshufflePercent: 50,
		},
	}
}

// LoadRules reads a table-rules file, falling back to the defaults when the
// file does not exist.
func LoadRules(filename string) (*RulesFile, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultRules(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse rules file: %s", diags.Error())
	}

	rules := DefaultRules()
	if diags := gohcl.DecodeBody(file.Body, nil, rules); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode rules file: %s", diags.Error())
	}
	return rules, nil
}

// Resolve merges the rules with CLI overrides: any nonzero override wins.
func (r *RulesFile) Resolve(overrides TableRules, mode strategy.Mode) Config {
	merged := r.Table
	if overrides.MinBet != 0 {
		merged.MinBet = overrides.MinBet
	}
	if overrides.MaxBet != 0 {
		merged.MaxBet = overrides.MaxBet
	}
	if overrides.Balance != 0 {
		merged.Balance = overrides.Balance
	}
	if overrides.ShoeDecks != 0 {
		merged.ShoeDecks = overrides.ShoeDecks
	}
	if overrides.ReshufflePercent != 0 {
		merged.ReshufflePercent = overrides.ReshufflePercent
	}

	return Config{
		MinBet:           merged.MinBet,
		MaxBet:           merged.MaxBet,
		Balance:          merged.Balance,
		ShoeDecks:        merged.ShoeDecks,
		ReshufflePercent: merged.ReshufflePercent,
		Strategy:         mode,
	}
}
