package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lox/blackjack-cli/internal/config"
	"github.com/lox/blackjack-cli/internal/strategy"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `help:"Show version"`
	Verbose  bool             `short:"v" help:"Verbose logging"`
	Play     PlayCmd          `cmd:"" help:"Play an interactive game"`
	Replay   ReplayCmd        `cmd:"" help:"Replay a recorded shoe and command file"`
	Simulate SimulateCmd      `cmd:"" help:"Run automated strategy simulations"`
}

// rulesFlags are the table parameters shared by every subcommand. Zero
// values fall through to the rules file (or its defaults).
type rulesFlags struct {
	Rules            string  `help:"Path to an HCL table-rules file" default:"blackjack.hcl" type:"path"`
	MinBet           int     `help:"Minimum bet"`
	MaxBet           int     `help:"Maximum bet (10-20x the minimum)"`
	Balance          float64 `help:"Starting balance (at least 50x the minimum bet)"`
	Decks            int     `help:"Number of decks in the shoe (4-8)"`
	ReshufflePercent int     `help:"Percentage of the shoe played before reshuffling"`
}

// resolve merges the rules file with the CLI overrides and validates the
// result.
func (f rulesFlags) resolve(mode strategy.Mode) (config.Config, error) {
	rules, err := config.LoadRules(f.Rules)
	if err != nil {
		return config.Config{}, err
	}

	cfg := rules.Resolve(config.TableRules{
		MinBet:           f.MinBet,
		MaxBet:           f.MaxBet,
		Balance:          f.Balance,
		ShoeDecks:        f.Decks,
		ReshufflePercent: f.ReshufflePercent,
	}, mode)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger builds the session logger. Every log line carries a short
// session identifier so interleaved sessions can be told apart.
func newLogger(verbose bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "blackjack",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger.With("session", uuid.NewString()[:8])
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Blackjack table with card-counting strategy advice"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
