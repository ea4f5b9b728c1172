// Package simulator runs strategy-driven blackjack sessions without human
// input and reports how each strategy performed.
package simulator

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack-cli/internal/config"
	"github.com/lox/blackjack-cli/internal/game"
	"github.com/lox/blackjack-cli/internal/randutil"
	"github.com/lox/blackjack-cli/internal/strategy"
)

// Config holds configuration for running simulations.
type Config struct {
	Rules config.Config

	// Shuffles is the number of reshuffles each session runs for.
	Shuffles int

	Seed   int64
	Logger *log.Logger
	Clock  quartz.Clock
}

// Simulator plays automated sessions against the engine.
type Simulator struct {
	config Config
}

// New creates a simulator with the given configuration.
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &Simulator{config: config}
}

// Result summarizes one simulated session.
type Result struct {
	Mode             strategy.Mode
	Wins             int
	Losses           int
	Pushes           int
	PlayerBlackjacks int
	DealerBlackjacks int
	HandsPlayed      int
	GamesPlayed      int
	InitialBalance   float64
	FinalBalance     float64
	Elapsed          time.Duration
}

// Net returns the session's profit or loss.
func (r *Result) Net() float64 {
	return r.FinalBalance - r.InitialBalance
}

// ReturnPercent returns the final balance as a percentage change of the
// initial balance.
func (r *Result) ReturnPercent() float64 {
	return 100*r.FinalBalance/r.InitialBalance - 100
}

// Summary renders the result as a printable report.
func (r *Result) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "strategy   %s\n", r.Mode)
	fmt.Fprintf(&b, "rounds     %d (%d hands)\n", r.GamesPlayed, r.HandsPlayed)
	fmt.Fprintf(&b, "W/L/P      %d / %d / %d\n", r.Wins, r.Losses, r.Pushes)
	fmt.Fprintf(&b, "BJ P/D     %d / %d\n", r.PlayerBlackjacks, r.DealerBlackjacks)
	fmt.Fprintf(&b, "balance    %.2f -> %.2f (%+.1f%%)\n", r.InitialBalance, r.FinalBalance, r.ReturnPercent())
	fmt.Fprintf(&b, "elapsed    %s", r.Elapsed)
	return b.String()
}

// Run plays one session with the configured strategy mode and returns its
// result.
func (s *Simulator) Run() (*Result, error) {
	return s.run(s.config.Rules.Strategy, s.config.Seed)
}

func (s *Simulator) run(mode strategy.Mode, seed int64) (*Result, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("unknown strategy mode %q", mode)
	}

	engine := game.New(game.Options{
		MinBet:           s.config.Rules.MinBet,
		MaxBet:           s.config.Rules.MaxBet,
		StartingBalance:  s.config.Rules.Balance,
		ShoeDecks:        s.config.Rules.ShoeDecks,
		ReshufflePercent: s.config.Rules.ReshufflePercent,
		MaxReshuffles:    s.config.Shuffles,
		Source:           strategy.NewAutoPlayer(mode),
		Advisor:          strategy.Advisor{},
		Logger:           s.config.Logger,
		Rng:              randutil.New(seed),
	})

	s.config.Logger.Info("starting simulation", "mode", mode, "shuffles", s.config.Shuffles, "seed", seed)

	start := s.config.Clock.Now()
	if err := engine.PlaySession(); err != nil {
		return nil, fmt.Errorf("simulation failed: %w", err)
	}
	elapsed := s.config.Clock.Since(start)

	stats := engine.Stats()
	result := &Result{
		Mode:             mode,
		Wins:             stats.Wins(),
		Losses:           stats.Losses(),
		Pushes:           stats.Pushes(),
		PlayerBlackjacks: stats.PlayerBlackjacks(),
		DealerBlackjacks: stats.DealerBlackjacks(),
		HandsPlayed:      stats.HandsPlayed(),
		GamesPlayed:      stats.GamesPlayed(),
		InitialBalance:   stats.InitialBalance(),
		FinalBalance:     engine.Player().Balance,
		Elapsed:          elapsed,
	}

	s.config.Logger.Info("simulation complete",
		"mode", mode, "rounds", result.GamesPlayed, "net", result.Net())

	return result, nil
}

// Compare runs one session per strategy mode concurrently, all from the
// same seed so every mode faces the same shoes. Results come back in mode
// order.
func (s *Simulator) Compare() ([]*Result, error) {
	modes := []strategy.Mode{
		strategy.BasicStrategy,
		strategy.BasicAceFive,
		strategy.HiLoStrategy,
		strategy.HiLoAceFive,
	}

	results := make([]*Result, len(modes))
	var g errgroup.Group
	for i, mode := range modes {
		g.Go(func() error {
			result, err := s.run(mode, s.config.Seed)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
