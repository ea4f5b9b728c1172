package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chzyer/readline"

	"github.com/lox/blackjack-cli/internal/display"
	"github.com/lox/blackjack-cli/internal/game"
	"github.com/lox/blackjack-cli/internal/strategy"
)

// PlayCmd runs an interactive session at the terminal.
type PlayCmd struct {
	rulesFlags
}

var promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)

func (c *PlayCmd) Run(cli *CLI) error {
	cfg, err := c.resolve("")
	if err != nil {
		return err
	}

	logger := newLogger(cli.Verbose)

	prompt, err := newPromptSource()
	if err != nil {
		return fmt.Errorf("failed to set up prompt: %w", err)
	}
	defer prompt.Close()

	engine := game.New(game.Options{
		MinBet:           cfg.MinBet,
		MaxBet:           cfg.MaxBet,
		StartingBalance:  cfg.Balance,
		ShoeDecks:        cfg.ShoeDecks,
		ReshufflePercent: cfg.ReshufflePercent,
		Source:           prompt,
		Advisor:          strategy.Advisor{},
		Observer:         display.NewTerminal(nil),
		Logger:           logger,
	})

	logger.Info("starting interactive game",
		"min_bet", cfg.MinBet, "max_bet", cfg.MaxBet, "balance", cfg.Balance)

	return engine.PlaySession()
}

// promptSource reads commands from a readline prompt, reflecting the game
// phase in the prompt text. Ctrl-D ends the session.
type promptSource struct {
	rl *readline.Instance
}

func newPromptSource() (*promptSource, error) {
	completer := readline.NewPrefixCompleter(
		readline.PcItem("b"),
		readline.PcItem("d"),
		readline.PcItem("h"),
		readline.PcItem("s"),
		readline.PcItem("i"),
		readline.PcItem("u"),
		readline.PcItem("p"),
		readline.PcItem("2"),
		readline.PcItem("ad"),
		readline.PcItem("st"),
		readline.PcItem("help"),
		readline.PcItem("q"),
	)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          promptStyle.Render("blackjack> "),
		HistoryFile:     "/tmp/blackjack_history",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return nil, err
	}
	return &promptSource{rl: rl}, nil
}

func (p *promptSource) NextCommand(v game.View) (string, error) {
	p.rl.SetPrompt(promptStyle.Render(promptFor(v)))

	for {
		line, err := p.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			return "", io.EOF
		}
		if err != nil {
			return "", err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		return line, nil
	}
}

func promptFor(v game.View) string {
	switch v.Phase {
	case game.Betting:
		return fmt.Sprintf("bet (balance %v)> ", v.Balance)
	case game.Dealing:
		return "deal> "
	default:
		return "play> "
	}
}

func (p *promptSource) Close() error {
	return p.rl.Close()
}
