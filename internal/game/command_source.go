package game

import (
	"github.com/lox/blackjack-cli/internal/statistics"
)

// Phase is the engine's position in the round lifecycle. Commands are only
// legal in particular phases.
type Phase int

const (
	// Betting accepts a bet or a quit.
	Betting Phase = iota
	// Dealing accepts only the deal command.
	Dealing
	// Acting accepts the playing commands for the current hand.
	Acting
)

func (p Phase) String() string {
	switch p {
	case Betting:
		return "betting"
	case Dealing:
		return "dealing"
	case Acting:
		return "acting"
	default:
		return "unknown"
	}
}

// View is the read-only slice of game state handed to command sources and
// advisors. Hand is the hand currently awaiting a decision; it is nil
// outside the acting phase.
type View struct {
	Phase     Phase
	Hand      *PlayerHand
	DealerUp  *Hand
	MinBet    int
	MaxBet    int
	LastBet   int
	Balance   float64
	SideRules bool
	Stats     statistics.Snapshot
}

// CommandSource produces the next command for the engine: a human at a
// prompt, a strategy auto-player, or a replay file. Returning io.EOF ends
// the session gracefully.
type CommandSource interface {
	NextCommand(v View) (string, error)
}

// Advisor recommends plays for the ad command. Implementations live in the
// strategy package; the engine only formats what comes back.
type Advisor interface {
	Advise(v View) []string
}

// SourceFunc adapts a function to the CommandSource interface.
type SourceFunc func(v View) (string, error)

func (f SourceFunc) NextCommand(v View) (string, error) { return f(v) }
