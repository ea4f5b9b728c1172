package strategy

import (
	"fmt"

	"github.com/lox/blackjack-cli/internal/game"
)

// AutoPlayer is a command source that plays a whole session by itself,
// driven by one of the four strategy modes. Used by simulation mode.
type AutoPlayer struct {
	mode Mode
}

// NewAutoPlayer creates an auto-player for the given mode.
func NewAutoPlayer(mode Mode) *AutoPlayer {
	return &AutoPlayer{mode: mode}
}

// NextCommand produces the next command for the engine. It never returns an
// error: an auto-player has no input to exhaust.
func (a *AutoPlayer) NextCommand(v game.View) (string, error) {
	switch v.Phase {
	case game.Betting:
		return fmt.Sprintf("b %d", a.betAmount(v)), nil
	case game.Dealing:
		return "d", nil
	default:
		return a.playAction(v).Command(), nil
	}
}

// betAmount sizes the next bet, clamped so the engine will accept it.
func (a *AutoPlayer) betAmount(v game.View) int {
	bet := v.MinBet
	if a.mode.UsesAceFive() && v.Stats.CardsPlayed > 0 && v.Stats.AceFiveCount >= 2 {
		bet = 2 * v.LastBet
		if bet > v.MaxBet {
			bet = v.MaxBet
		}
	}

	if float64(bet) > v.Balance {
		bet = int(v.Balance)
	}
	if bet < v.MinBet {
		bet = v.MinBet
	}
	return bet
}

// playAction picks the playing decision, downgrading recommendations the
// engine would reject so the session can never stall on a repeated illegal
// command.
func (a *AutoPlayer) playAction(v game.View) Action {
	var act Action
	if a.mode.UsesHiLo() {
		act = HiLoAction(v.Stats.TrueCount, v.Hand, v.DealerUp)
	} else {
		act = BasicAction(v.Hand, v.DealerUp)
	}

	if act == Insurance && float64(v.LastBet) > v.Balance {
		act = BasicAction(v.Hand, v.DealerUp)
	}

	switch act {
	case Split, Surrender:
		if !v.SideRules {
			act = Hit
		}
	case Double:
		if !v.SideRules || v.Balance < 2*float64(v.LastBet) {
			act = Hit
		}
	}
	return act
}
