package strategy

import (
	"fmt"

	"github.com/lox/blackjack-cli/internal/game"
)

// Advisor answers the engine's advice command with one line per applicable
// strategy.
type Advisor struct{}

// Advise returns the recommendations for the current decision point: bet
// sizing while betting, the deal prompt while dealing, and the basic and
// Hi-Lo plays while acting.
func (Advisor) Advise(v game.View) []string {
	switch v.Phase {
	case game.Betting:
		bet := AceFiveBet(v.Stats.AceFiveCount, v.MinBet, v.LastBet, v.MaxBet, v.Stats.CardsPlayed)
		return []string{fmt.Sprintf("acefive\t%s", bet)}

	case game.Acting:
		if v.Hand == nil {
			return nil
		}
		basic := BasicAction(v.Hand, v.DealerUp)
		hilo := HiLoAction(v.Stats.TrueCount, v.Hand, v.DealerUp)
		return []string{
			fmt.Sprintf("basic\t%s", basic.Command()),
			fmt.Sprintf("hilow\t%s", hilo.Command()),
		}

	default:
		return []string{"deal - (d)"}
	}
}
