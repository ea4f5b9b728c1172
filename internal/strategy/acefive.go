package strategy

import "fmt"

// AceFiveBet recommends a bet command from the Ace-Five count: the table
// minimum on the first bet of a fresh shoe, double the previous bet capped
// at the table maximum on a count of 2 or more, and the table minimum
// otherwise.
func AceFiveBet(count, minBet, lastBet, maxBet, cardsPlayed int) string {
	bet := minBet
	if cardsPlayed > 0 && count >= 2 {
		bet = 2 * lastBet
		if bet > maxBet {
			bet = maxBet
		}
	}
	return fmt.Sprintf("b %d", bet)
}
