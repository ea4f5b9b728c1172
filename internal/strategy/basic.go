package strategy

import "github.com/lox/blackjack-cli/internal/game"

// BasicAction looks up the basic-strategy recommendation for the hand
// against the dealer's visible card. Pairs take precedence over the soft
// table, which takes precedence over the hard table.
func BasicAction(hand *game.PlayerHand, dealer *game.Hand) Action {
	ds := dealer.Value() - 2

	switch {
	case hand.Len() == 2 && hand.Card(0).Value() == hand.Card(1).Value():
		return decode(pairTable[hand.Card(0).Value()-2][ds], hand)
	case hand.IsSoft():
		return decode(softTable[hand.Value()-13][ds], hand)
	default:
		return decode(hardTable[hand.Value()-5][ds], hand)
	}
}

// canDouble reports whether the hand may still double or split: the opening
// two cards and no side rule applied yet.
func canDouble(hand *game.PlayerHand) bool {
	return hand.Len() == 2 && !hand.Insurance && !hand.Doubled && !hand.Surrender
}

// canSurrender additionally excludes split hands, which may never surrender.
func canSurrender(hand *game.PlayerHand) bool {
	return canDouble(hand) && !hand.Split
}

// decode resolves a table entry against the hand's current eligibility.
func decode(e tableEntry, hand *game.PlayerHand) Action {
	switch e {
	case ss:
		return Stand
	case pp:
		return Split
	case dh:
		if canDouble(hand) {
			return Double
		}
		return Hit
	case ds:
		if canDouble(hand) {
			return Double
		}
		return Stand
	case rh:
		if canSurrender(hand) {
			return Surrender
		}
		return Stand
	default:
		return Hit
	}
}
