package statistics

import "github.com/lox/blackjack-cli/internal/deck"

// HiLoTag returns the Hi-Lo counting tag for a drawn card: +1 for values
// 2-6, 0 for 7-9, -1 for tens and aces.
func HiLoTag(c deck.Card) int {
	v := c.Value()
	switch {
	case v >= 2 && v <= 6:
		return 1
	case v >= 7 && v <= 9:
		return 0
	default: // ten or ace
		return -1
	}
}

// AceFiveTag returns the Ace-Five counting tag for a drawn card: +1 for a
// five, -1 for an ace, 0 otherwise.
func AceFiveTag(c deck.Card) int {
	switch c.Value() {
	case 5:
		return 1
	case 11:
		return -1
	default:
		return 0
	}
}
