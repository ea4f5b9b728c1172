package game

import (
	"strings"

	"github.com/lox/blackjack-cli/internal/deck"
)

// Hand is an ordered sequence of cards with its blackjack value maintained
// alongside. The value, ace count, and soft-ace count are recomputed from
// scratch on every mutation so they can never drift from the card sequence.
type Hand struct {
	cards    []deck.Card
	value    int
	aces     int
	softAces int
}

// Add appends a card to the hand and recomputes the value.
func (h *Hand) Add(c deck.Card) {
	h.cards = append(h.cards, c)
	h.recompute()
}

// RemoveLast removes and returns the most recently added card. Used when a
// hand is split.
func (h *Hand) RemoveLast() deck.Card {
	last := h.cards[len(h.cards)-1]
	h.cards = h.cards[:len(h.cards)-1]
	h.recompute()
	return last
}

// recompute sums every card at its nominal value (aces at 11), then demotes
// soft aces to 1 while the total exceeds 21.
func (h *Hand) recompute() {
	total := 0
	aces := 0
	for _, c := range h.cards {
		v := c.Value()
		if v == 11 {
			aces++
		}
		total += v
	}

	h.aces = aces
	h.softAces = aces
	for total > 21 && h.softAces > 0 {
		total -= 10
		h.softAces--
	}
	h.value = total
}

// Value returns the blackjack value of the hand with soft aces resolved.
func (h *Hand) Value() int { return h.value }

// Len returns the number of cards in the hand
func (h *Hand) Len() int { return len(h.cards) }

// Card returns the card at position i.
func (h *Hand) Card(i int) deck.Card { return h.cards[i] }

// Cards returns a copy of the card sequence.
func (h *Hand) Cards() []deck.Card {
	out := make([]deck.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Aces returns the number of aces in the hand.
func (h *Hand) Aces() int { return h.aces }

// SoftAces returns the number of aces still counted as 11.
func (h *Hand) SoftAces() int { return h.softAces }

// IsSoft reports whether the hand is soft: it holds at least one ace and
// every ace is still worth 11. Strategy tables branch on this.
func (h *Hand) IsSoft() bool {
	return h.aces > 0 && h.softAces == h.aces
}

// IsBlackjack reports whether the hand is a natural: exactly two cards
// totalling 21.
func (h *Hand) IsBlackjack() bool {
	return len(h.cards) == 2 && h.value == 21
}

// IsBust reports whether the hand value exceeds 21
func (h *Hand) IsBust() bool { return h.value > 21 }

// Clear removes all cards from the hand
func (h *Hand) Clear() {
	h.cards = h.cards[:0]
	h.value = 0
	h.aces = 0
	h.softAces = 0
}

// String lists the cards as space-separated tokens, e.g. "10H AS".
func (h *Hand) String() string {
	tokens := make([]string, len(h.cards))
	for i, c := range h.cards {
		tokens[i] = c.String()
	}
	return strings.Join(tokens, " ")
}
