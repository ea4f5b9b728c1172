package game

import "github.com/lox/blackjack-cli/internal/deck"

// Dealer holds the dealer's visible hand and the single hidden hole-card
// slot. The hole card moves into the hand exactly once per round, at the
// start of the dealer's turn.
type Dealer struct {
	hand Hand
	hole *deck.Card
}

// AddCard adds a visible card to the dealer's hand.
func (d *Dealer) AddCard(c deck.Card) {
	d.hand.Add(c)
}

// SetHoleCard stores the face-down card. It contributes nothing to the
// hand value or the running counts until turned.
func (d *Dealer) SetHoleCard(c deck.Card) {
	d.hole = &c
}

// TurnHoleCard reveals the hole card by moving it into the visible hand
// and returns it so the caller can update the counting statistics.
func (d *Dealer) TurnHoleCard() (deck.Card, bool) {
	if d.hole == nil {
		return deck.Card{}, false
	}
	card := *d.hole
	d.hole = nil
	d.hand.Add(card)
	return card, true
}

// Hand returns the dealer's visible hand.
func (d *Dealer) Hand() *Hand { return &d.hand }

// Clear discards the dealer's hand and any unturned hole card.
func (d *Dealer) Clear() {
	d.hand.Clear()
	d.hole = nil
}
