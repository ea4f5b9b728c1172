package game

// PlayerHand is a hand owned by the player, extended with the side-rule
// flags. Flags default to false and reset only when the hand is cleared at
// round end; Split is the only flag that may be set before the others.
type PlayerHand struct {
	Hand

	Insurance bool
	Surrender bool
	Doubled   bool
	Split     bool
}

// CanSplit reports whether the hand is splittable: exactly two cards of
// equal blackjack value. A 10 and a king split because both are worth ten.
func (ph *PlayerHand) CanSplit() bool {
	return ph.Len() == 2 && ph.Card(0).Value() == ph.Card(1).Value()
}

// Player holds the balance, the current bet, and the ordered list of hands.
// The list starts with one hand at deal time and grows by one per split.
type Player struct {
	Balance float64
	Bet     int

	hands []*PlayerHand
}

// NewPlayer creates a player with a starting balance
func NewPlayer(balance float64) *Player {
	return &Player{Balance: balance}
}

// NewHand appends a fresh empty hand and returns it.
func (p *Player) NewHand() *PlayerHand {
	ph := &PlayerHand{}
	p.hands = append(p.hands, ph)
	return ph
}

// Hand returns the hand at the given index.
func (p *Player) Hand(i int) *PlayerHand { return p.hands[i] }

// NumHands returns the current number of hands.
func (p *Player) NumHands() int { return len(p.hands) }

// Hands returns the live hand list.
func (p *Player) Hands() []*PlayerHand { return p.hands }

// SplitHand moves the last card of hand i into a brand-new hand and marks
// both hands split. The caller deals one fresh card into each and charges
// the extra bet.
func (p *Player) SplitHand(i int) *PlayerHand {
	hand := p.hands[i]
	card := hand.RemoveLast()
	hand.Split = true

	fresh := &PlayerHand{Split: true}
	fresh.Add(card)
	p.hands = append(p.hands, fresh)
	return fresh
}

// ClearHands discards all hands at round end. New hands are created fresh
// at the next deal.
func (p *Player) ClearHands() {
	p.hands = nil
}
