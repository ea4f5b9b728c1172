package strategy

import "github.com/lox/blackjack-cli/internal/game"

// playerSig identifies the player side of a deviation key: the hand total,
// or tenPair for a 20 made from a pair of ten-value cards.
type playerSig int8

const tenPair playerSig = -1

// dealerSig is the dealer's up-card value bucket: 2..9 literal, ten, ace.
type dealerSig int8

const (
	ten dealerSig = 10
	ace dealerSig = 11
)

type sig struct {
	player playerSig
	dealer dealerSig
}

// deviation is one count-triggered departure from basic strategy. above
// applies when the true count meets the threshold, subject to the same
// eligibility checks basic strategy applies; below applies otherwise.
type deviation struct {
	threshold float64
	above     Action
	below     Action

	// belowBasic falls back to the basic-strategy table instead of
	// below. Used by the surrender deviations.
	belowBasic bool
}

// deviations holds the Illustrious 18 standing/doubling/splitting triggers
// and the Fab 4 surrender triggers. The insurance trigger and the 15-vs-ten
// trigger have their own rules and are checked separately.
var deviations = map[sig]deviation{
	{16, ten}: {threshold: 0, above: Stand, below: Hit},
	{tenPair, 5}: {threshold: 5, above: Split, below: Stand},
	{tenPair, 6}: {threshold: 4, above: Split, below: Stand},
	{10, ten}: {threshold: 4, above: Double, below: Hit},
	{12, 3}:   {threshold: 2, above: Stand, below: Hit},
	{12, 2}:   {threshold: 3, above: Stand, below: Hit},
	{11, ace}: {threshold: 1, above: Double, below: Hit},
	{9, 2}:    {threshold: 1, above: Double, below: Hit},
	{10, ace}: {threshold: 4, above: Double, below: Hit},
	{9, 7}:    {threshold: 3, above: Double, below: Hit},
	{16, 9}:   {threshold: 5, above: Stand, below: Hit},
	{13, 2}:   {threshold: -1, above: Stand, below: Hit},
	{12, 4}:   {threshold: 0, above: Stand, below: Hit},
	{12, 5}:   {threshold: -2, above: Stand, below: Hit},
	{12, 6}:   {threshold: -1, above: Stand, below: Hit},
	{13, 3}:   {threshold: -2, above: Stand, below: Hit},

	{14, ten}: {threshold: 3, above: Surrender, belowBasic: true},
	{15, 9}:   {threshold: 2, above: Surrender, belowBasic: true},
	{15, ace}: {threshold: 1, above: Surrender, belowBasic: true},
}

// handSig builds the deviation key for a player hand against the dealer's
// visible card.
func handSig(hand *game.PlayerHand, dealer *game.Hand) sig {
	player := playerSig(hand.Value())
	if hand.Value() == 20 && hand.Card(0).Value() == 10 {
		player = tenPair
	}
	return sig{player: player, dealer: dealerSig(dealer.Value())}
}

// HiLoAction recommends a play from the Hi-Lo deviation strategy, falling
// back to basic strategy when no deviation is keyed to the hand.
func HiLoAction(trueCount float64, hand *game.PlayerHand, dealer *game.Hand) Action {
	// Insurance outranks everything: dealer shows an ace, the count is
	// hot, and the hand is still untouched.
	if dealer.Aces() == 1 && trueCount >= 3 && canSurrender(hand) {
		return Insurance
	}

	key := handSig(hand, dealer)

	// 15 against a ten surrenders in the neutral band, stands when the
	// count is high, and hits when it is negative.
	if key == (sig{15, ten}) {
		switch {
		case trueCount >= 0 && trueCount <= 3 && canSurrender(hand):
			return Surrender
		case trueCount >= 4:
			return Stand
		default:
			return Hit
		}
	}

	dev, ok := deviations[key]
	if !ok {
		return BasicAction(hand, dealer)
	}

	if trueCount >= dev.threshold {
		if act, ok := restrict(dev, hand); ok {
			return act
		}
	}
	if dev.belowBasic {
		return BasicAction(hand, dealer)
	}
	return dev.below
}

// restrict applies side-rule eligibility to a triggered deviation. It
// reports false when the hand can no longer perform the action, sending the
// caller to the below branch.
func restrict(dev deviation, hand *game.PlayerHand) (Action, bool) {
	switch dev.above {
	case Split, Double:
		return dev.above, canDouble(hand)
	case Surrender:
		return dev.above, canSurrender(hand)
	default:
		return dev.above, true
	}
}
