// Package statistics tracks card-counting state and session tallies for a
// blackjack game. Counting fields reset on reshuffle; tallies persist for
// the lifetime of the session.
package statistics

import (
	"math"

	"github.com/lox/blackjack-cli/internal/deck"
)

// Statistics tracks the running Hi-Lo count, the Ace-Five count, and
// win/loss/push tallies for a game session.
type Statistics struct {
	initialBalance float64
	shoeDecks      int

	cardsPlayed  int
	runningCount int
	trueCount    float64
	aceFiveCount int

	wins             int
	losses           int
	pushes           int
	playerBlackjacks int
	dealerBlackjacks int
	handsPlayed      int
	gamesPlayed      int
}

// Snapshot is an immutable copy of the counting state handed to strategy
// code, which must not retain references into the live statistics.
type Snapshot struct {
	RunningCount int
	TrueCount    float64
	AceFiveCount int
	CardsPlayed  int
}

// New creates statistics for a session with the given starting balance and
// shoe size in decks.
func New(initialBalance float64, shoeDecks int) *Statistics {
	return &Statistics{
		initialBalance: initialBalance,
		shoeDecks:      shoeDecks,
	}
}

// SetShoeDecks updates the shoe size used for decks-remaining estimates.
func (s *Statistics) SetShoeDecks(decks int) {
	s.shoeDecks = decks
}

// CountCard records a card becoming visible: it bumps cards-played, applies
// the Hi-Lo and Ace-Five tags, and recomputes the true count. The dealer's
// hole card is not counted until it is turned.
func (s *Statistics) CountCard(c deck.Card) {
	s.cardsPlayed++
	s.runningCount += HiLoTag(c)
	s.aceFiveCount += AceFiveTag(c)
	s.recomputeTrueCount()
}

// recomputeTrueCount divides the running count by the estimated decks
// remaining, rounded up from cards remaining. Decks remaining floors at 1
// so an exhausted shoe never divides by zero.
func (s *Statistics) recomputeTrueCount() {
	cardsRemaining := s.shoeDecks*deck.DeckSize - s.cardsPlayed
	decksRemaining := int(math.Ceil(float64(cardsRemaining) / float64(deck.DeckSize)))
	if decksRemaining < 1 {
		decksRemaining = 1
	}
	s.trueCount = float64(s.runningCount) / float64(decksRemaining)
}

// ResetCounts zeroes the counting fields after a reshuffle. Tallies are
// left intact.
func (s *Statistics) ResetCounts() {
	s.runningCount = 0
	s.trueCount = 0
	s.aceFiveCount = 0
	s.cardsPlayed = 0
}

// RecordWin tallies a won hand. natural marks a win by blackjack.
func (s *Statistics) RecordWin(natural bool) {
	s.wins++
	if natural {
		s.playerBlackjacks++
	}
	s.handsPlayed++
}

// RecordLoss tallies a lost hand. dealerNatural marks a loss to a dealer
// blackjack.
func (s *Statistics) RecordLoss(dealerNatural bool) {
	s.losses++
	if dealerNatural {
		s.dealerBlackjacks++
	}
	s.handsPlayed++
}

// RecordPush tallies a pushed hand. bothNatural marks a blackjack-vs-
// blackjack push, which counts toward both blackjack tallies.
func (s *Statistics) RecordPush(bothNatural bool) {
	s.pushes++
	if bothNatural {
		s.playerBlackjacks++
		s.dealerBlackjacks++
	}
	s.handsPlayed++
}

// RecordRound tallies a completed round.
func (s *Statistics) RecordRound() {
	s.gamesPlayed++
}

// Counts returns a snapshot of the counting state.
func (s *Statistics) Counts() Snapshot {
	return Snapshot{
		RunningCount: s.runningCount,
		TrueCount:    s.trueCount,
		AceFiveCount: s.aceFiveCount,
		CardsPlayed:  s.cardsPlayed,
	}
}

// InitialBalance returns the balance the session started with.
func (s *Statistics) InitialBalance() float64 { return s.initialBalance }

// CardsPlayed returns the number of cards counted since the last reshuffle.
func (s *Statistics) CardsPlayed() int { return s.cardsPlayed }

// RunningCount returns the current Hi-Lo running count.
func (s *Statistics) RunningCount() int { return s.runningCount }

// TrueCount returns the running count normalised by decks remaining.
func (s *Statistics) TrueCount() float64 { return s.trueCount }

// AceFiveCount returns the current Ace-Five count.
func (s *Statistics) AceFiveCount() int { return s.aceFiveCount }

// Wins returns the number of hands won.
func (s *Statistics) Wins() int { return s.wins }

// Losses returns the number of hands lost.
func (s *Statistics) Losses() int { return s.losses }

// Pushes returns the number of hands pushed.
func (s *Statistics) Pushes() int { return s.pushes }

// PlayerBlackjacks returns the number of player naturals observed.
func (s *Statistics) PlayerBlackjacks() int { return s.playerBlackjacks }

// DealerBlackjacks returns the number of dealer naturals observed.
func (s *Statistics) DealerBlackjacks() int { return s.dealerBlackjacks }

// HandsPlayed returns the number of settled hands.
func (s *Statistics) HandsPlayed() int { return s.handsPlayed }

// GamesPlayed returns the number of completed rounds.
func (s *Statistics) GamesPlayed() int { return s.gamesPlayed }
