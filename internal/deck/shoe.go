package deck

import (
	"errors"
	rand "math/rand/v2"
)

// DeckSize is the number of cards in one standard deck.
const DeckSize = 52

// ErrEmptyShoe is returned when a draw is attempted with no cards remaining.
// Reshuffle timing should prevent this during normal play, so hitting it
// signals a reshuffle-threshold bug rather than a recoverable condition.
var ErrEmptyShoe = errors.New("shoe is empty")

// Shoe is an ordered sequence of cards pooled from one or more standard
// decks. Cards are drawn from the front; a shoe is replaced wholesale on
// reshuffle, never refilled.
type Shoe struct {
	cards []Card
	next  int
	decks int
	rng   *rand.Rand
}

// NewShoe builds a shoe from the given number of complete 52-card decks in
// fixed suit-then-rank enumeration order. Callers shuffle before play.
func NewShoe(decks int, rng *rand.Rand) *Shoe {
	cards := make([]Card, 0, decks*DeckSize)
	for d := 0; d < decks; d++ {
		for suit := Clubs; suit <= Spades; suit++ {
			for rank := Two; rank <= Ace; rank++ {
				cards = append(cards, NewCard(rank, suit))
			}
		}
	}
	return &Shoe{cards: cards, decks: decks, rng: rng}
}

// NewLoadedShoe builds a shoe from an explicit card sequence, drawn in the
// order given. Used by replay mode where the shoe comes from a file.
func NewLoadedShoe(cards []Card) *Shoe {
	copied := make([]Card, len(cards))
	copy(copied, cards)
	decks := (len(cards) + DeckSize - 1) / DeckSize
	if decks == 0 {
		decks = 1
	}
	return &Shoe{cards: copied, decks: decks}
}

// Shuffle produces a uniformly random permutation of the remaining contents
// using Fisher-Yates.
func (s *Shoe) Shuffle() {
	remaining := s.cards[s.next:]
	for i := len(remaining) - 1; i > 0; i-- {
		var j int
		if s.rng != nil {
			j = s.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		remaining[i], remaining[j] = remaining[j], remaining[i]
	}
}

// Draw removes and returns the card at the front of the shoe.
func (s *Shoe) Draw() (Card, error) {
	if s.next >= len(s.cards) {
		return Card{}, ErrEmptyShoe
	}
	card := s.cards[s.next]
	s.next++
	return card, nil
}

// Remaining returns the number of cards left in the shoe
func (s *Shoe) Remaining() int {
	return len(s.cards) - s.next
}

// Decks returns the number of complete decks the shoe was built from
func (s *Shoe) Decks() int {
	return s.decks
}
