// Package deck provides the card model and the multi-deck shoe used by the
// blackjack engine.
package deck

import "fmt"

// Suit represents a card suit
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the single-letter representation of a suit
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		if r >= Two && r <= Ten {
			return fmt.Sprintf("%d", int(r))
		}
		return "?"
	}
}

// Value returns the blackjack value of the rank: 2-10 literal, face cards
// are worth 10 and aces start at 11 (the hand reduces them to 1 as needed).
func (r Rank) Value() int {
	switch {
	case r >= Jack && r <= King:
		return 10
	case r == Ace:
		return 11
	default:
		return int(r)
	}
}

// Card represents a playing card. Cards have no identity beyond rank and
// suit; equality is by value.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Value returns the blackjack value of the card
func (c Card) Value() int {
	return c.Rank.Value()
}

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// String returns the token representation of a card (e.g. "10H", "AS")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// ParseCard decodes a card token such as "10H" or "AS". The rank token comes
// first ("2".."10", "J", "Q", "K", "A") followed by the suit letter.
func ParseCard(token string) (Card, error) {
	if len(token) < 2 || len(token) > 3 {
		return Card{}, fmt.Errorf("invalid card token %q", token)
	}

	rankToken := token[:len(token)-1]
	suitToken := token[len(token)-1]

	var rank Rank
	switch rankToken {
	case "2":
		rank = Two
	case "3":
		rank = Three
	case "4":
		rank = Four
	case "5":
		rank = Five
	case "6":
		rank = Six
	case "7":
		rank = Seven
	case "8":
		rank = Eight
	case "9":
		rank = Nine
	case "10":
		rank = Ten
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "A":
		rank = Ace
	default:
		return Card{}, fmt.Errorf("invalid rank %q in card token %q", rankToken, token)
	}

	var suit Suit
	switch suitToken {
	case 'C':
		suit = Clubs
	case 'D':
		suit = Diamonds
	case 'H':
		suit = Hearts
	case 'S':
		suit = Spades
	default:
		return Card{}, fmt.Errorf("invalid suit %q in card token %q", string(suitToken), token)
	}

	return Card{Rank: rank, Suit: suit}, nil
}
