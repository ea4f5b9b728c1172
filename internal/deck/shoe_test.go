package deck

import (
	"testing"

	"github.com/lox/blackjack-cli/internal/randutil"
)

func TestNewShoeSize(t *testing.T) {
	for _, decks := range []int{1, 4, 8} {
		shoe := NewShoe(decks, randutil.New(1))
		if got := shoe.Remaining(); got != decks*DeckSize {
			t.Errorf("NewShoe(%d) remaining = %d, want %d", decks, got, decks*DeckSize)
		}
		if shoe.Decks() != decks {
			t.Errorf("NewShoe(%d).Decks() = %d", decks, shoe.Decks())
		}
	}
}

func TestShoeDrawDecrements(t *testing.T) {
	shoe := NewShoe(1, randutil.New(1))
	shoe.Shuffle()

	seen := make(map[Card]int)
	for i := DeckSize; i > 0; i-- {
		if shoe.Remaining() != i {
			t.Fatalf("remaining = %d, want %d", shoe.Remaining(), i)
		}
		card, err := shoe.Draw()
		if err != nil {
			t.Fatalf("draw %d failed: %v", DeckSize-i, err)
		}
		seen[card]++
	}

	// A single deck must yield each card exactly once.
	if len(seen) != DeckSize {
		t.Errorf("drew %d distinct cards, want %d", len(seen), DeckSize)
	}
	for card, n := range seen {
		if n != 1 {
			t.Errorf("card %v drawn %d times", card, n)
		}
	}

	if _, err := shoe.Draw(); err != ErrEmptyShoe {
		t.Errorf("draw from empty shoe: err = %v, want ErrEmptyShoe", err)
	}
}

func TestShoeShuffleDeterministic(t *testing.T) {
	a := NewShoe(2, randutil.New(42))
	b := NewShoe(2, randutil.New(42))
	a.Shuffle()
	b.Shuffle()

	for a.Remaining() > 0 {
		ca, _ := a.Draw()
		cb, _ := b.Draw()
		if ca != cb {
			t.Fatal("shoes shuffled with the same seed diverged")
		}
	}
}

func TestLoadedShoeDrawsInOrder(t *testing.T) {
	cards := []Card{
		{Rank: Six, Suit: Hearts},
		{Rank: Ten, Suit: Spades},
		{Rank: Five, Suit: Clubs},
	}
	shoe := NewLoadedShoe(cards)

	for i, want := range cards {
		got, err := shoe.Draw()
		if err != nil {
			t.Fatalf("draw %d failed: %v", i, err)
		}
		if got != want {
			t.Errorf("draw %d = %v, want %v", i, got, want)
		}
	}
}
