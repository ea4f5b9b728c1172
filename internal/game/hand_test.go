package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack-cli/internal/deck"
)

func card(t *testing.T, token string) deck.Card {
	t.Helper()
	c, err := deck.ParseCard(token)
	require.NoError(t, err)
	return c
}

func makeHand(t *testing.T, tokens ...string) *Hand {
	t.Helper()
	h := &Hand{}
	for _, tok := range tokens {
		h.Add(card(t, tok))
	}
	return h
}

func TestSoftAceReduction(t *testing.T) {
	// Two aces and a nine: one ace demotes to 1, the other stays soft.
	h := makeHand(t, "AC", "AS", "9H")
	assert.Equal(t, 21, h.Value())
	assert.Equal(t, 2, h.Aces())
	assert.Equal(t, 1, h.SoftAces())

	// Three aces and a nine: only one ace can stay at 11.
	h = makeHand(t, "AC", "AS", "AD", "9H")
	assert.Equal(t, 12, h.Value())
	assert.Equal(t, 1, h.SoftAces())
}

func TestValueIdempotent(t *testing.T) {
	h := makeHand(t, "AC", "7D", "5S")
	assert.Equal(t, 13, h.Value())
	assert.Equal(t, h.Value(), h.Value())

	h.RemoveLast()
	assert.Equal(t, 18, h.Value())
	assert.Equal(t, 1, h.SoftAces())
}

func TestIsSoft(t *testing.T) {
	assert.True(t, makeHand(t, "AC", "6D").IsSoft())
	// The ace has been demoted to 1, so the hand is hard.
	assert.False(t, makeHand(t, "AC", "6D", "9H").IsSoft())
	assert.False(t, makeHand(t, "10C", "6D").IsSoft())
}

func TestIsBlackjack(t *testing.T) {
	assert.True(t, makeHand(t, "AC", "KD").IsBlackjack())
	assert.False(t, makeHand(t, "7C", "8D", "6H").IsBlackjack(), "three-card 21 is not a natural")
	assert.False(t, makeHand(t, "10C", "9D").IsBlackjack())
}

func TestIsBust(t *testing.T) {
	assert.False(t, makeHand(t, "10C", "6D", "5H").IsBust())
	assert.True(t, makeHand(t, "10C", "6D", "6H").IsBust())
}

func TestCanSplit(t *testing.T) {
	ph := &PlayerHand{}
	ph.Add(card(t, "10C"))
	ph.Add(card(t, "10S"))
	assert.True(t, ph.CanSplit())

	// Equal value, not equal rank, still splits.
	ph = &PlayerHand{}
	ph.Add(card(t, "10C"))
	ph.Add(card(t, "KS"))
	assert.True(t, ph.CanSplit())

	ph = &PlayerHand{}
	ph.Add(card(t, "10C"))
	ph.Add(card(t, "9S"))
	assert.False(t, ph.CanSplit())

	ph = &PlayerHand{}
	ph.Add(card(t, "3C"))
	ph.Add(card(t, "3S"))
	ph.Add(card(t, "3D"))
	assert.False(t, ph.CanSplit(), "three-card hands never split")
}

func TestSplitHand(t *testing.T) {
	p := NewPlayer(100)
	hand := p.NewHand()
	hand.Add(card(t, "8C"))
	hand.Add(card(t, "8S"))

	fresh := p.SplitHand(0)

	assert.Equal(t, 2, p.NumHands())
	assert.True(t, hand.Split)
	assert.True(t, fresh.Split)
	assert.Equal(t, 1, hand.Len())
	assert.Equal(t, 1, fresh.Len())
	assert.Equal(t, card(t, "8S"), fresh.Card(0))
}

func TestDealerHoleCard(t *testing.T) {
	d := &Dealer{}
	d.AddCard(card(t, "6H"))
	d.SetHoleCard(card(t, "10S"))

	// Hidden card contributes nothing until turned.
	assert.Equal(t, 6, d.Hand().Value())

	turned, ok := d.TurnHoleCard()
	require.True(t, ok)
	assert.Equal(t, card(t, "10S"), turned)
	assert.Equal(t, 16, d.Hand().Value())

	_, ok = d.TurnHoleCard()
	assert.False(t, ok, "hole card turns at most once per round")
}
