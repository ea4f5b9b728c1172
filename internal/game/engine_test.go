package game

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack-cli/internal/deck"
)

// script feeds a fixed command sequence, then io.EOF.
type script struct {
	cmds []string
}

func (s *script) NextCommand(View) (string, error) {
	if len(s.cmds) == 0 {
		return "", io.EOF
	}
	cmd := s.cmds[0]
	s.cmds = s.cmds[1:]
	return cmd, nil
}

func loadedShoe(t *testing.T, tokens ...string) *deck.Shoe {
	t.Helper()
	cards := make([]deck.Card, len(tokens))
	for i, tok := range tokens {
		cards[i] = card(t, tok)
	}
	return deck.NewLoadedShoe(cards)
}

func newTestEngine(t *testing.T, shoe *deck.Shoe, cmds ...string) *Engine {
	t.Helper()
	return New(Options{
		MinBet:           5,
		MaxBet:           100,
		StartingBalance:  100,
		ShoeDecks:        1,
		ReshufflePercent: 50,
		Source:           &script{cmds: cmds},
		Shoe:             shoe,
	})
}

func TestRoundPlayerBusts(t *testing.T) {
	// Dealer shows 6 with a hidden 10; player holds 5,6 and hits twice.
	shoe := loadedShoe(t, "6H", "10S", "5C", "6D", "10H", "9C")
	e := newTestEngine(t, shoe, "b 10", "d", "h", "h")

	require.NoError(t, e.PlayRound())

	// First hit reaches 21 without busting; the second busts at 30. The
	// dealer never plays, so the hole card is never counted.
	assert.Equal(t, 90.0, e.Player().Balance)
	assert.Equal(t, 1, e.Stats().Losses())
	assert.Equal(t, 0, e.Stats().Wins())
	assert.Equal(t, 5, e.Stats().CardsPlayed())
}

func TestRoundPlayerBlackjack(t *testing.T) {
	shoe := loadedShoe(t, "5H", "9S", "AC", "KD", "10C")
	e := newTestEngine(t, shoe, "b 10", "d", "s")

	require.NoError(t, e.PlayRound())

	// Natural pays 3:2: stake back plus 15.
	assert.Equal(t, 115.0, e.Player().Balance)
	assert.Equal(t, 1, e.Stats().Wins())
	assert.Equal(t, 1, e.Stats().PlayerBlackjacks())
}

func TestRoundSplit(t *testing.T) {
	shoe := loadedShoe(t, "9H", "7S", "8C", "8S", "10C", "3D", "10D", "5C")
	e := newTestEngine(t, shoe, "b 10", "d", "p", "s", "h", "s")

	require.NoError(t, e.PlayRound())

	// First hand stands at 18 and loses to the dealer's 21; second hand
	// hits to 21 and pushes. Both bets were staked: 100-10-10+0+10.
	assert.Equal(t, 90.0, e.Player().Balance)
	assert.Equal(t, 1, e.Stats().Losses())
	assert.Equal(t, 1, e.Stats().Pushes())
	assert.Equal(t, 2, e.Stats().HandsPlayed())
}

func TestRoundSurrender(t *testing.T) {
	shoe := loadedShoe(t, "10H", "9S", "10C", "6D")
	e := newTestEngine(t, shoe, "b 10", "d", "u")

	require.NoError(t, e.PlayRound())

	// Half the stake comes back and the dealer never plays.
	assert.Equal(t, 95.0, e.Player().Balance)
	assert.Equal(t, 1, e.Stats().Losses())
}

func TestBetValidation(t *testing.T) {
	shoe := loadedShoe(t, "6H", "10S", "5C", "6D")
	e := newTestEngine(t, shoe, "b 3", "b 1000", "b nonsense", "b 10")

	// The three bad bets are rejected without touching the balance, the
	// fourth lands, then the script runs out mid-deal.
	err := e.PlayRound()
	require.ErrorIs(t, err, io.EOF)

	assert.Equal(t, 90.0, e.Player().Balance)
	assert.Equal(t, 10, e.Player().Bet)
	assert.Equal(t, Dealing, e.phase)
}

func TestBareBetRepeatsPrevious(t *testing.T) {
	e := newTestEngine(t, loadedShoe(t))

	// First bare bet falls back to the table minimum.
	e.phase = Betting
	require.NoError(t, e.Execute("b", 0))
	assert.Equal(t, 5, e.player.Bet)

	e.phase = Betting
	e.player.Bet = 20
	require.NoError(t, e.Execute("b", 0))
	assert.Equal(t, 20, e.player.Bet)
}

func TestInsuranceRejectedWithoutDealerAce(t *testing.T) {
	shoe := loadedShoe(t, "6H", "10S", "5C", "6D", "5H")
	e := newTestEngine(t, shoe, "b 10", "d", "i", "s")

	require.NoError(t, e.PlayRound())

	// Insurance against a 6 up-card is rejected and the round continues.
	assert.Equal(t, 1, e.Stats().Losses())
	assert.Equal(t, 90.0, e.Player().Balance)
}

func TestInsuranceAgainstDealerBlackjack(t *testing.T) {
	// Dealer shows an ace over a hidden king; the player insures, then
	// stands on 12. Insurance pays 2x the bet on top of the lost hand.
	shoe := loadedShoe(t, "AH", "KS", "10C", "2D")
	e := newTestEngine(t, shoe, "b 10", "d", "i", "s")

	require.NoError(t, e.PlayRound())

	assert.Equal(t, 110.0, e.Player().Balance)
	assert.Equal(t, 1, e.Stats().Losses())
	assert.Equal(t, 1, e.Stats().DealerBlackjacks())
}

func TestDoubleDown(t *testing.T) {
	// Player doubles 5+6, draws a 10 for 21; dealer stands on 20.
	shoe := loadedShoe(t, "10H", "10S", "5C", "6D", "10D")
	e := newTestEngine(t, shoe, "b 10", "d", "2")

	require.NoError(t, e.PlayRound())

	// Stake 20 total, returns 2x20.
	assert.Equal(t, 120.0, e.Player().Balance)
	assert.Equal(t, 1, e.Stats().Wins())
}

func TestDoubleRequiresBalance(t *testing.T) {
	shoe := loadedShoe(t, "10H", "10S", "5C", "6D", "2H", "9D")
	e := newTestEngine(t, shoe, "b 10", "d", "2", "s")
	e.player.Balance = 15

	require.NoError(t, e.PlayRound())

	// The double is rejected for insufficient balance; the stand plays
	// the hand out normally against the dealer's 20.
	assert.Equal(t, 0, e.Stats().Wins())
	assert.Equal(t, 1, e.Stats().Losses())
}

func TestQuitEndsSession(t *testing.T) {
	e := newTestEngine(t, loadedShoe(t), "q")

	require.NoError(t, e.PlayRound())
	assert.True(t, e.Over())
}

func TestSessionStopsBelowMinimumBalance(t *testing.T) {
	e := newTestEngine(t, loadedShoe(t))
	e.player.Balance = 5

	require.NoError(t, e.PlaySession())
	assert.Equal(t, 0, e.Stats().GamesPlayed())
}

func TestReshuffleResetsCounts(t *testing.T) {
	e := New(Options{
		MinBet:           5,
		MaxBet:           100,
		StartingBalance:  100,
		ShoeDecks:        1,
		ReshufflePercent: 5,
		Source:           &script{cmds: []string{"b 5", "d", "s"}},
	})

	require.NoError(t, e.PlayRound())

	// A single round counts at least five cards, crossing 5% of a
	// one-deck shoe, so the shoe is replaced and the counts reset.
	assert.Equal(t, 1, e.Reshuffles())
	assert.Equal(t, 0, e.Stats().CardsPlayed())
	assert.Equal(t, 0, e.Stats().RunningCount())
	assert.Equal(t, 0, e.Stats().AceFiveCount())
	assert.Equal(t, 52, e.shoe.Remaining())
	assert.Equal(t, 1, e.Stats().GamesPlayed(), "tallies survive the reshuffle")
}

func TestSettlementOrder(t *testing.T) {
	tests := []struct {
		name   string
		player []string
		dealer []string
		want   Result
	}{
		{"player bust loses even when dealer busts", []string{"10C", "6D", "6H"}, []string{"10S", "6S", "6C"}, Lose},
		{"dealer bust", []string{"10C", "8D"}, []string{"10S", "6S", "6C"}, Win},
		{"dealer bust against natural", []string{"AC", "KD"}, []string{"10S", "6S", "6C"}, WinBlackjack},
		{"higher total wins", []string{"10C", "9D"}, []string{"10S", "8S"}, Win},
		{"lower total loses", []string{"10C", "7D"}, []string{"10S", "8S"}, Lose},
		{"dealer natural beats three-card 21", []string{"7C", "7D", "7H"}, []string{"AS", "KS"}, LoseBlackjack},
		{"natural beats three-card 21", []string{"AC", "KD"}, []string{"7S", "7H", "7D"}, WinBlackjack},
		{"both naturals push", []string{"AC", "KD"}, []string{"AS", "KS"}, PushBlackjack},
		{"plain tie pushes", []string{"10C", "8D"}, []string{"10S", "8S"}, Push},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, loadedShoe(t))
			hand := &PlayerHand{}
			for _, tok := range tt.player {
				hand.Add(card(t, tok))
			}
			for _, tok := range tt.dealer {
				e.dealer.AddCard(card(t, tok))
			}
			assert.Equal(t, tt.want, e.resolveHand(hand))
		})
	}
}

func TestPayoff(t *testing.T) {
	e := newTestEngine(t, loadedShoe(t))
	e.player.Bet = 10

	assert.Equal(t, 25.0, e.payoff(&PlayerHand{}, WinBlackjack))
	assert.Equal(t, 20.0, e.payoff(&PlayerHand{Split: true}, WinBlackjack))
	assert.Equal(t, 40.0, e.payoff(&PlayerHand{Doubled: true}, Win))
	assert.Equal(t, 20.0, e.payoff(&PlayerHand{}, Win))
	assert.Equal(t, 0.0, e.payoff(&PlayerHand{}, Lose))
	assert.Equal(t, 10.0, e.payoff(&PlayerHand{}, Push))
	assert.Equal(t, 5.0, e.payoff(&PlayerHand{Surrender: true}, Lose))

	// Insurance pays 2x on a dealer natural, on top of the main result.
	e.dealer.AddCard(card(t, "AS"))
	e.dealer.AddCard(card(t, "KS"))
	assert.Equal(t, 20.0, e.payoff(&PlayerHand{Insurance: true}, LoseBlackjack))
}
