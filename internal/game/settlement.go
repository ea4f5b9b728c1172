package game

// settle resolves every player hand against the dealer, pays out, and
// records the tallies.
func (e *Engine) settle() {
	for _, hand := range e.player.Hands() {
		result := e.resolveHand(hand)
		returns := e.payoff(hand, result)
		e.player.Balance += returns

		e.logger.Debug("hand settled",
			"result", result, "returns", returns, "balance", e.player.Balance)
		e.obs.Statusf("Player's current balance is %v", e.player.Balance)

		switch result {
		case WinBlackjack:
			e.stats.RecordWin(true)
		case Win:
			e.stats.RecordWin(false)
		case LoseBlackjack:
			e.stats.RecordLoss(true)
		case Lose:
			e.stats.RecordLoss(false)
		case PushBlackjack:
			e.stats.RecordPush(true)
		case Push:
			e.stats.RecordPush(false)
		}
	}
}

// resolveHand compares one player hand to the dealer's. Surrender and busts
// settle before totals are compared; equal totals fall through to the
// blackjack-parity tie-breaks.
func (e *Engine) resolveHand(hand *PlayerHand) Result {
	dealer := e.dealer.Hand()
	ps := hand.Value()
	ds := dealer.Value()

	switch {
	case hand.Surrender:
		e.obs.Statusf("Player has surrendered!")
		return Lose

	case ps > 21:
		e.obs.Statusf("Player has busted! You LOSE.")
		return Lose

	case ds > 21:
		if hand.IsBlackjack() {
			e.obs.Statusf("Dealer has busted! You WIN by blackjack!")
			return WinBlackjack
		}
		e.obs.Statusf("Dealer has busted! You WIN!")
		return Win

	case ps > ds:
		if hand.IsBlackjack() {
			e.obs.Statusf("Player's hand beats the dealer's. You WIN by blackjack!")
			return WinBlackjack
		}
		e.obs.Statusf("Player's hand beats the dealer's. You WIN!")
		return Win

	case ds > ps:
		if dealer.IsBlackjack() {
			e.obs.Statusf("Dealer's hand beats the player's. You LOSE by blackjack.")
			return LoseBlackjack
		}
		e.obs.Statusf("Dealer's hand beats the player's. You LOSE.")
		return Lose

	default: // equal totals
		pbj, dbj := hand.IsBlackjack(), dealer.IsBlackjack()
		switch {
		case pbj && !dbj:
			e.obs.Statusf("Player's blackjack beats the dealer's 21. You WIN by blackjack!")
			return WinBlackjack
		case pbj && dbj:
			e.obs.Statusf("Both hands are blackjack. You PUSH.")
			return PushBlackjack
		case dbj:
			e.obs.Statusf("Dealer's blackjack beats the player's 21. You LOSE by blackjack.")
			return LoseBlackjack
		default:
			e.obs.Statusf("Player's hand matches the dealer's. You PUSH.")
			return Push
		}
	}
}

// payoff computes the total payback for one settled hand. The stake was
// deducted at bet time, so returns include it where the hand did not lose.
// Insurance pays on top of the main outcome; surrender replaces it.
func (e *Engine) payoff(hand *PlayerHand, result Result) float64 {
	effectiveBet := float64(e.player.Bet)
	if hand.Doubled {
		effectiveBet *= 2
	}

	var returns float64
	if hand.Insurance && e.dealer.Hand().IsBlackjack() {
		returns += 2 * effectiveBet
	}

	if hand.Surrender {
		return 0.5 * effectiveBet
	}

	switch result {
	case WinBlackjack:
		// A natural pays 3:2; a two-card 21 assembled after a split
		// pays even money.
		if hand.Split {
			returns += 2 * effectiveBet
		} else {
			returns += 2.5 * effectiveBet
		}
	case Win:
		returns += 2 * effectiveBet
	case Lose, LoseBlackjack:
		// Stake is gone.
	default:
		returns += effectiveBet
	}
	return returns
}
