package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrIllegalCommand marks a command rejected for being out of phase,
// ineligible, or malformed. Rejection never mutates state; the engine
// reports the reason and waits for the next command.
var ErrIllegalCommand = errors.New("illegal command")

func illegalf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrIllegalCommand)
}

// Execute applies one command against the hand at handIdx. Commands outside
// their legal phase return ErrIllegalCommand and leave state untouched.
func (e *Engine) Execute(cmd string, handIdx int) error {
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return illegalf("empty command")
	}

	switch fields[0] {
	case "help":
		e.showHelp()
	case "b":
		return e.cmdBet(fields[1:])
	case "$":
		e.obs.Statusf("Player's current balance is %v", e.player.Balance)
	case "d":
		return e.cmdDeal()
	case "h":
		return e.cmdHit(handIdx)
	case "s":
		return e.cmdStand()
	case "i":
		return e.cmdInsurance(handIdx)
	case "u":
		return e.cmdSurrender(handIdx)
	case "p":
		return e.cmdSplit(handIdx)
	case "2":
		return e.cmdDouble(handIdx)
	case "ad":
		e.cmdAdvice()
	case "st":
		e.showStatistics()
	case "q":
		if e.phase != Betting {
			return illegalf("%s", cmd)
		}
		e.obs.Statusf("You decided to stop playing.")
		e.over = true
	default:
		return illegalf("%s: invalid command, type help to see valid commands", cmd)
	}
	return nil
}

func (e *Engine) cmdBet(args []string) error {
	if e.phase != Betting {
		return illegalf("b")
	}

	var bet int
	switch {
	case len(args) == 0:
		// Bare bet repeats the previous amount, or the minimum on the
		// first bet of the session.
		if e.player.Bet == 0 {
			bet = e.opts.MinBet
		} else {
			bet = e.player.Bet
		}
	default:
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return illegalf("b %s", args[0])
		}
		bet = n
	}

	switch {
	case bet < e.opts.MinBet:
		return illegalf("bet of %d is below the minimum bet of %d", bet, e.opts.MinBet)
	case bet > e.opts.MaxBet:
		return illegalf("bet of %d is above the maximum bet of %d", bet, e.opts.MaxBet)
	case float64(bet) > e.player.Balance:
		return illegalf("bet of %d exceeds your balance of %v", bet, e.player.Balance)
	}

	e.player.Bet = bet
	e.player.Balance -= float64(bet)
	e.obs.Statusf("Player is betting %d", bet)
	e.phase = Dealing
	return nil
}

func (e *Engine) cmdDeal() error {
	if e.phase != Dealing {
		return illegalf("d")
	}

	// Dealer's up card counts immediately; the hole card stays out of the
	// counts until it is turned.
	up, err := e.drawCounted()
	if err != nil {
		return err
	}
	e.dealer.AddCard(up)

	hole, err := e.shoe.Draw()
	if err != nil {
		return err
	}
	e.dealer.SetHoleCard(hole)

	hand := e.player.NewHand()
	for i := 0; i < 2; i++ {
		card, err := e.drawCounted()
		if err != nil {
			return err
		}
		hand.Add(card)
	}

	e.showDealer()
	e.phase = Acting
	return nil
}

func (e *Engine) cmdHit(handIdx int) error {
	if e.phase != Acting {
		return illegalf("h")
	}
	e.sideRules = false
	return e.hit(handIdx)
}

// hit draws one card into the hand, announcing a bust and ending the hand's
// turn if it goes over.
func (e *Engine) hit(handIdx int) error {
	card, err := e.drawCounted()
	if err != nil {
		return err
	}

	hand := e.player.Hand(handIdx)
	hand.Add(card)
	e.obs.Statusf("Player hits.")

	if hand.IsBust() {
		e.obs.Statusf("Player's hand: %s (%d)", &hand.Hand, hand.Value())
		e.obs.Statusf("Player busts.")
		e.handDone = true
	}
	return nil
}

func (e *Engine) cmdStand() error {
	if e.phase != Acting {
		return illegalf("s")
	}
	e.sideRules = false
	e.handDone = true
	e.dealerPlays = true
	e.obs.Statusf("Player stands.")
	return nil
}

func (e *Engine) cmdInsurance(handIdx int) error {
	if e.phase != Acting || !e.sideRules {
		return illegalf("i")
	}
	if e.dealer.Hand().Aces() != 1 {
		return illegalf("you can't insure: the dealer is not showing an ace")
	}
	if float64(e.player.Bet) > e.player.Balance {
		return illegalf("you can't insure: not enough balance")
	}

	e.player.Hand(handIdx).Insurance = true
	e.sideRules = false
	e.obs.Statusf("Player takes insurance.")
	return nil
}

func (e *Engine) cmdSurrender(handIdx int) error {
	if e.phase != Acting || !e.sideRules {
		return illegalf("u")
	}

	e.player.Hand(handIdx).Surrender = true
	e.sideRules = false
	e.handDone = true
	e.obs.Statusf("Player surrenders.")
	return nil
}

func (e *Engine) cmdSplit(handIdx int) error {
	if e.phase != Acting || !e.sideRules {
		return illegalf("p")
	}
	hand := e.player.Hand(handIdx)
	if !hand.CanSplit() {
		return illegalf("you can't split this hand")
	}

	// The new hand carries the same bet, deducted now. Each half gets one
	// fresh card and both are played out via the normal acting loop.
	fresh := e.player.SplitHand(handIdx)
	e.player.Balance -= float64(e.player.Bet)

	for _, h := range []*PlayerHand{hand, fresh} {
		card, err := e.drawCounted()
		if err != nil {
			return err
		}
		h.Add(card)
	}

	e.obs.Statusf("Player splits.")
	return nil
}

func (e *Engine) cmdDouble(handIdx int) error {
	if e.phase != Acting || !e.sideRules {
		return illegalf("2")
	}
	if e.player.Balance < 2*float64(e.player.Bet) {
		return illegalf("you can't double your bet: not enough balance")
	}

	e.player.Balance -= float64(e.player.Bet)
	e.player.Hand(handIdx).Doubled = true
	e.obs.Statusf("Player doubles.")

	// One forced hit, then the hand is done whatever the total. The
	// dealer still plays unless the hit busted the hand.
	if err := e.hit(handIdx); err != nil {
		return err
	}
	if !e.player.Hand(handIdx).IsBust() {
		e.dealerPlays = true
	}
	e.handDone = true
	return nil
}

// cmdAdvice asks the advisor for its recommendations and relays them. It
// never mutates game state.
func (e *Engine) cmdAdvice() {
	if e.adv == nil {
		e.obs.Statusf("No advisor is configured.")
		return
	}
	for _, line := range e.adv.Advise(e.view()) {
		e.obs.Statusf("%s", line)
	}
}

func (e *Engine) showStatistics() {
	percent := 100*e.player.Balance/e.stats.InitialBalance() - 100
	e.obs.Statusf("BJ P/D\t%d / %d", e.stats.PlayerBlackjacks(), e.stats.DealerBlackjacks())
	e.obs.Statusf("Win\t%d", e.stats.Wins())
	e.obs.Statusf("Lose\t%d", e.stats.Losses())
	e.obs.Statusf("Push\t%d", e.stats.Pushes())
	e.obs.Statusf("Balance\t%v (%+.1f%%)", e.player.Balance, percent)
}

func (e *Engine) showHelp() {
	lines := []string{
		"Command    Meaning",
		"--------------------------------",
		"b          Bet previous amount",
		"b VALUE    Bet VALUE",
		"$          Show current balance",
		"d          Deal",
		"h          Hit",
		"s          Stand",
		"i          Insurance",
		"u          Surrender",
		"p          Split",
		"2          Double down",
		"ad         Advice",
		"st         Statistics",
		"q          Quit",
	}
	for _, l := range lines {
		e.obs.Statusf("%s", l)
	}
}
