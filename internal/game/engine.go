package game

import (
	"errors"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/lox/blackjack-cli/internal/statistics"
)

// Options configures a game engine. Source is the only required field;
// everything else has a sensible default.
type Options struct {
	MinBet           int
	MaxBet           int
	StartingBalance  float64
	ShoeDecks        int
	ReshufflePercent int

	// MaxReshuffles stops the session after this many reshuffles.
	// Zero means no limit.
	MaxReshuffles int

	Source   CommandSource
	Advisor  Advisor
	Observer Observer
	Logger   *log.Logger

	// Shoe overrides the freshly shuffled shoe, for replays and tests.
	Shoe *deck.Shoe
	Rng  *rand.Rand
}

// Engine is the blackjack state machine. It owns the shoe, dealer, player
// and statistics exclusively; everything outside sees read-only Views.
type Engine struct {
	opts   Options
	logger *log.Logger
	obs    Observer
	src    CommandSource
	adv    Advisor

	shoe   *deck.Shoe
	stats  *statistics.Statistics
	player *Player
	dealer Dealer

	phase       Phase
	handIdx     int
	sideRules   bool
	handDone    bool
	dealerPlays bool
	over        bool
	reshuffles  int
}

// New creates an engine ready to play its first round.
func New(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Observer == nil {
		opts.Observer = Discard
	}

	shoe := opts.Shoe
	if shoe == nil {
		shoe = deck.NewShoe(opts.ShoeDecks, opts.Rng)
		shoe.Shuffle()
	}

	return &Engine{
		opts:   opts,
		logger: opts.Logger,
		obs:    opts.Observer,
		src:    opts.Source,
		adv:    opts.Advisor,
		shoe:   shoe,
		stats:  statistics.New(opts.StartingBalance, shoe.Decks()),
		player: NewPlayer(opts.StartingBalance),
		phase:  Betting,
	}
}

// Player returns the player state.
func (e *Engine) Player() *Player { return e.player }

// Stats returns the session statistics.
func (e *Engine) Stats() *statistics.Statistics { return e.stats }

// Reshuffles returns the number of reshuffles performed so far.
func (e *Engine) Reshuffles() int { return e.reshuffles }

// Over reports whether the session has been ended by a quit command.
func (e *Engine) Over() bool { return e.over }

// view assembles the read-only state handed to the command source and
// advisor for the current decision point.
func (e *Engine) view() View {
	v := View{
		Phase:     e.phase,
		DealerUp:  e.dealer.Hand(),
		MinBet:    e.opts.MinBet,
		MaxBet:    e.opts.MaxBet,
		LastBet:   e.player.Bet,
		Balance:   e.player.Balance,
		SideRules: e.sideRules,
		Stats:     e.stats.Counts(),
	}
	if e.phase == Acting && e.handIdx < e.player.NumHands() {
		v.Hand = e.player.Hand(e.handIdx)
	}
	return v
}

// drawCounted takes the next card from the shoe and feeds it into the
// running counts. Every draw is counted except the dealer's hole card.
func (e *Engine) drawCounted() (deck.Card, error) {
	card, err := e.shoe.Draw()
	if err != nil {
		return deck.Card{}, err
	}
	e.stats.CountCard(card)
	return card, nil
}

// PlaySession plays rounds until the player quits, runs out of money, the
// command source is exhausted, or the reshuffle limit is reached.
func (e *Engine) PlaySession() error {
	for !e.over {
		if e.player.Balance <= float64(e.opts.MinBet) {
			e.obs.Statusf("You don't have enough balance to continue playing.")
			e.logger.Info("session over: balance below minimum bet", "balance", e.player.Balance)
			return nil
		}
		if e.opts.MaxReshuffles > 0 && e.reshuffles >= e.opts.MaxReshuffles {
			e.logger.Info("session over: reshuffle limit reached", "reshuffles", e.reshuffles)
			return nil
		}

		err := e.PlayRound()
		if errors.Is(err, io.EOF) {
			// The command source has no more input. Treated as a
			// graceful end of session rather than an error.
			e.logger.Debug("command source exhausted")
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// PlayRound runs exactly one round: betting, dealing, acting on each player
// hand, the dealer's turn, settlement, and cleanup.
func (e *Engine) PlayRound() error {
	e.phase = Betting
	e.dealerPlays = false

	// Betting and dealing each loop until their phase-advancing command
	// lands. Illegal commands are reported and retried.
	for e.phase == Betting && !e.over {
		if err := e.nextCommand(0); err != nil {
			return err
		}
	}
	if e.over {
		return nil
	}
	for e.phase == Dealing {
		if err := e.nextCommand(0); err != nil {
			return err
		}
	}

	// Acting loops once per hand, including hands created mid-loop by a
	// split.
	for e.handIdx = 0; e.handIdx < e.player.NumHands(); e.handIdx++ {
		e.sideRules = true
		e.handDone = false
		for !e.handDone {
			hand := e.player.Hand(e.handIdx)
			e.obs.Statusf("Player's hand: %s (%d)", hand, hand.Value())
			if err := e.nextCommand(e.handIdx); err != nil {
				return err
			}
		}
	}

	if e.dealerPlays {
		if err := e.dealerTurn(); err != nil {
			return err
		}
	}

	e.settle()
	e.stats.RecordRound()

	e.player.ClearHands()
	e.dealer.Clear()
	e.handIdx = 0

	return e.maybeReshuffle()
}

// nextCommand asks the source for one command and executes it. Illegal
// commands are reported to the observer and swallowed; the caller's phase
// loop retries.
func (e *Engine) nextCommand(handIdx int) error {
	cmd, err := e.src.NextCommand(e.view())
	if err != nil {
		return err
	}

	e.logger.Debug("command", "cmd", cmd, "phase", e.phase, "hand", handIdx)

	if err := e.Execute(cmd, handIdx); err != nil {
		if errors.Is(err, ErrIllegalCommand) {
			e.obs.Statusf("%s", err)
			return nil
		}
		return err
	}
	return nil
}

// dealerTurn reveals the hole card and draws until the dealer reaches 17.
// The hole card joins the running counts only now.
func (e *Engine) dealerTurn() error {
	if card, ok := e.dealer.TurnHoleCard(); ok {
		e.stats.CountCard(card)
	}
	e.showDealer()

	for e.dealer.Hand().Value() < 17 {
		card, err := e.drawCounted()
		if err != nil {
			return err
		}
		e.dealer.AddCard(card)
		e.obs.Statusf("Dealer hits.")
		e.showDealer()
	}
	return nil
}

func (e *Engine) showDealer() {
	hand := e.dealer.Hand()
	e.obs.Statusf("Dealer's hand: %s (%d)", hand, hand.Value())
}

// maybeReshuffle swaps in a fresh shuffled shoe and resets the counting
// statistics once the played fraction of the shoe crosses the threshold.
func (e *Engine) maybeReshuffle() error {
	capacity := e.shoe.Decks() * deck.DeckSize
	played := float64(e.stats.CardsPlayed()) / float64(capacity) * 100
	if played < float64(e.opts.ReshufflePercent) {
		return nil
	}

	e.logger.Info("reshuffling shoe", "cards_played", e.stats.CardsPlayed(), "percent", played)
	e.obs.Statusf("Shuffling the shoe.")

	fresh := deck.NewShoe(e.shoe.Decks(), e.opts.Rng)
	fresh.Shuffle()
	e.shoe = fresh
	e.stats.ResetCounts()
	e.reshuffles++
	return nil
}
