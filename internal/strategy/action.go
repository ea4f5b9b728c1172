// Package strategy implements the three card-counting strategies: the
// static basic-strategy tables, the Hi-Lo deviation strategy layered on top
// of them, and the Ace-Five bet-sizing strategy.
package strategy

// Action is a recommended play, convertible to the engine's command grammar.
type Action int

const (
	Hit Action = iota
	Stand
	Split
	Double
	Insurance
	Surrender
)

var actionCommands = map[Action]string{
	Hit:       "h",
	Stand:     "s",
	Split:     "p",
	Double:    "2",
	Insurance: "i",
	Surrender: "u",
}

// Command returns the action in the engine's command grammar.
func (a Action) Command() string {
	return actionCommands[a]
}

func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	case Split:
		return "split"
	case Double:
		return "double"
	case Insurance:
		return "insurance"
	case Surrender:
		return "surrender"
	default:
		return "unknown"
	}
}

// Mode selects which strategies drive an auto-player.
type Mode string

const (
	// BasicStrategy plays basic strategy with flat minimum bets.
	BasicStrategy Mode = "BS"
	// BasicAceFive plays basic strategy with Ace-Five bet sizing.
	BasicAceFive Mode = "BS-AF"
	// HiLoStrategy plays Hi-Lo deviations with flat minimum bets.
	HiLoStrategy Mode = "HL"
	// HiLoAceFive plays Hi-Lo deviations with Ace-Five bet sizing.
	HiLoAceFive Mode = "HL-AF"
)

// Valid reports whether the mode is one of the four supported values.
func (m Mode) Valid() bool {
	switch m {
	case BasicStrategy, BasicAceFive, HiLoStrategy, HiLoAceFive:
		return true
	}
	return false
}

// UsesHiLo reports whether playing decisions come from the Hi-Lo strategy.
func (m Mode) UsesHiLo() bool { return m == HiLoStrategy || m == HiLoAceFive }

// UsesAceFive reports whether bet sizing comes from the Ace-Five strategy.
func (m Mode) UsesAceFive() bool { return m == BasicAceFive || m == HiLoAceFive }
