package game

// Observer receives the human-readable status lines the engine emits as the
// round progresses: deals, hits, results, balances. The interactive terminal
// renders them; the simulator discards them.
type Observer interface {
	Statusf(format string, args ...interface{})
}

type discardObserver struct{}

func (discardObserver) Statusf(string, ...interface{}) {}

// Discard is an Observer that drops every status line.
var Discard Observer = discardObserver{}
