package game

// Result is the settlement outcome of a single player hand.
type Result int

const (
	Win Result = iota
	WinBlackjack
	Lose
	LoseBlackjack
	Push
	PushBlackjack
)

var resultNames = map[Result]string{
	Win:           "win",
	WinBlackjack:  "win by blackjack",
	Lose:          "lose",
	LoseBlackjack: "lose by blackjack",
	Push:          "push",
	PushBlackjack: "push by blackjack",
}

func (r Result) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	return "unknown"
}

// IsWin reports whether the result pays out as a win.
func (r Result) IsWin() bool { return r == Win || r == WinBlackjack }

// IsLoss reports whether the result pays nothing.
func (r Result) IsLoss() bool { return r == Lose || r == LoseBlackjack }

// IsPush reports whether the result returns the stake.
func (r Result) IsPush() bool { return r == Push || r == PushBlackjack }
