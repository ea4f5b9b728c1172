package display

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminalWritesStatusLines(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)

	term.Statusf("Player is betting %d", 10)
	term.Statusf("Dealer's hand: %s (%d)", "10H 6S", 16)

	out := buf.String()
	assert.Contains(t, out, "Player is betting 10")
	assert.Contains(t, out, "Dealer's hand: 10H 6S (16)")
}

func TestStyleSelection(t *testing.T) {
	term := NewTerminal(&bytes.Buffer{})

	assert.Equal(t, term.styles.Win, term.style("You WIN by blackjack!"))
	assert.Equal(t, term.styles.Lose, term.style("You LOSE."))
	assert.Equal(t, term.styles.Push, term.style("You PUSH."))
	assert.Equal(t, term.styles.Dealer, term.style("Dealer hits."))
	assert.Equal(t, term.styles.Player, term.style("Player stands."))
	assert.Equal(t, term.styles.Warning, term.style("b 3: illegal command"))
}
