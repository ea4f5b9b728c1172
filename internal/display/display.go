// Package display renders the engine's status lines to a terminal.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles contains styling for terminal output.
type Styles struct {
	Info    lipgloss.Style
	Dealer  lipgloss.Style
	Player  lipgloss.Style
	Win     lipgloss.Style
	Lose    lipgloss.Style
	Push    lipgloss.Style
	Warning lipgloss.Style
}

// NewStyles creates the default style set.
func NewStyles() *Styles {
	return &Styles{
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
		Dealer:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Player:  lipgloss.NewStyle().Foreground(lipgloss.Color("#74B9FF")),
		Win:     lipgloss.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		Lose:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Push:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FFEAA7")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFEAA7")),
	}
}

// Terminal is a game observer that writes styled status lines.
type Terminal struct {
	styles *Styles
	w      io.Writer
}

// NewTerminal creates a terminal display writing to w, or stdout when w is
// nil.
func NewTerminal(w io.Writer) *Terminal {
	if w == nil {
		w = os.Stdout
	}
	return &Terminal{styles: NewStyles(), w: w}
}

// Statusf renders one status line, picking a style from the line's content.
func (t *Terminal) Statusf(format string, args ...interface{}) {
	line := fmt.Sprintf(format, args...)
	fmt.Fprintln(t.w, t.style(line).Render(line))
}

func (t *Terminal) style(line string) lipgloss.Style {
	switch {
	case strings.Contains(line, "WIN"):
		return t.styles.Win
	case strings.Contains(line, "LOSE") || strings.Contains(line, "busts"):
		return t.styles.Lose
	case strings.Contains(line, "PUSH"):
		return t.styles.Push
	case strings.HasPrefix(line, "Dealer"):
		return t.styles.Dealer
	case strings.HasPrefix(line, "Player"):
		return t.styles.Player
	case strings.Contains(line, "illegal") || strings.Contains(line, "can't"):
		return t.styles.Warning
	default:
		return t.styles.Info
	}
}
