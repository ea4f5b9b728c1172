// Package replay reads pre-recorded shoe and command files and feeds them
// into the engine, reproducing a session deterministically.
package replay

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/lox/blackjack-cli/internal/game"
)

// ReadShoe decodes a whitespace-separated sequence of card tokens, e.g.
// "10H AS 2C", into a loaded shoe drawn in file order.
func ReadShoe(r io.Reader) (*deck.Shoe, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var cards []deck.Card
	for scanner.Scan() {
		card, err := deck.ParseCard(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("shoe file: %w", err)
		}
		cards = append(cards, card)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("shoe file: %w", err)
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("shoe file: no cards")
	}
	return deck.NewLoadedShoe(cards), nil
}

// ReadCommands tokenizes a command file. A bet token followed by an integer
// amount is folded into a single "b N" command.
func ReadCommands(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var cmds []string
	for scanner.Scan() {
		tok := scanner.Text()
		if tok == "b" && scanner.Scan() {
			next := scanner.Text()
			if isInt(next) {
				cmds = append(cmds, tok+" "+next)
				continue
			}
			cmds = append(cmds, tok, next)
			continue
		}
		cmds = append(cmds, tok)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("command file: %w", err)
	}
	return cmds, nil
}

func isInt(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ReadShoeFile reads a shoe file from disk.
func ReadShoeFile(path string) (*deck.Shoe, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadShoe(f)
}

// ReadCommandsFile reads a command file from disk.
func ReadCommandsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCommands(f)
}

// Source replays a fixed command list into the engine, then reports io.EOF,
// which the engine treats as the end of the session.
type Source struct {
	cmds []string
	next int
}

// NewSource creates a command source over the given command list.
func NewSource(cmds []string) *Source {
	return &Source{cmds: cmds}
}

// NextCommand returns the next recorded command.
func (s *Source) NextCommand(game.View) (string, error) {
	if s.next >= len(s.cmds) {
		return "", io.EOF
	}
	cmd := s.cmds[s.next]
	s.next++
	return cmd, nil
}

// Remaining returns the number of commands not yet replayed.
func (s *Source) Remaining() int {
	return len(s.cmds) - s.next
}
