package simulator

import (
	"testing"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack-cli/internal/config"
	"github.com/lox/blackjack-cli/internal/strategy"
)

func testRules(mode strategy.Mode) config.Config {
	return config.Config{
		MinBet:           5,
		MaxBet:           100,
		Balance:          500,
		ShoeDecks:        4,
		ReshufflePercent: 50,
		Strategy:         mode,
	}
}

func TestRun(t *testing.T) {
	sim := New(Config{
		Rules:    testRules(strategy.BasicStrategy),
		Shuffles: 1,
		Seed:     42,
		Clock:    quartz.NewMock(t),
	})

	result, err := sim.Run()
	require.NoError(t, err)

	assert.Equal(t, strategy.BasicStrategy, result.Mode)
	assert.Greater(t, result.GamesPlayed, 0)
	assert.Equal(t, result.HandsPlayed, result.Wins+result.Losses+result.Pushes)
	assert.Equal(t, 500.0, result.InitialBalance)
}

func TestRunIsDeterministic(t *testing.T) {
	cfg := Config{
		Rules:    testRules(strategy.HiLoAceFive),
		Shuffles: 2,
		Seed:     7,
		Clock:    quartz.NewMock(t),
	}

	first, err := New(cfg).Run()
	require.NoError(t, err)
	second, err := New(cfg).Run()
	require.NoError(t, err)

	assert.Equal(t, first.FinalBalance, second.FinalBalance)
	assert.Equal(t, first.GamesPlayed, second.GamesPlayed)
	assert.Equal(t, first.Wins, second.Wins)
}

func TestRunRejectsUnknownMode(t *testing.T) {
	sim := New(Config{Rules: testRules("XX"), Shuffles: 1})
	_, err := sim.Run()
	assert.Error(t, err)
}

func TestCompareRunsAllModes(t *testing.T) {
	sim := New(Config{
		Rules:    testRules(strategy.BasicStrategy),
		Shuffles: 1,
		Seed:     42,
		Clock:    quartz.NewMock(t),
	})

	results, err := sim.Compare()
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.Equal(t, strategy.BasicStrategy, results[0].Mode)
	assert.Equal(t, strategy.BasicAceFive, results[1].Mode)
	assert.Equal(t, strategy.HiLoStrategy, results[2].Mode)
	assert.Equal(t, strategy.HiLoAceFive, results[3].Mode)

	// Same seed, same shoes: the flat-bet basic runs of Run and Compare
	// agree.
	single, err := sim.Run()
	require.NoError(t, err)
	assert.Equal(t, single.FinalBalance, results[0].FinalBalance)
}

func TestSummary(t *testing.T) {
	r := &Result{
		Mode:           strategy.BasicStrategy,
		Wins:           10,
		Losses:         12,
		Pushes:         2,
		HandsPlayed:    24,
		GamesPlayed:    23,
		InitialBalance: 500,
		FinalBalance:   450,
	}
	out := r.Summary()
	assert.Contains(t, out, "strategy   BS")
	assert.Contains(t, out, "10 / 12 / 2")
	assert.Contains(t, out, "(-10.0%)")
}
