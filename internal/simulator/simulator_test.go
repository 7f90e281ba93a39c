package simulator

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/lox/monopolysim/internal/game"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestRunPlaysRequestedGames(t *testing.T) {
	sim := New(Config{
		Games:     25,
		MaxRounds: 30,
		Seed:      1,
		Workers:   4,
		Rules:     game.DefaultRules(),
		Logger:    testLogger(),
	})

	counters, err := sim.Run(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 25, counters.Games)
	require.NoError(t, counters.Validate())

	var turns uint64
	for player := 0; player < game.PlayerCount; player++ {
		turns += counters.TurnsPlayed[player]
	}
	require.NotZero(t, turns)
}

func TestRunIsDeterministicAcrossWorkerCounts(t *testing.T) {
	run := func(workers int) map[int]uint64 {
		sim := New(Config{
			Games:     20,
			MaxRounds: 40,
			Seed:      7,
			Workers:   workers,
			Rules:     game.DefaultRules(),
			Logger:    testLogger(),
		})
		counters, err := sim.Run(context.Background())
		require.NoError(t, err)
		return counters.GameLengths
	}

	serial := run(1)
	parallel := run(8)
	require.Equal(t, serial, parallel,
		"per-game outcomes must depend only on the seed, not scheduling")
}

func TestRunSameSeedSameResults(t *testing.T) {
	run := func() (*gameTotals, error) {
		sim := New(Config{
			Games:     10,
			MaxRounds: 50,
			Seed:      42,
			Workers:   2,
			Rules:     game.DefaultRules(),
			Logger:    testLogger(),
		})
		counters, err := sim.Run(context.Background())
		if err != nil {
			return nil, err
		}
		totals := &gameTotals{rounds: counters.Rounds}
		for player := 0; player < game.PlayerCount; player++ {
			totals.wins[player] = counters.Wins[player]
			totals.worth[player] = counters.NetWorthSum[player]
		}
		return totals, nil
	}

	first, err := run()
	require.NoError(t, err)
	second, err := run()
	require.NoError(t, err)
	require.Equal(t, first, second)
}

type gameTotals struct {
	rounds uint64
	wins   [game.PlayerCount]uint64
	worth  [game.PlayerCount]uint64
}

func TestRunRejectsInvalidRules(t *testing.T) {
	sim := New(Config{
		Games:  1,
		Seed:   1,
		Rules:  game.Rules{},
		Logger: testLogger(),
	})

	_, err := sim.Run(context.Background())
	require.Error(t, err)
}

func TestNewAppliesDefaults(t *testing.T) {
	sim := New(Config{Games: 1, Rules: game.DefaultRules()})
	require.Positive(t, sim.config.Workers)
	require.NotNil(t, sim.config.Strategies)
	require.NotNil(t, sim.config.Logger)
	require.NotNil(t, sim.config.Clock)
}
