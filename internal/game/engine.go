package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/monopolysim/internal/dice"
	"github.com/lox/monopolysim/internal/statistics"
)

// Engine plays one game: it advances turns, applies board and card effects,
// moves cash and consults each player's Strategy at decision points. It owns
// no global state and is safe to run alongside other engines on other
// goroutines, each with its own State, dice source and counters.
type Engine struct {
	state      *State
	strategies [PlayerCount]Strategy
	rng        dice.Source
	counters   *statistics.Counters
	logger     *log.Logger
}

// NewEngine creates an engine for a single game. The counters must cover
// exactly PlayerCount players.
func NewEngine(state *State, strategies [PlayerCount]Strategy, rng dice.Source,
	counters *statistics.Counters, logger *log.Logger) *Engine {
	assert(counters.Players() == PlayerCount, "counters cover %d players, want %d",
		counters.Players(), PlayerCount)
	for i, s := range strategies {
		assert(s != nil, "player %d has no strategy", i)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{
		state:      state,
		strategies: strategies,
		rng:        rng,
		counters:   counters,
		logger:     logger,
	}
}

// State exposes the game state, primarily for inspection after PlayGame.
func (e *Engine) State() *State {
	return e.state
}

func (e *Engine) strategy(player int) Strategy {
	return e.strategies[player]
}
