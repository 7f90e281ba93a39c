// Package simulator runs batches of Monopoly games across worker goroutines
// and aggregates their statistics. Each game is fully deterministic given
// the base seed and its game index, so results are reproducible regardless
// of worker count or scheduling.
package simulator

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/monopolysim/internal/dice"
	"github.com/lox/monopolysim/internal/game"
	"github.com/lox/monopolysim/internal/statistics"
	"github.com/lox/monopolysim/internal/strategy"
)

// StrategyFactory builds a fresh strategy set for one game.
type StrategyFactory func() [game.PlayerCount]game.Strategy

// Config holds configuration for running simulations.
type Config struct {
	// Games is the number of games to simulate.
	Games int
	// MaxRounds caps each game's length; <= 0 means play until one solvent
	// player remains.
	MaxRounds int
	// Seed is the base seed; game i runs with seed Seed+i.
	Seed int64
	// Workers is the number of goroutines playing games. 0 means NumCPU.
	Workers int
	// Rules are the game constants to play with.
	Rules game.Rules
	// Strategies builds each game's strategy set. Nil means the stock set.
	Strategies StrategyFactory
	// ProgressInterval is how often progress is logged. 0 disables it.
	ProgressInterval time.Duration

	Logger *log.Logger
	Clock  quartz.Clock
}

// Simulator runs Monopoly game simulations.
type Simulator struct {
	config Config
	played atomic.Int64
}

// New creates a simulator, applying config defaults.
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.Strategies == nil {
		config.Strategies = strategy.DefaultPlayers
	}
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &Simulator{config: config}
}

// Run plays the configured number of games and returns the merged counters.
// The context only gates progress reporting and between-game scheduling;
// individual games always run to completion.
func (s *Simulator) Run(ctx context.Context) (*statistics.Counters, error) {
	cfg := s.config
	if err := cfg.Rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}

	start := cfg.Clock.Now()
	cfg.Logger.Info("starting simulation",
		"games", cfg.Games, "workers", cfg.Workers, "seed", cfg.Seed)

	progressCtx, stopProgress := context.WithCancel(context.Background())
	defer stopProgress()
	if cfg.ProgressInterval > 0 {
		s.monitorProgress(progressCtx)
	}

	var next atomic.Int64
	results := make([]*statistics.Counters, cfg.Workers)

	group, ctx := errgroup.WithContext(ctx)
	for w := 0; w < cfg.Workers; w++ {
		counters := statistics.New(game.PlayerCount)
		results[w] = counters
		group.Go(func() error {
			for {
				index := next.Add(1) - 1
				if index >= int64(cfg.Games) {
					return nil
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				s.playGame(cfg.Seed+index, counters)
				s.played.Add(1)
			}
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	stopProgress()

	merged := statistics.New(game.PlayerCount)
	for _, counters := range results {
		if err := merged.Merge(counters); err != nil {
			return nil, err
		}
	}
	if err := merged.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	cfg.Logger.Info("simulation complete",
		"games", merged.Games, "elapsed", cfg.Clock.Since(start))
	return merged, nil
}

// playGame plays one game with its own state, dice stream and strategies.
func (s *Simulator) playGame(seed int64, counters *statistics.Counters) {
	rng := dice.New(seed)
	state := game.NewState(s.config.Rules, rng)
	engine := game.NewEngine(state, s.config.Strategies(), rng, counters, s.config.Logger)
	engine.PlayGame(s.config.MaxRounds)
}

// monitorProgress logs completed game counts on a ticker until ctx is done.
func (s *Simulator) monitorProgress(ctx context.Context) {
	total := int64(s.config.Games)
	s.config.Clock.TickerFunc(ctx, s.config.ProgressInterval, func() error {
		played := s.played.Load()
		s.config.Logger.Info("simulation progress",
			"played", played, "total", total,
			"percent", fmt.Sprintf("%.1f", float64(played)/float64(total)*100))
		return nil
	}, "progress")
}
