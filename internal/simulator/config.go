package simulator

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/monopolysim/internal/game"
	"github.com/lox/monopolysim/internal/strategy"
)

// FileConfig is the on-disk simulation configuration.
type FileConfig struct {
	Simulation SimulationSettings `hcl:"simulation,block"`
	Rules      *RulesSettings     `hcl:"rules,block"`
	Players    []PlayerSettings   `hcl:"player,block"`
}

// SimulationSettings controls the simulation run itself.
type SimulationSettings struct {
	Games            int    `hcl:"games,optional"`
	MaxRounds        int    `hcl:"max_rounds,optional"`
	Seed             int64  `hcl:"seed,optional"`
	Workers          int    `hcl:"workers,optional"`
	LogLevel         string `hcl:"log_level,optional"`
	ProgressInterval string `hcl:"progress_interval,optional"`
}

// RulesSettings overrides the standard game constants.
type RulesSettings struct {
	InitialCash          int `hcl:"initial_cash,optional"`
	GoSalary             int `hcl:"go_salary,optional"`
	JailFine             int `hcl:"jail_fine,optional"`
	DoublesJailThreshold int `hcl:"doubles_jail_threshold,optional"`
	MaxTurnsInJail       int `hcl:"max_turns_in_jail,optional"`
}

// PlayerSettings configures one player's strategy. The block label is the
// player id, "0" through "3".
type PlayerSettings struct {
	ID             string  `hcl:"id,label"`
	BuyProbability float64 `hcl:"buy_probability,optional"`
	BidCentre      float64 `hcl:"bid_centre,optional"`
	BidWidth       float64 `hcl:"bid_width,optional"`
	UseCardTurn    int     `hcl:"use_card_turn,optional"`
	PayFineTurn    int     `hcl:"pay_fine_turn,optional"`
}

// PlayerID parses the block label into a player index.
func (p PlayerSettings) PlayerID() (int, error) {
	id, err := strconv.Atoi(p.ID)
	if err != nil {
		return 0, fmt.Errorf("invalid player id %q: %w", p.ID, err)
	}
	if id < 0 || id >= game.PlayerCount {
		return 0, fmt.Errorf("player id %d out of range 0-%d", id, game.PlayerCount-1)
	}
	return id, nil
}

// DefaultFileConfig returns the stock configuration: 10000 games capped at
// 200 rounds with the built-in strategy spread.
func DefaultFileConfig() *FileConfig {
	cfg := &FileConfig{
		Simulation: SimulationSettings{
			Games:            10000,
			MaxRounds:        200,
			Seed:             1,
			LogLevel:         "info",
			ProgressInterval: "5s",
		},
	}
	for i := 0; i < game.PlayerCount; i++ {
		cfg.Players = append(cfg.Players, PlayerSettings{
			ID:          strconv.Itoa(i),
			BidCentre:   strategy.DefaultCentreAdjusts[i],
			UseCardTurn: strategy.NeverEscape,
			PayFineTurn: strategy.NeverEscape,
		})
	}
	return cfg
}

// LoadFileConfig loads configuration from an HCL file, returning the default
// configuration if the file does not exist.
func LoadFileConfig(filename string) (*FileConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultFileConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	config := &FileConfig{}
	diags = gohcl.DecodeBody(file.Body, nil, config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := DefaultFileConfig()
	if config.Simulation.Games == 0 {
		config.Simulation.Games = defaults.Simulation.Games
	}
	if config.Simulation.MaxRounds == 0 {
		config.Simulation.MaxRounds = defaults.Simulation.MaxRounds
	}
	if config.Simulation.Seed == 0 {
		config.Simulation.Seed = defaults.Simulation.Seed
	}
	if config.Simulation.LogLevel == "" {
		config.Simulation.LogLevel = defaults.Simulation.LogLevel
	}
	if config.Simulation.ProgressInterval == "" {
		config.Simulation.ProgressInterval = defaults.Simulation.ProgressInterval
	}
	if len(config.Players) == 0 {
		config.Players = defaults.Players
	}
	// Zero means unset for the jail thresholds; a negative value escapes on
	// the first jail turn.
	for i := range config.Players {
		if config.Players[i].UseCardTurn == 0 {
			config.Players[i].UseCardTurn = strategy.NeverEscape
		}
		if config.Players[i].PayFineTurn == 0 {
			config.Players[i].PayFineTurn = strategy.NeverEscape
		}
	}

	return config, nil
}

// Validate checks the configuration for consistency.
func (c *FileConfig) Validate() error {
	if c.Simulation.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Simulation.Games)
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("workers cannot be negative, got %d", c.Simulation.Workers)
	}
	if _, err := time.ParseDuration(c.Simulation.ProgressInterval); err != nil {
		return fmt.Errorf("invalid progress_interval: %w", err)
	}
	if err := c.GameRules().Validate(); err != nil {
		return err
	}

	seen := make(map[int]bool)
	for _, p := range c.Players {
		id, err := p.PlayerID()
		if err != nil {
			return err
		}
		if seen[id] {
			return fmt.Errorf("player %d configured twice", id)
		}
		seen[id] = true
		if p.BuyProbability < 0 || p.BuyProbability > 1 {
			return fmt.Errorf("player %d: buy_probability must be in [0, 1], got %g", id, p.BuyProbability)
		}
		if p.BidWidth < 0 {
			return fmt.Errorf("player %d: bid_width cannot be negative, got %g", id, p.BidWidth)
		}
	}
	return nil
}

// GameRules returns the configured rules, falling back to the standard
// constants for unset fields.
func (c *FileConfig) GameRules() game.Rules {
	rules := game.DefaultRules()
	if c.Rules == nil {
		return rules
	}
	if c.Rules.InitialCash != 0 {
		rules.InitialCash = c.Rules.InitialCash
	}
	if c.Rules.GoSalary != 0 {
		rules.GoSalary = c.Rules.GoSalary
	}
	if c.Rules.JailFine != 0 {
		rules.JailFine = c.Rules.JailFine
	}
	if c.Rules.DoublesJailThreshold != 0 {
		rules.DoublesJailThreshold = c.Rules.DoublesJailThreshold
	}
	if c.Rules.MaxTurnsInJail != 0 {
		rules.MaxTurnsInJail = c.Rules.MaxTurnsInJail
	}
	return rules
}

// StrategyFactory builds the strategy set factory described by the player
// blocks; unconfigured players get the stock strategy.
func (c *FileConfig) StrategyFactory() StrategyFactory {
	settings := make(map[int]PlayerSettings, len(c.Players))
	for _, p := range c.Players {
		// Validate has already vetted the ids.
		if id, err := p.PlayerID(); err == nil {
			settings[id] = p
		}
	}
	return func() [game.PlayerCount]game.Strategy {
		var players [game.PlayerCount]game.Strategy
		for i := range players {
			p, ok := settings[i]
			if !ok {
				players[i] = strategy.Default(i)
				continue
			}
			players[i] = &strategy.Player{
				ID:         i,
				Buyer:      strategy.RandomBuyer{Probability: p.BuyProbability},
				Bidder:     strategy.PricedBidder{CentreAdjust: p.BidCentre, Width: p.BidWidth},
				Jail:       strategy.TurnThresholdJail{UseCardTurn: p.UseCardTurn, PayFineTurn: p.PayFineTurn},
				Liquidator: strategy.OrderedLiquidator{},
			}
		}
		return players
	}
}
