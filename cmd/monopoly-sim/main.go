package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/monopolysim/internal/report"
	"github.com/lox/monopolysim/internal/simulator"
)

type CLI struct {
	Config    string `short:"c" default:"monopoly-sim.hcl" help:"Path to HCL config file"`
	Games     int    `help:"Number of games to simulate (overrides config)"`
	MaxRounds int    `help:"Maximum rounds per game (overrides config)"`
	Seed      int64  `help:"Base RNG seed; game i uses seed+i (overrides config)"`
	Workers   int    `help:"Number of worker goroutines (overrides config)"`
	Verbose   bool   `short:"v" help:"Verbose logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	config, err := simulator.LoadFileConfig(cli.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		ctx.Exit(1)
	}

	if cli.Games > 0 {
		config.Simulation.Games = cli.Games
	}
	if cli.MaxRounds > 0 {
		config.Simulation.MaxRounds = cli.MaxRounds
	}
	if cli.Seed != 0 {
		config.Simulation.Seed = cli.Seed
	}
	if cli.Workers > 0 {
		config.Simulation.Workers = cli.Workers
	}

	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		ctx.Exit(1)
	}

	level := log.WarnLevel
	if cli.Verbose {
		level = log.DebugLevel
	} else if parsed, err := log.ParseLevel(config.Simulation.LogLevel); err == nil {
		level = parsed
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	progress, _ := time.ParseDuration(config.Simulation.ProgressInterval)
	sim := simulator.New(simulator.Config{
		Games:            config.Simulation.Games,
		MaxRounds:        config.Simulation.MaxRounds,
		Seed:             config.Simulation.Seed,
		Workers:          config.Simulation.Workers,
		Rules:            config.GameRules(),
		Strategies:       config.StrategyFactory(),
		ProgressInterval: progress,
		Logger:           logger,
	})

	counters, err := sim.Run(context.Background())
	if err != nil {
		logger.Error("Simulation failed", "error", err)
		ctx.Exit(1)
	}

	fmt.Println(report.Render(counters))
	ctx.Exit(0)
}
