package main

import (
	"context"
	"fmt"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-montecarlo/internal/config"
	"github.com/rxtech-lab/argo-montecarlo/internal/experiment"
	"github.com/rxtech-lab/argo-montecarlo/internal/simulation"
	"github.com/rxtech-lab/argo-montecarlo/internal/storage"
	"github.com/urfave/cli/v3"
)

func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Simulate an ensemble and evaluate every configured strategy on it",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Experiment YAML file. The built-in experiment is used when omitted",
			},
			&cli.StringFlag{
				Name:  "db",
				Usage: "DuckDB results file (overrides database_path)",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "YAML summaries file (overrides results_file)",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "Concurrent workers (overrides workers)",
			},
			&cli.IntFlag{
				Name:  "paths",
				Usage: "Number of simulated paths (overrides process.path_count)",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "Random seed (overrides process.seed)",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Do not show progress bars",
			},
		},
		Action: runAction,
	}
}

func runAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadExperiment(cmd)
	if err != nil {
		return err
	}

	log, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	var store storage.ResultStore

	if cfg.DatabasePath != "" {
		duckDBStore, err := storage.NewDuckDBResultStore(cfg.DatabasePath, log)
		if err != nil {
			return err
		}
		defer duckDBStore.Close()

		if err := duckDBStore.Initialize(ctx); err != nil {
			return err
		}

		store = duckDBStore
	}

	simulator := simulation.NewGBMSimulator(simulation.Config{Workers: cfg.Workers}, log)
	runner := experiment.NewRunner(simulator, store, log)

	callbacks := experiment.Callbacks{}
	if !cmd.Bool("quiet") {
		callbacks = newProgressReporter(cmd.Root().ErrWriter, cfg.Process.PathCount).callbacks()
	}

	report, err := runner.Run(ctx, cfg, callbacks)
	if err != nil {
		return err
	}

	w := output(cmd)
	fmt.Fprintln(w, TitleStyle.Render(fmt.Sprintf("Monte Carlo summary (%d paths, seed %d)", cfg.Process.PathCount, report.Seed)))
	fmt.Fprintln(w, HelpStyle.Render("experiment "+report.ExperimentID))
	fmt.Fprintln(w, renderSummaries(report.Summaries()))

	if cfg.DatabasePath != "" {
		fmt.Fprintln(w, HelpStyle.Render("stored in "+cfg.DatabasePath))
	}

	if cfg.ResultsFile != "" {
		fmt.Fprintln(w, HelpStyle.Render("summaries written to "+cfg.ResultsFile))
	}

	return nil
}

func loadExperiment(cmd *cli.Command) (config.ExperimentConfig, error) {
	cfg := config.Default()

	if path := cmd.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.ExperimentConfig{}, err
		}

		cfg = loaded
	}

	if cmd.IsSet("db") {
		cfg.DatabasePath = cmd.String("db")
	}

	if cmd.IsSet("out") {
		cfg.ResultsFile = cmd.String("out")
	}

	if cmd.IsSet("workers") {
		cfg.Workers = cmd.Int("workers")
	}

	if cmd.IsSet("paths") {
		cfg.Process.PathCount = cmd.Int("paths")
	}

	if cmd.IsSet("seed") {
		cfg.Process.Seed = optional.Some(cmd.Int64("seed"))
	}

	if err := cfg.Validate(); err != nil {
		return config.ExperimentConfig{}, err
	}

	return cfg, nil
}
