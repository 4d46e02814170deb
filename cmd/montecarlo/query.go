package main

import (
	"context"
	"fmt"

	"github.com/rxtech-lab/argo-montecarlo/internal/storage"
	"github.com/rxtech-lab/argo-montecarlo/internal/version"
	"github.com/urfave/cli/v3"
)

func initDBCommand() *cli.Command {
	return &cli.Command{
		Name:  "init-db",
		Usage: "Create the results database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "db",
				Usage: "DuckDB results file",
				Value: "results.duckdb",
			},
		},
		Action: initDBAction,
	}
}

func queryCommand() *cli.Command {
	return &cli.Command{
		Name:  "query",
		Usage: "Show the latest runs and per-strategy averages",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "db",
				Usage: "DuckDB results file",
				Value: "results.duckdb",
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Usage:   "Number of latest runs to show",
				Value:   10,
			},
		},
		Action: queryAction,
	}
}

func openStore(ctx context.Context, cmd *cli.Command) (*storage.DuckDBResultStore, error) {
	log, err := newLogger(cmd)
	if err != nil {
		return nil, err
	}

	store, err := storage.NewDuckDBResultStore(cmd.String("db"), log)
	if err != nil {
		return nil, err
	}

	if err := store.Initialize(ctx); err != nil {
		store.Close()

		return nil, err
	}

	return store, nil
}

func initDBAction(ctx context.Context, cmd *cli.Command) error {
	store, err := openStore(ctx, cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	fmt.Fprintf(output(cmd), "Database initialized at %s (schema %s)\n", cmd.String("db"), version.SchemaVersion)

	return nil
}

func queryAction(ctx context.Context, cmd *cli.Command) error {
	store, err := openStore(ctx, cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.LastRuns(ctx, cmd.Int("limit"))
	if err != nil {
		return err
	}

	aggregates, err := store.AggregateByStrategy(ctx)
	if err != nil {
		return err
	}

	w := output(cmd)
	fmt.Fprintln(w, TitleStyle.Render(fmt.Sprintf("Last %d runs", cmd.Int("limit"))))
	fmt.Fprintln(w, renderRuns(runs))
	fmt.Fprintln(w, TitleStyle.Render("Average metrics by strategy"))
	fmt.Fprintln(w, renderAggregates(aggregates))

	return nil
}
