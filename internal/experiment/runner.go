// Package experiment drives one Monte Carlo experiment end to end: it
// simulates a single ensemble, evaluates every configured strategy on it and
// records the summaries.
package experiment

import (
	"context"

	"github.com/google/uuid"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-montecarlo/internal/config"
	"github.com/rxtech-lab/argo-montecarlo/internal/ensemble"
	"github.com/rxtech-lab/argo-montecarlo/internal/logger"
	"github.com/rxtech-lab/argo-montecarlo/internal/simulation"
	"github.com/rxtech-lab/argo-montecarlo/internal/storage"
	"github.com/rxtech-lab/argo-montecarlo/internal/strategy"
	"github.com/rxtech-lab/argo-montecarlo/internal/types"
	"go.uber.org/zap"
)

// OnSimulatedCallback is called once the ensemble has been generated.
type OnSimulatedCallback func(experimentID string, seed uint64, paths int) error

// OnStrategyStartCallback is called before a strategy is evaluated.
type OnStrategyStartCallback func(strategyIndex int, strategyName string, totalStrategies int) error

// OnStrategyEndCallback is called after a strategy's summary has been recorded.
type OnStrategyEndCallback func(strategyIndex int, result RunResult)

// Callbacks holds the optional lifecycle hooks of an experiment.
type Callbacks struct {
	OnSimulated     optional.Option[OnSimulatedCallback]
	OnStrategyStart optional.Option[OnStrategyStartCallback]
	OnStrategyEnd   optional.Option[OnStrategyEndCallback]
	OnPathEvaluated optional.Option[ensemble.OnPathEvaluatedCallback]
}

// RunResult is the outcome of one strategy in an experiment.
type RunResult struct {
	Summary types.EnsembleSummary
	// StoredID is the row id in the result store, if a store is attached.
	StoredID optional.Option[int64]
}

// Report is the outcome of a whole experiment.
type Report struct {
	ExperimentID string
	// Seed replays the experiment's ensemble.
	Seed uint64
	Runs []RunResult
}

// Summaries returns the summaries in strategy order.
func (r Report) Summaries() []types.EnsembleSummary {
	summaries := make([]types.EnsembleSummary, len(r.Runs))
	for i, run := range r.Runs {
		summaries[i] = run.Summary
	}

	return summaries
}

// Runner runs experiments. The store is optional.
type Runner struct {
	simulator simulation.Simulator
	registry  strategy.StrategyRegistry
	store     optional.Option[storage.ResultStore]
	log       *logger.Logger
}

// NewRunner creates a runner. store and log may be nil.
func NewRunner(simulator simulation.Simulator, store storage.ResultStore, log *logger.Logger) *Runner {
	runner := &Runner{
		simulator: simulator,
		registry:  strategy.NewStrategyRegistry(),
		store:     optional.None[storage.ResultStore](),
		log:       logger.OrNop(log),
	}

	if store != nil {
		runner.store = optional.Some(store)
	}

	return runner
}

// Run executes the experiment described by cfg. The first failing step stops the run.
func (r *Runner) Run(ctx context.Context, cfg config.ExperimentConfig, callbacks Callbacks) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}

	strategies := make([]strategy.Strategy, len(cfg.Strategies))
	for i, strategyConfig := range cfg.Strategies {
		s, err := r.registry.Build(strategyConfig)
		if err != nil {
			return Report{}, err
		}

		strategies[i] = s
	}

	experimentID := uuid.NewString()
	log := &logger.Logger{Logger: r.log.With(zap.String("experiment_id", experimentID))}

	aggregator, err := ensemble.NewAggregator(ensemble.Config{
		Workers:      cfg.Workers,
		RiskFreeRate: cfg.RiskFreeRate,
	}, log)
	if err != nil {
		return Report{}, err
	}

	log.Info("Starting experiment",
		zap.String("name", cfg.Name),
		zap.Int("paths", cfg.Process.PathCount),
		zap.Int("steps", cfg.Process.StepCount),
		zap.Int("strategies", len(strategies)),
	)

	ens, err := r.simulator.Simulate(ctx, cfg.Process.Params())
	if err != nil {
		log.Error("Simulation failed", zap.Error(err))

		return Report{}, err
	}

	if callbacks.OnSimulated.IsSome() {
		onSimulated := callbacks.OnSimulated.Unwrap()
		if err := onSimulated(experimentID, ens.Seed, ens.Len()); err != nil {
			return Report{}, err
		}
	}

	report := Report{
		ExperimentID: experimentID,
		Seed:         ens.Seed,
		Runs:         make([]RunResult, 0, len(strategies)),
	}

	for i, s := range strategies {
		if callbacks.OnStrategyStart.IsSome() {
			onStrategyStart := callbacks.OnStrategyStart.Unwrap()
			if err := onStrategyStart(i, s.Name(), len(strategies)); err != nil {
				return Report{}, err
			}
		}

		summary, err := aggregator.Run(ctx, ens, s, ensemble.Callbacks{OnPathEvaluated: callbacks.OnPathEvaluated})
		if err != nil {
			return Report{}, err
		}

		result := RunResult{
			Summary:  summary,
			StoredID: optional.None[int64](),
		}

		if r.store.IsSome() {
			id, err := r.store.Unwrap().Insert(ctx, experimentID, summary.Record())
			if err != nil {
				log.Error("Failed to store summary", zap.String("strategy", s.Name()), zap.Error(err))

				return Report{}, err
			}

			result.StoredID = optional.Some(id)
		}

		report.Runs = append(report.Runs, result)

		if callbacks.OnStrategyEnd.IsSome() {
			onStrategyEnd := callbacks.OnStrategyEnd.Unwrap()
			onStrategyEnd(i, result)
		}
	}

	if cfg.ResultsFile != "" {
		if err := types.WriteSummaries(cfg.ResultsFile, report.Summaries()); err != nil {
			return Report{}, err
		}

		log.Info("Summaries written", zap.String("path", cfg.ResultsFile))
	}

	log.Info("Experiment finished", zap.Uint64("seed", report.Seed))

	return report, nil
}
