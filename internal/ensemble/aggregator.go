// Package ensemble evaluates one strategy on every path of a simulated
// ensemble and reduces the per-path results to an EnsembleSummary.
package ensemble

import (
	"context"
	"runtime"
	"sync"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-montecarlo/internal/logger"
	"github.com/rxtech-lab/argo-montecarlo/internal/metrics"
	"github.com/rxtech-lab/argo-montecarlo/internal/strategy"
	"github.com/rxtech-lab/argo-montecarlo/internal/types"
	"github.com/rxtech-lab/argo-montecarlo/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Config controls evaluation. Workers never affects the result.
type Config struct {
	// Workers is the number of paths evaluated concurrently. Zero means runtime.NumCPU().
	Workers int
	// RiskFreeRate is the annual rate subtracted from returns in the Sharpe ratio.
	RiskFreeRate float64
	// Annualization overrides the scaling of volatility and Sharpe.
	// None derives it from the ensemble's step size.
	Annualization optional.Option[metrics.Annualization]
}

// PathOutcome is the evaluation of a single path.
type PathOutcome struct {
	// Path is the index of the path in the ensemble.
	Path        int
	Result      types.BacktestResult
	MaxDrawdown float64
	Volatility  float64
	Sharpe      float64
}

// Aggregator runs strategies over ensembles.
type Aggregator struct {
	config Config
	log    *logger.Logger
}

// NewAggregator creates an aggregator. log may be nil.
func NewAggregator(config Config, log *logger.Logger) (*Aggregator, error) {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}

	if config.Annualization.IsSome() {
		if err := config.Annualization.Unwrap().Validate(); err != nil {
			return nil, err
		}
	}

	return &Aggregator{
		config: config,
		log:    logger.OrNop(log),
	}, nil
}

// Run evaluates s on every path of ens and summarizes the outcomes.
func (a *Aggregator) Run(ctx context.Context, ens types.Ensemble, s strategy.Strategy, callbacks Callbacks) (types.EnsembleSummary, error) {
	outcomes, err := a.Evaluate(ctx, ens, s, callbacks)
	if err != nil {
		return types.EnsembleSummary{}, err
	}

	summary := Summarize(s.Name(), outcomes)

	a.log.Info("Ensemble evaluated",
		zap.String("strategy", summary.Strategy),
		zap.Int("paths", summary.PathCount),
		zap.Float64("mean_pnl", summary.PnL.Mean),
		zap.Float64("mean_return", summary.TotalReturn.Mean),
		zap.Float64("worst_drawdown", summary.WorstDrawdown),
		zap.Float64("mean_sharpe", summary.MeanSharpe),
	)

	return summary, nil
}

// Evaluate runs s on every path independently. The returned slice is indexed
// by path. Any failing path aborts the whole evaluation; no partial results are
// returned.
func (a *Aggregator) Evaluate(ctx context.Context, ens types.Ensemble, s strategy.Strategy, callbacks Callbacks) ([]PathOutcome, error) {
	if s == nil {
		return nil, errors.InvalidParameterf("strategy is required")
	}

	if err := ens.Validate(); err != nil {
		return nil, err
	}

	annualization, err := a.annualization(ens)
	if err != nil {
		return nil, err
	}

	a.log.Debug("Evaluating strategy on ensemble",
		zap.String("strategy", s.Name()),
		zap.Int("paths", ens.Len()),
		zap.Float64("periods_per_year", annualization.PeriodsPerYear),
		zap.Int("workers", a.config.Workers),
	)

	total := ens.Len()
	outcomes := make([]PathOutcome, total)
	progress := newProgress(total, callbacks)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.config.Workers)

	for i, path := range ens.Paths {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			outcome, err := a.evaluatePath(s, i, path, annualization)
			if err != nil {
				return err
			}

			outcomes[i] = outcome

			return progress.advance()
		})
	}

	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			return nil, errors.Wrap(errors.ErrCodeRunCancelled, "evaluation cancelled", ctx.Err())
		}

		a.log.Error("Ensemble evaluation failed", zap.String("strategy", s.Name()), zap.Error(err))

		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRunCancelled, "evaluation cancelled", err)
	}

	return outcomes, nil
}

func (a *Aggregator) evaluatePath(s strategy.Strategy, index int, path types.PricePath, annualization metrics.Annualization) (PathOutcome, error) {
	result, err := s.Evaluate(path)
	if err != nil {
		return PathOutcome{}, errors.Wrapf(errors.ErrCodeEvaluationFailed, err, "strategy %s failed on path %d", s.Name(), index)
	}

	drawdown, err := metrics.MaxDrawdown(result.Equity)
	if err != nil {
		return PathOutcome{}, errors.Wrapf(errors.ErrCodeEvaluationFailed, err, "strategy %s produced an invalid equity curve on path %d", s.Name(), index)
	}

	return PathOutcome{
		Path:        index,
		Result:      result,
		MaxDrawdown: drawdown,
		Volatility:  metrics.Volatility(result.Returns, annualization),
		Sharpe:      metrics.SharpeRatio(result.Returns, a.config.RiskFreeRate, annualization),
	}, nil
}

func (a *Aggregator) annualization(ens types.Ensemble) (metrics.Annualization, error) {
	if a.config.Annualization.IsSome() {
		return a.config.Annualization.Unwrap(), nil
	}

	// Hand-built ensembles may carry no process params.
	if ens.Params.StepSize == 0 {
		return metrics.PerStep(), nil
	}

	return metrics.FromStepSize(ens.Params.StepSize)
}

// progress serializes the OnPathEvaluated callback across workers.
type progress struct {
	mu       sync.Mutex
	done     int
	total    int
	callback optional.Option[OnPathEvaluatedCallback]
}

func newProgress(total int, callbacks Callbacks) *progress {
	return &progress{
		total:    total,
		callback: callbacks.OnPathEvaluated,
	}
}

func (p *progress) advance() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.done++

	if p.callback.IsNone() {
		return nil
	}

	callback := p.callback.Unwrap()
	if err := callback(p.done, p.total); err != nil {
		return errors.Wrap(errors.ErrCodeEvaluationFailed, "evaluation aborted by progress callback", err)
	}

	return nil
}
