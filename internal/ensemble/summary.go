package ensemble

import (
	"github.com/rxtech-lab/argo-montecarlo/internal/metrics"
	"github.com/rxtech-lab/argo-montecarlo/internal/types"
)

// Summarize reduces path outcomes to an EnsembleSummary. The result does not
// depend on the order of outcomes.
func Summarize(strategyID string, outcomes []PathOutcome) types.EnsembleSummary {
	n := len(outcomes)
	pnls := make([]float64, n)
	totalReturns := make([]float64, n)
	drawdowns := make([]float64, n)
	volatilities := make([]float64, n)
	sharpes := make([]float64, n)

	for i, outcome := range outcomes {
		pnls[i] = outcome.Result.PnL
		totalReturns[i] = outcome.Result.TotalReturn
		drawdowns[i] = outcome.MaxDrawdown
		volatilities[i] = outcome.Volatility
		sharpes[i] = outcome.Sharpe
	}

	return types.EnsembleSummary{
		Strategy:       strategyID,
		PathCount:      n,
		PnL:            metrics.Describe(pnls),
		TotalReturn:    metrics.Describe(totalReturns),
		MeanDrawdown:   metrics.Mean(drawdowns),
		WorstDrawdown:  metrics.Max(drawdowns),
		MeanVolatility: metrics.Mean(volatilities),
		MeanSharpe:     metrics.Mean(sharpes),
	}
}
