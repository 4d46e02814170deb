package main

import (
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rxtech-lab/argo-montecarlo/internal/storage"
	"github.com/rxtech-lab/argo-montecarlo/internal/types"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// formatNumber rounds v half away from zero to places decimals.
func formatNumber(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	return decimal.NewFromFloat(v).StringFixed(places)
}

// formatPercent renders a fraction as a percentage with two decimals.
func formatPercent(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	return decimal.NewFromFloat(v).Mul(hundred).StringFixed(2) + "%"
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return HeaderStyle
			case col == 0:
				return CellStyle
			default:
				return NumberStyle
			}
		})
}

func renderSummaries(summaries []types.EnsembleSummary) string {
	t := newTable(
		"Strategy", "Paths", "Mean PnL", "Median PnL", "Best PnL", "Worst PnL", "% Profitable",
		"Mean Return", "Mean Max DD", "Worst Max DD", "Mean Vol", "Mean Sharpe",
	)

	for _, s := range summaries {
		t.Row(
			s.Strategy,
			strconv.Itoa(s.PathCount),
			formatNumber(s.PnL.Mean, 2),
			formatNumber(s.PnL.Median, 2),
			formatNumber(s.PnL.Max, 2),
			formatNumber(s.PnL.Min, 2),
			formatPercent(s.PnL.FractionPositive),
			formatPercent(s.TotalReturn.Mean),
			formatPercent(s.MeanDrawdown),
			formatPercent(s.WorstDrawdown),
			formatPercent(s.MeanVolatility),
			formatNumber(s.MeanSharpe, 3),
		)
	}

	return t.String()
}

func renderRuns(runs []storage.StoredRun) string {
	t := newTable("ID", "Strategy", "Paths", "Mean Return", "Mean Max DD", "Mean Sharpe", "Experiment", "Created")

	for _, run := range runs {
		experimentID := run.ExperimentID
		if len(experimentID) > 8 {
			experimentID = experimentID[:8]
		}

		t.Row(
			strconv.FormatInt(run.ID, 10),
			run.Strategy,
			strconv.Itoa(run.PathCount),
			formatPercent(run.MeanReturn),
			formatPercent(run.MeanDrawdown),
			formatNumber(run.MeanSharpe, 3),
			experimentID,
			run.CreatedAt.Format("2006-01-02 15:04:05"),
		)
	}

	return t.String()
}

func renderAggregates(aggregates []storage.StrategyAggregate) string {
	t := newTable("Strategy", "Runs", "Avg Return", "Avg Max DD", "Avg Sharpe", "Worst Sharpe", "Best Sharpe")

	for _, a := range aggregates {
		t.Row(
			a.Strategy,
			strconv.Itoa(a.Runs),
			formatPercent(a.AvgReturn),
			formatPercent(a.AvgDrawdown),
			formatNumber(a.AvgSharpe, 3),
			formatNumber(a.WorstSharpe, 3),
			formatNumber(a.BestSharpe, 3),
		)
	}

	return t.String()
}
