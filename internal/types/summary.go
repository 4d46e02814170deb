package types

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Distribution summarizes one per-path scalar across the ensemble.
type Distribution struct {
	Mean   float64 `yaml:"mean" json:"mean"`
	Median float64 `yaml:"median" json:"median"`
	Min    float64 `yaml:"min" json:"min"`
	Max    float64 `yaml:"max" json:"max"`
	// FractionPositive is the share of paths with a value > 0, in [0, 1].
	FractionPositive float64 `yaml:"fraction_positive" json:"fraction_positive"`
}

// EnsembleSummary is the reduction of every path's result for one strategy.
type EnsembleSummary struct {
	// Strategy is the strategy identifier, e.g. "buy_and_hold" or "sma_crossover_20_50".
	Strategy string `yaml:"strategy" json:"strategy"`
	// PathCount is the number of paths that were evaluated.
	PathCount int `yaml:"path_count" json:"path_count"`
	// PnL distribution over paths.
	PnL Distribution `yaml:"pnl" json:"pnl"`
	// TotalReturn distribution over paths.
	TotalReturn Distribution `yaml:"total_return" json:"total_return"`
	// MeanDrawdown is the average of the per-path maximum drawdowns.
	MeanDrawdown float64 `yaml:"mean_drawdown" json:"mean_drawdown"`
	// WorstDrawdown is the largest per-path maximum drawdown.
	WorstDrawdown float64 `yaml:"worst_drawdown" json:"worst_drawdown"`
	// MeanVolatility is the average per-path return volatility.
	MeanVolatility float64 `yaml:"mean_volatility" json:"mean_volatility"`
	// MeanSharpe is the average per-path Sharpe ratio.
	MeanSharpe float64 `yaml:"mean_sharpe" json:"mean_sharpe"`
}

// SummaryRecord is the fixed record handed to the result store.
// Field order matches the stored column order.
type SummaryRecord struct {
	Strategy       string  `yaml:"strategy" json:"strategy"`
	PathCount      int     `yaml:"path_count" json:"path_count"`
	MeanPnL        float64 `yaml:"mean_pnl" json:"mean_pnl"`
	MeanReturn     float64 `yaml:"mean_return" json:"mean_return"`
	MeanDrawdown   float64 `yaml:"mean_drawdown" json:"mean_drawdown"`
	WorstDrawdown  float64 `yaml:"worst_drawdown" json:"worst_drawdown"`
	MeanVolatility float64 `yaml:"mean_volatility" json:"mean_volatility"`
	MeanSharpe     float64 `yaml:"mean_sharpe" json:"mean_sharpe"`
}

// Record projects the summary onto the store record.
func (s EnsembleSummary) Record() SummaryRecord {
	return SummaryRecord{
		Strategy:       s.Strategy,
		PathCount:      s.PathCount,
		MeanPnL:        s.PnL.Mean,
		MeanReturn:     s.TotalReturn.Mean,
		MeanDrawdown:   s.MeanDrawdown,
		WorstDrawdown:  s.WorstDrawdown,
		MeanVolatility: s.MeanVolatility,
		MeanSharpe:     s.MeanSharpe,
	}
}

func WriteSummaries(path string, summaries []EnsembleSummary) error {
	data, err := yaml.Marshal(summaries)
	if err != nil {
		return fmt.Errorf("failed to marshal ensemble summaries to YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write ensemble summaries to file: %w", err)
	}

	return nil
}

// ReadSummaries loads a file written by WriteSummaries.
func ReadSummaries(path string) ([]EnsembleSummary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ensemble summaries: %w", err)
	}

	var summaries []EnsembleSummary
	if err := yaml.Unmarshal(data, &summaries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ensemble summaries: %w", err)
	}

	return summaries, nil
}
