package types

// BacktestResult is the outcome of one strategy on one price path.
// It is produced once per (path, strategy) pair and not modified afterwards.
type BacktestResult struct {
	// Equity has one value per price point.
	Equity []float64 `yaml:"equity" json:"equity"`
	// Returns holds the per-step fractional returns, len(Equity)-1 values.
	Returns []float64 `yaml:"returns" json:"returns"`
	// PnL is final equity minus initial equity.
	PnL float64 `yaml:"pnl" json:"pnl"`
	// TotalReturn is final equity / initial equity - 1.
	TotalReturn float64 `yaml:"total_return" json:"total_return"`
}

// NewBacktestResult derives PnL and TotalReturn from the equity curve so that
// TotalReturn == Equity[last]/Equity[0] - 1 holds for every result.
// equity must contain at least one point.
func NewBacktestResult(equity []float64, returns []float64) BacktestResult {
	first := equity[0]
	last := equity[len(equity)-1]

	if returns == nil {
		returns = []float64{}
	}

	return BacktestResult{
		Equity:      equity,
		Returns:     returns,
		PnL:         last - first,
		TotalReturn: last/first - 1,
	}
}

// FinalEquity returns the last point of the equity curve.
func (r BacktestResult) FinalEquity() float64 {
	return r.Equity[len(r.Equity)-1]
}
