package strategy

import (
	"github.com/rxtech-lab/argo-montecarlo/internal/types"
)

// StrategyType identifies a strategy implementation.
type StrategyType string

const (
	StrategyTypeBuyAndHold   StrategyType = "buy_and_hold"
	StrategyTypeSMACrossover StrategyType = "sma_crossover"
)

// AllStrategyTypes lists the built-in strategy types.
var AllStrategyTypes = []StrategyType{
	StrategyTypeBuyAndHold,
	StrategyTypeSMACrossover,
}

// Strategy turns one price path into an equity curve.
// Implementations are immutable after construction and safe for concurrent use.
type Strategy interface {
	// Name returns the identifier stored with every summary, e.g. "sma_crossover_20_50".
	Name() string
	// Type returns the implementation type.
	Type() StrategyType
	// Evaluate runs the strategy over path. It never modifies path.
	Evaluate(path types.PricePath) (types.BacktestResult, error)
}
