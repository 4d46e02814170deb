package strategy

import (
	"github.com/rxtech-lab/argo-montecarlo/internal/types"
	"github.com/rxtech-lab/argo-montecarlo/pkg/errors"
)

// DefaultInitialCash is the cash balance used when none is configured.
const DefaultInitialCash = 10_000.0

// BuyAndHold buys one unit at step 0 and holds it to the end of the path.
type BuyAndHold struct {
	initialCash float64
}

// NewBuyAndHold creates the strategy. initialCash must be > 0.
func NewBuyAndHold(initialCash float64) (*BuyAndHold, error) {
	if !(initialCash > 0) {
		return nil, errors.InvalidParameterf("initial_cash must be > 0, got %v", initialCash)
	}

	return &BuyAndHold{initialCash: initialCash}, nil
}

// Name implements Strategy.
func (b *BuyAndHold) Name() string {
	return string(StrategyTypeBuyAndHold)
}

// Type implements Strategy.
func (b *BuyAndHold) Type() StrategyType {
	return StrategyTypeBuyAndHold
}

// InitialCash returns the configured starting balance.
func (b *BuyAndHold) InitialCash() float64 {
	return b.initialCash
}

// Evaluate implements Strategy.
// equity[t] = (initialCash - price[0]) + price[t].
func (b *BuyAndHold) Evaluate(path types.PricePath) (types.BacktestResult, error) {
	if len(path) < 2 {
		return types.BacktestResult{}, errors.InvalidInputf("buy and hold needs at least 2 prices, got %d", len(path))
	}

	cash := b.initialCash - path[0]

	equity := make([]float64, len(path))
	for t, price := range path {
		equity[t] = cash + price
	}

	returns := make([]float64, len(path)-1)
	for t := range returns {
		returns[t] = equity[t+1]/equity[t] - 1
	}

	return types.NewBacktestResult(equity, returns), nil
}
