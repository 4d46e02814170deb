package strategy

import (
	"fmt"

	"github.com/rxtech-lab/argo-montecarlo/internal/indicator"
	"github.com/rxtech-lab/argo-montecarlo/internal/types"
	"github.com/rxtech-lab/argo-montecarlo/pkg/errors"
)

const (
	DefaultShortWindow    = 20
	DefaultLongWindow     = 50
	DefaultInitialCapital = 10_000.0
)

// MovingAverageCrossover is fully invested while the short SMA is above the
// long SMA and in cash otherwise, including while either SMA is warming up.
//
// The return between step t and t+1 is scaled by the position decided at t,
// so equity up to t never depends on prices after t.
type MovingAverageCrossover struct {
	shortWindow    int
	longWindow     int
	initialCapital float64
}

// NewMovingAverageCrossover validates the parameters before anything is computed.
func NewMovingAverageCrossover(shortWindow, longWindow int, initialCapital float64) (*MovingAverageCrossover, error) {
	if shortWindow < 1 || longWindow < 1 {
		return nil, errors.InvalidParameterf("windows must be >= 1, got short=%d long=%d", shortWindow, longWindow)
	}

	if shortWindow >= longWindow {
		return nil, errors.InvalidParameterf("short_window (%d) must be < long_window (%d)", shortWindow, longWindow)
	}

	if !(initialCapital > 0) {
		return nil, errors.InvalidParameterf("initial_capital must be > 0, got %v", initialCapital)
	}

	return &MovingAverageCrossover{
		shortWindow:    shortWindow,
		longWindow:     longWindow,
		initialCapital: initialCapital,
	}, nil
}

// Name implements Strategy.
func (m *MovingAverageCrossover) Name() string {
	return fmt.Sprintf("%s_%d_%d", StrategyTypeSMACrossover, m.shortWindow, m.longWindow)
}

// Type implements Strategy.
func (m *MovingAverageCrossover) Type() StrategyType {
	return StrategyTypeSMACrossover
}

// Windows returns the short and long SMA windows.
func (m *MovingAverageCrossover) Windows() (short int, long int) {
	return m.shortWindow, m.longWindow
}

// InitialCapital returns the starting equity.
func (m *MovingAverageCrossover) InitialCapital() float64 {
	return m.initialCapital
}

// Positions returns the position held after observing each price: 1 when the
// short SMA is above the long SMA, 0 otherwise.
func (m *MovingAverageCrossover) Positions(path types.PricePath) ([]float64, error) {
	short, err := indicator.SMA(path, m.shortWindow)
	if err != nil {
		return nil, err
	}

	long, err := indicator.SMA(path, m.longWindow)
	if err != nil {
		return nil, err
	}

	states, err := indicator.CrossStates(short, long)
	if err != nil {
		return nil, err
	}

	positions := make([]float64, len(states))
	for t, state := range states {
		if state == indicator.CrossAbove {
			positions[t] = 1
		}
	}

	return positions, nil
}

// Evaluate implements Strategy. Paths shorter than 2 points yield a flat
// single-point equity curve and no error.
func (m *MovingAverageCrossover) Evaluate(path types.PricePath) (types.BacktestResult, error) {
	if len(path) < 2 {
		return types.NewBacktestResult([]float64{m.initialCapital}, []float64{}), nil
	}

	positions, err := m.Positions(path)
	if err != nil {
		return types.BacktestResult{}, err
	}

	returns := make([]float64, len(path)-1)
	equity := make([]float64, len(path))
	equity[0] = m.initialCapital

	growth := 1.0
	for t := range returns {
		priceReturn := path[t+1]/path[t] - 1
		returns[t] = positions[t] * priceReturn
		growth *= 1 + returns[t]
		equity[t+1] = m.initialCapital * growth
	}

	return types.NewBacktestResult(equity, returns), nil
}
