package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-montecarlo/pkg/errors"
)

// SMA computes the simple moving average of prices for the given window.
//
// The result has one entry per price. Entry t is the unweighted mean of
// prices[t-window+1 : t+1]; the first window-1 entries are None because the
// average is not defined yet. When window exceeds len(prices) every entry is None.
// Entry t never depends on prices after t.
func SMA(prices []float64, window int) ([]optional.Option[float64], error) {
	if window < 1 {
		return nil, errors.InvalidParameterf("window must be >= 1, got %d", window)
	}

	series := make([]optional.Option[float64], len(prices))
	for t := range prices {
		if t < window-1 {
			series[t] = optional.None[float64]()

			continue
		}

		series[t] = optional.Some(calculateSimpleMovingAverage(prices[t-window+1 : t+1]))
	}

	return series, nil
}

// calculateSimpleMovingAverage sums the window front to back, then divides once.
func calculateSimpleMovingAverage(window []float64) float64 {
	sum := 0.0
	for _, price := range window {
		sum += price
	}

	return sum / float64(len(window))
}
