package metrics

import (
	"math"

	"github.com/rxtech-lab/argo-montecarlo/pkg/errors"
)

// Annualization scales per-step statistics to a yearly horizon.
// Volatility is multiplied by sqrt(PeriodsPerYear); the zero value means no scaling.
type Annualization struct {
	PeriodsPerYear float64 `yaml:"periods_per_year" json:"periods_per_year"`
}

// PerStep reports statistics per simulation step.
func PerStep() Annualization {
	return Annualization{PeriodsPerYear: 1}
}

// FromStepSize annualizes with one period per step of size stepSize years,
// e.g. 1/252 gives 252 periods per year.
func FromStepSize(stepSize float64) (Annualization, error) {
	if !(stepSize > 0) || math.IsInf(stepSize, 0) {
		return Annualization{}, errors.InvalidParameterf("step_size must be > 0, got %v", stepSize)
	}

	return Annualization{PeriodsPerYear: 1 / stepSize}, nil
}

// Validate rejects negative or non-finite period counts. Zero is allowed and means per step.
func (a Annualization) Validate() error {
	if a.PeriodsPerYear < 0 || math.IsNaN(a.PeriodsPerYear) || math.IsInf(a.PeriodsPerYear, 0) {
		return errors.InvalidParameterf("periods_per_year must be >= 0, got %v", a.PeriodsPerYear)
	}

	return nil
}

func (a Annualization) periods() float64 {
	if a.PeriodsPerYear > 0 {
		return a.PeriodsPerYear
	}

	return 1
}

// MaxDrawdown returns the largest fractional decline of equity from its running
// peak, as a non-negative number (0.25 means 25%). Curves shorter than 2 points
// have no drawdown.
func MaxDrawdown(equity []float64) (float64, error) {
	if len(equity) < 2 {
		return 0, nil
	}

	for t, value := range equity {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return 0, errors.InvalidInputf("equity[%d] is not a finite number: %v", t, value)
		}
	}

	peak := equity[0]
	maxDrawdown := 0.0

	for _, value := range equity {
		if value > peak {
			peak = value
		}

		drawdown := 1 - value/peak
		if drawdown > maxDrawdown {
			maxDrawdown = drawdown
		}
	}

	return maxDrawdown, nil
}

// Volatility is the sample standard deviation (n-1) of returns scaled by
// sqrt(PeriodsPerYear). Fewer than 2 returns give 0.
func Volatility(returns []float64, annualization Annualization) float64 {
	if len(returns) < 2 {
		return 0
	}

	return sampleStdDev(returns, mean(returns)) * math.Sqrt(annualization.periods())
}

// SharpeRatio is the mean excess return per unit of volatility, annualized like
// Volatility. riskFreeRate is a yearly rate, spread evenly over the periods.
// Returns 0 when there are fewer than 2 returns or the returns do not vary.
func SharpeRatio(returns []float64, riskFreeRate float64, annualization Annualization) float64 {
	if len(returns) < 2 {
		return 0
	}

	periods := annualization.periods()
	stepRate := riskFreeRate / periods

	excess := make([]float64, len(returns))
	for t, r := range returns {
		excess[t] = r - stepRate
	}

	excessMean := mean(excess)

	stdDev := sampleStdDev(excess, excessMean)
	if stdDev == 0 || math.IsNaN(stdDev) {
		return 0
	}

	return excessMean / stdDev * math.Sqrt(periods)
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

// sampleStdDev is exactly 0 for a constant series, whatever rounding the mean picked up.
func sampleStdDev(values []float64, avg float64) float64 {
	if isConstant(values) {
		return 0
	}

	sumSquares := 0.0
	for _, v := range values {
		d := v - avg
		sumSquares += d * d
	}

	return math.Sqrt(sumSquares / float64(len(values)-1))
}

func isConstant(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}

	return true
}
