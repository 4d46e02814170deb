package mocks

import (
	"math"
	"math/rand/v2"

	"github.com/rxtech-lab/argo-montecarlo/internal/types"
)

// PathGenerator builds price paths and ensembles for tests without going
// through the GBM simulator.
type PathGenerator struct {
	rng *rand.Rand
}

// NewPathGenerator creates a new PathGenerator with the given seed.
// Use a fixed seed for reproducible results in tests.
func NewPathGenerator(seed uint64) *PathGenerator {
	return &PathGenerator{
		rng: rand.New(rand.NewPCG(seed, seed)),
	}
}

// GeneratorConfig configures how random-walk paths are generated.
type GeneratorConfig struct {
	// Length is the number of points per path, including the initial price.
	Length int
	// InitialPrice is the starting price
	InitialPrice float64
	// Volatility is the per-step standard deviation of returns (0.01 = 1%)
	Volatility float64
	// Trend is the per-step drift of returns
	Trend float64
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		Length:       253,
		InitialPrice: 100.0,
		Volatility:   0.0125, // roughly 20% annualized over 252 steps
		Trend:        0.0003,
	}
}

// RandomWalk creates a multiplicative random walk. Prices stay positive.
func (g *PathGenerator) RandomWalk(config GeneratorConfig) types.PricePath {
	path := make(types.PricePath, config.Length)
	if config.Length == 0 {
		return path
	}

	path[0] = config.InitialPrice
	for t := 1; t < config.Length; t++ {
		next := path[t-1] * (1 + config.Trend + config.Volatility*g.rng.NormFloat64())
		if next <= 0 {
			next = path[t-1] * 0.99
		}

		path[t] = roundToDecimals(next, 6)
	}

	return path
}

// Ensemble creates count random-walk paths sharing the same config.
func (g *PathGenerator) Ensemble(count int, config GeneratorConfig) types.Ensemble {
	paths := make([]types.PricePath, count)
	for i := range paths {
		paths[i] = g.RandomWalk(config)
	}

	return EnsembleOf(paths...)
}

// Linear creates a path moving from start by step on every point.
func Linear(length int, start, step float64) types.PricePath {
	path := make(types.PricePath, length)
	for t := range path {
		path[t] = start + step*float64(t)
	}

	return path
}

// Oscillating creates a path swinging around center with the given amplitude and period.
func Oscillating(length int, center, amplitude float64, period int) types.PricePath {
	path := make(types.PricePath, length)
	for t := range path {
		path[t] = center + amplitude*math.Sin(2*math.Pi*float64(t)/float64(period))
	}

	return path
}

// EnsembleOf wraps hand-built paths into an ensemble with per-step annualization.
func EnsembleOf(paths ...types.PricePath) types.Ensemble {
	ensemble := types.Ensemble{Paths: paths}
	if len(paths) > 0 && len(paths[0]) > 1 {
		ensemble.Params = types.ProcessParams{
			InitialPrice: paths[0][0],
			StepSize:     1,
			StepCount:    len(paths[0]) - 1,
			PathCount:    len(paths),
		}
	}

	return ensemble
}

// roundToDecimals rounds a float64 to the specified number of decimal places.
func roundToDecimals(val float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(val*pow) / pow
}
