package types

import (
	"math"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-montecarlo/pkg/errors"
)

// ProcessParams fully determines a GBM simulation. It is a value type; callers
// construct it once and never mutate it afterwards.
type ProcessParams struct {
	// InitialPrice is the price at step 0 of every path. Must be > 0.
	InitialPrice float64 `yaml:"initial_price" json:"initial_price"`
	// Drift is the annualized expected return (mu).
	Drift float64 `yaml:"drift" json:"drift"`
	// Volatility is the annualized diffusion coefficient (sigma). Must be >= 0.
	Volatility float64 `yaml:"volatility" json:"volatility"`
	// StepSize is the length of one step in years (dt). Must be > 0.
	StepSize float64 `yaml:"step_size" json:"step_size"`
	// StepCount is the number of increments per path. Paths have StepCount+1 points.
	StepCount int `yaml:"step_count" json:"step_count"`
	// PathCount is the number of paths in the ensemble.
	PathCount int `yaml:"path_count" json:"path_count"`
	// Seed makes the simulation reproducible. None draws a fresh seed per call.
	Seed optional.Option[int64] `yaml:"-" json:"-"`
}

// Validate checks the parameter contract. It never computes anything else.
func (p ProcessParams) Validate() error {
	if !(p.InitialPrice > 0) || math.IsInf(p.InitialPrice, 0) {
		return errors.InvalidParameterf("initial_price must be > 0, got %v", p.InitialPrice)
	}

	if math.IsNaN(p.Drift) || math.IsInf(p.Drift, 0) {
		return errors.InvalidParameterf("drift must be finite, got %v", p.Drift)
	}

	if !(p.Volatility >= 0) || math.IsInf(p.Volatility, 0) {
		return errors.InvalidParameterf("volatility must be >= 0, got %v", p.Volatility)
	}

	if !(p.StepSize > 0) || math.IsInf(p.StepSize, 0) {
		return errors.InvalidParameterf("step_size must be > 0, got %v", p.StepSize)
	}

	if p.StepCount <= 0 || p.PathCount <= 0 {
		return errors.InvalidParameterf("step_count and path_count must be > 0, got %d and %d", p.StepCount, p.PathCount)
	}

	return nil
}

// PeriodsPerYear is the number of simulation steps in one unit of time.
func (p ProcessParams) PeriodsPerYear() float64 {
	return 1 / p.StepSize
}

// PathLength is the number of points in every path of the ensemble.
func (p ProcessParams) PathLength() int {
	return p.StepCount + 1
}

// PricePath is one simulated price series. Index 0 is the initial price.
type PricePath []float64

// Last returns the final price, or 0 for an empty path.
func (p PricePath) Last() float64 {
	if len(p) == 0 {
		return 0
	}

	return p[len(p)-1]
}

// Ensemble is the output of one simulation. Paths is read-only for every consumer.
type Ensemble struct {
	Params ProcessParams
	// Seed is the seed actually used, including the one drawn for unseeded runs.
	Seed  uint64
	Paths []PricePath
}

// Len returns the number of paths.
func (e Ensemble) Len() int {
	return len(e.Paths)
}

// Validate rejects empty and ragged ensembles.
func (e Ensemble) Validate() error {
	if len(e.Paths) == 0 {
		return errors.InvalidInputf("ensemble has no paths")
	}

	length := len(e.Paths[0])
	for i, path := range e.Paths {
		if len(path) != length {
			return errors.InvalidInputf("path %d has %d points, expected %d", i, len(path), length)
		}
	}

	return nil
}
