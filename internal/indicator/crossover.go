package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-montecarlo/pkg/errors"
)

// CrossState is the relation between a short and a long moving average at one index.
type CrossState int

const (
	// CrossUndefined means at least one of the averages is still warming up.
	CrossUndefined CrossState = iota
	// CrossBelow means short <= long.
	CrossBelow
	// CrossAbove means short > long.
	CrossAbove
)

func (s CrossState) String() string {
	switch s {
	case CrossUndefined:
		return "undefined"
	case CrossBelow:
		return "below"
	case CrossAbove:
		return "above"
	default:
		return "unknown"
	}
}

// Compare classifies one index. Undefined averages never compare as above.
func Compare(short, long optional.Option[float64]) CrossState {
	if short.IsNone() || long.IsNone() {
		return CrossUndefined
	}

	if short.Unwrap() > long.Unwrap() {
		return CrossAbove
	}

	return CrossBelow
}

// CrossStates classifies every index of two aligned SMA series.
func CrossStates(short, long []optional.Option[float64]) ([]CrossState, error) {
	if len(short) != len(long) {
		return nil, errors.InvalidInputf("sma series must be aligned, got %d and %d points", len(short), len(long))
	}

	states := make([]CrossState, len(short))
	for t := range short {
		states[t] = Compare(short[t], long[t])
	}

	return states, nil
}
