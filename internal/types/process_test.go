package types

import (
	"math"
	"testing"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-montecarlo/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type ProcessParamsTestSuite struct {
	suite.Suite
}

func TestProcessParamsSuite(t *testing.T) {
	suite.Run(t, new(ProcessParamsTestSuite))
}

func validParams() ProcessParams {
	return ProcessParams{
		InitialPrice: 100,
		Drift:        0.08,
		Volatility:   0.2,
		StepSize:     1.0 / 252,
		StepCount:    252,
		PathCount:    10,
		Seed:         optional.Some[int64](42),
	}
}

func (suite *ProcessParamsTestSuite) TestValid() {
	suite.NoError(validParams().Validate())

	zeroVol := validParams()
	zeroVol.Volatility = 0
	suite.NoError(zeroVol.Validate())
}

func (suite *ProcessParamsTestSuite) TestInvalid() {
	tests := []struct {
		name   string
		mutate func(p *ProcessParams)
	}{
		{"zero initial price", func(p *ProcessParams) { p.InitialPrice = 0 }},
		{"negative initial price", func(p *ProcessParams) { p.InitialPrice = -1 }},
		{"NaN initial price", func(p *ProcessParams) { p.InitialPrice = math.NaN() }},
		{"negative volatility", func(p *ProcessParams) { p.Volatility = -0.01 }},
		{"zero step size", func(p *ProcessParams) { p.StepSize = 0 }},
		{"zero step count", func(p *ProcessParams) { p.StepCount = 0 }},
		{"negative path count", func(p *ProcessParams) { p.PathCount = -3 }},
		{"infinite drift", func(p *ProcessParams) { p.Drift = math.Inf(1) }},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			p := validParams()
			tt.mutate(&p)
			err := p.Validate()
			suite.Error(err)
			suite.True(errors.IsInvalidParameter(err))
		})
	}
}

func (suite *ProcessParamsTestSuite) TestDerivedValues() {
	p := validParams()
	suite.InDelta(252.0, p.PeriodsPerYear(), 1e-9)
	suite.Equal(253, p.PathLength())
}

func (suite *ProcessParamsTestSuite) TestEnsembleValidate() {
	suite.True(errors.IsInvalidInput(Ensemble{}.Validate()))

	ragged := Ensemble{Paths: []PricePath{{1, 2, 3}, {1, 2}}}
	err := ragged.Validate()
	suite.True(errors.IsInvalidInput(err))
	suite.Contains(err.Error(), "path 1")

	ok := Ensemble{Paths: []PricePath{{1, 2}, {3, 4}}}
	suite.NoError(ok.Validate())
	suite.Equal(2, ok.Len())
	suite.Equal(4.0, ok.Paths[1].Last())
	suite.Equal(0.0, PricePath{}.Last())
}
