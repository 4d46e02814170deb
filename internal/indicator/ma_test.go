package indicator

import (
	"testing"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-montecarlo/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type SMATestSuite struct {
	suite.Suite
}

func TestSMASuite(t *testing.T) {
	suite.Run(t, new(SMATestSuite))
}

func (suite *SMATestSuite) TestWarmupIsUndefined() {
	series, err := SMA([]float64{1, 2, 3, 4, 5}, 3)
	suite.Require().NoError(err)
	suite.Require().Len(series, 5)

	suite.True(series[0].IsNone())
	suite.True(series[1].IsNone())
	suite.InDelta(2.0, series[2].Unwrap(), 1e-12)
	suite.InDelta(3.0, series[3].Unwrap(), 1e-12)
	suite.InDelta(4.0, series[4].Unwrap(), 1e-12)
}

func (suite *SMATestSuite) TestWindowOfOneIsThePriceItself() {
	prices := []float64{100, 102, 101, 105}
	series, err := SMA(prices, 1)
	suite.Require().NoError(err)

	for t, value := range series {
		suite.True(value.IsSome())
		suite.Equal(prices[t], value.Unwrap())
	}
}

func (suite *SMATestSuite) TestWindowLongerThanSeries() {
	series, err := SMA([]float64{1, 2, 3}, 4)
	suite.Require().NoError(err)
	suite.Len(series, 3)

	for _, value := range series {
		suite.True(value.IsNone())
	}
}

func (suite *SMATestSuite) TestEmptySeries() {
	series, err := SMA(nil, 2)
	suite.Require().NoError(err)
	suite.Empty(series)
}

func (suite *SMATestSuite) TestInvalidWindow() {
	_, err := SMA([]float64{1, 2}, 0)
	suite.Error(err)
	suite.True(errors.IsInvalidParameter(err))
	suite.Contains(err.Error(), "window must be >= 1")
}

func (suite *SMATestSuite) TestPrefixStability() {
	prices := []float64{10, 11, 9, 12, 14, 13, 15, 16}

	full, err := SMA(prices, 3)
	suite.Require().NoError(err)

	prefix, err := SMA(prices[:5], 3)
	suite.Require().NoError(err)

	suite.Equal(full[:5], prefix)
}

func (suite *SMATestSuite) TestCompare() {
	none := optional.None[float64]()

	suite.Equal(CrossUndefined, Compare(none, optional.Some(1.0)))
	suite.Equal(CrossUndefined, Compare(optional.Some(1.0), none))
	suite.Equal(CrossUndefined, Compare(none, none))
	suite.Equal(CrossAbove, Compare(optional.Some(2.0), optional.Some(1.0)))
	suite.Equal(CrossBelow, Compare(optional.Some(1.0), optional.Some(2.0)))
	suite.Equal(CrossBelow, Compare(optional.Some(1.0), optional.Some(1.0)))
}

func (suite *SMATestSuite) TestCrossStates() {
	prices := []float64{5, 4, 3, 4, 6, 8}
	short, err := SMA(prices, 1)
	suite.Require().NoError(err)
	long, err := SMA(prices, 3)
	suite.Require().NoError(err)

	states, err := CrossStates(short, long)
	suite.Require().NoError(err)

	// long SMA: -, -, 4, 3.667, 4.333, 6
	suite.Equal([]CrossState{CrossUndefined, CrossUndefined, CrossBelow, CrossAbove, CrossAbove, CrossAbove}, states)
}

func (suite *SMATestSuite) TestCrossStatesMisaligned() {
	_, err := CrossStates(make([]optional.Option[float64], 2), make([]optional.Option[float64], 3))
	suite.True(errors.IsInvalidInput(err))
}

func (suite *SMATestSuite) TestCrossStateString() {
	suite.Equal("undefined", CrossUndefined.String())
	suite.Equal("below", CrossBelow.String())
	suite.Equal("above", CrossAbove.String())
	suite.Equal("unknown", CrossState(42).String())
}
