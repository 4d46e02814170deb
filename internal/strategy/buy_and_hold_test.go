package strategy

import (
	"testing"

	"github.com/rxtech-lab/argo-montecarlo/internal/types"
	"github.com/rxtech-lab/argo-montecarlo/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type BuyAndHoldTestSuite struct {
	suite.Suite
}

func TestBuyAndHoldSuite(t *testing.T) {
	suite.Run(t, new(BuyAndHoldTestSuite))
}

func (suite *BuyAndHoldTestSuite) TestWorkedExample() {
	strategy, err := NewBuyAndHold(10_000)
	suite.Require().NoError(err)

	res, err := strategy.Evaluate(types.PricePath{100, 102, 101, 105})
	suite.Require().NoError(err)

	suite.Equal([]float64{10000, 10002, 10001, 10005}, res.Equity)
	suite.InDelta(5.0, res.PnL, 1e-9)
	suite.InDelta(0.0005, res.TotalReturn, 1e-12)
	suite.Equal(res.Equity[3]/res.Equity[0]-1, res.TotalReturn)

	suite.Require().Len(res.Returns, 3)
	suite.InDelta(10002.0/10000.0-1, res.Returns[0], 1e-15)
	suite.InDelta(10001.0/10002.0-1, res.Returns[1], 1e-15)
	suite.InDelta(10005.0/10001.0-1, res.Returns[2], 1e-15)
}

func (suite *BuyAndHoldTestSuite) TestDoesNotModifyPath() {
	strategy, err := NewBuyAndHold(DefaultInitialCash)
	suite.Require().NoError(err)

	path := types.PricePath{100, 90, 120}
	_, err = strategy.Evaluate(path)
	suite.Require().NoError(err)
	suite.Equal(types.PricePath{100, 90, 120}, path)
}

func (suite *BuyAndHoldTestSuite) TestTooShortPath() {
	strategy, err := NewBuyAndHold(DefaultInitialCash)
	suite.Require().NoError(err)

	for _, path := range []types.PricePath{nil, {100}} {
		_, err := strategy.Evaluate(path)
		suite.Error(err)
		suite.True(errors.IsInvalidInput(err))
	}
}

func (suite *BuyAndHoldTestSuite) TestInvalidInitialCash() {
	for _, cash := range []float64{0, -1} {
		strategy, err := NewBuyAndHold(cash)
		suite.Nil(strategy)
		suite.True(errors.IsInvalidParameter(err))
	}
}

func (suite *BuyAndHoldTestSuite) TestIdentity() {
	strategy, err := NewBuyAndHold(500)
	suite.Require().NoError(err)

	suite.Equal("buy_and_hold", strategy.Name())
	suite.Equal(StrategyTypeBuyAndHold, strategy.Type())
	suite.Equal(500.0, strategy.InitialCash())
}
