package dice_test

import (
	"testing"

	"github.com/KirkDiggler/gamedice/dice"
	"github.com/KirkDiggler/gamedice/dice/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PoolTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRoller *mocks.MockRoller

	d6    dice.Die
	d2_14 dice.Die
}

func (s *PoolTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoller = mocks.NewMockRoller(s.mockCtrl)

	var err error
	s.d6, err = dice.NewDie(6)
	s.Require().NoError(err)

	s.d2_14, err = dice.NewDieRange(2, 14)
	s.Require().NoError(err)
}

func TestPoolTestSuite(t *testing.T) {
	suite.Run(t, new(PoolTestSuite))
}

func (s *PoolTestSuite) TestEmptyPool() {
	pool := dice.NewPool()

	s.Empty(pool.Entries())
	s.Equal(0, pool.Modifier())
	s.Equal(0, pool.Roll(s.mockRoller))
	s.Equal(0.0, pool.Average())
	s.Equal("0", pool.String())
}

func (s *PoolTestSuite) TestCombinationString() {
	pool, err := s.d6.Add(s.d2_14)
	s.Require().NoError(err)
	s.Equal("1d6 + 1d13 + 1", pool.String())

	pool, err = pool.Sub(5)
	s.Require().NoError(err)
	s.Equal("1d6 + 1d13 - 4", pool.String())
}

func (s *PoolTestSuite) TestCombinationLeavesOperandsUntouched() {
	pool, err := s.d6.Add(s.d2_14)
	s.Require().NoError(err)

	reduced, err := pool.Sub(5)
	s.Require().NoError(err)

	// The original pool is reusable after being combined
	s.Equal("1d6 + 1d13 + 1", pool.String())
	s.Equal("1d6 + 1d13 - 4", reduced.String())
}

func (s *PoolTestSuite) TestStringNetsCongruentDice() {
	pool, err := s.d6.Times(5)
	s.Require().NoError(err)
	s.Equal("5d6", pool.String())

	pool, err = pool.Sub(s.d6)
	s.Require().NoError(err)
	s.Equal("4d6", pool.String())
}

func (s *PoolTestSuite) TestStringLeadingNegative() {
	pool, err := dice.NewPool().Sub(s.d6)
	s.Require().NoError(err)
	s.Equal("-1d6", pool.String())
}

func (s *PoolTestSuite) TestStringBareModifier() {
	pool, err := dice.NewPool().Add(7)
	s.Require().NoError(err)
	s.Equal("7", pool.String())

	pool, err = dice.NewPool().Sub(7)
	s.Require().NoError(err)
	s.Equal("-7", pool.String())
}

func (s *PoolTestSuite) TestRoll() {
	pool, err := s.d6.Add(s.d2_14)
	s.Require().NoError(err)
	pool, err = pool.Sub(5)
	s.Require().NoError(err)

	s.mockRoller.EXPECT().Roll(6).Return(3)
	s.mockRoller.EXPECT().Roll(13).Return(10)

	// 3 + (10 + 1) - 5
	s.Equal(9, pool.Roll(s.mockRoller))
}

func (s *PoolTestSuite) TestRollSubtractedDie() {
	pool, err := s.d6.Times(1)
	s.Require().NoError(err)
	pool, err = pool.Sub(s.d6)
	s.Require().NoError(err)

	gomock.InOrder(
		s.mockRoller.EXPECT().Roll(6).Return(5),
		s.mockRoller.EXPECT().Roll(6).Return(2),
	)

	s.Equal(3, pool.Roll(s.mockRoller))
}

func (s *PoolTestSuite) TestAddPool() {
	left, err := s.d6.Add(2)
	s.Require().NoError(err)
	right, err := s.d2_14.Add(3)
	s.Require().NoError(err)

	pool, err := left.Add(right)
	s.Require().NoError(err)

	s.Len(pool.Entries(), 2)
	s.Equal(5, pool.Modifier())
	s.Equal("1d6 + 1d13 + 6", pool.String())
}

func (s *PoolTestSuite) TestSubPool() {
	left, err := s.d6.Add(2)
	s.Require().NoError(err)
	right, err := s.d2_14.Add(3)
	s.Require().NoError(err)

	pool, err := left.Sub(right)
	s.Require().NoError(err)

	entries := pool.Entries()
	s.Require().Len(entries, 2)
	s.Equal(1, entries[0].Sign)
	s.Equal(-1, entries[1].Sign)
	s.Equal(-1, pool.Modifier())
	s.Equal("1d6 - 1d13 - 2", pool.String())
}

func (s *PoolTestSuite) TestUnsupportedOperand() {
	pool := dice.PoolOf(s.d6)

	_, err := pool.Add(3.5)
	s.Require().ErrorIs(err, dice.ErrUnsupportedOperand)

	_, err = pool.Sub("1d6")
	s.Require().ErrorIs(err, dice.ErrUnsupportedOperand)
}

func (s *PoolTestSuite) TestScale() {
	pool, err := s.d6.Add(2)
	s.Require().NoError(err)

	scaled, err := pool.Scale(3)
	s.Require().NoError(err)

	s.Len(scaled.Entries(), 3)
	s.Equal(6, scaled.Modifier())
	s.Equal("3d6 + 6", scaled.String())
}

func (s *PoolTestSuite) TestScaleZero() {
	pool, err := s.d6.Add(2)
	s.Require().NoError(err)

	scaled, err := pool.Scale(0)
	s.Require().NoError(err)
	s.Empty(scaled.Entries())
	s.Equal(0, scaled.Modifier())
}

func (s *PoolTestSuite) TestScaleNegative() {
	_, err := dice.PoolOf(s.d6).Scale(-2)
	s.Require().ErrorIs(err, dice.ErrNegativeCount)
}

func (s *PoolTestSuite) TestAverageIsLinear() {
	pool, err := s.d6.Add(s.d2_14)
	s.Require().NoError(err)
	s.InDelta(s.d6.Average()+s.d2_14.Average(), pool.Average(), 1e-12)

	scaled, err := s.d6.Times(2)
	s.Require().NoError(err)
	s.Equal(7.0, scaled.Average())

	scaled, err = scaled.Scale(3)
	s.Require().NoError(err)
	s.Equal(21.0, scaled.Average())
}

func (s *PoolTestSuite) TestAverageHonorsSign() {
	pool, err := s.d6.Sub(s.d2_14)
	s.Require().NoError(err)
	s.InDelta(3.5-8.0, pool.Average(), 1e-12)
}

func (s *PoolTestSuite) TestMinMax() {
	pool, err := s.d6.Add(s.d2_14)
	s.Require().NoError(err)
	pool, err = pool.Sub(5)
	s.Require().NoError(err)

	s.Equal(-2, pool.Min())
	s.Equal(15, pool.Max())
}

func (s *PoolTestSuite) TestRGETwoDSix() {
	pool, err := s.d6.Times(2)
	s.Require().NoError(err)

	// 21 of 36 combinations total 7 or more
	s.Equal(0.5833333333333334, pool.RGE(7))
}

func (s *PoolTestSuite) TestRGEClamps() {
	pool, err := s.d6.Times(2)
	s.Require().NoError(err)

	s.Equal(1.0, pool.RGE(2))
	s.Equal(0.0, pool.RGE(13))
}

func (s *PoolTestSuite) TestComplementarity() {
	pool, err := s.d6.Add(s.d2_14)
	s.Require().NoError(err)

	for threshold := pool.Min() - 1; threshold <= pool.Max()+1; threshold++ {
		s.InDelta(1.0, pool.RGE(threshold)+pool.RLT(threshold), 1e-12)
		s.InDelta(1.0, pool.RGT(threshold)+pool.RLE(threshold), 1e-12)
	}
}

func (s *PoolTestSuite) TestDistribution() {
	pool, err := s.d6.Times(2)
	s.Require().NoError(err)

	dist := pool.Distribution()
	s.Len(dist, 11)
	s.InDelta(6.0/36.0, dist[7], 1e-12)
	s.InDelta(1.0/36.0, dist[2], 1e-12)
	s.InDelta(1.0/36.0, dist[12], 1e-12)
}

func (s *PoolTestSuite) TestEqual() {
	twoDSix, err := s.d6.Times(2)
	s.Require().NoError(err)

	s.True(twoDSix.Equal(dice.PoolOf(s.d6, s.d6)))

	// A shifted d6 and a d6 plus a constant are the same distribution
	shifted, err := dice.NewDieRange(2, 7)
	s.Require().NoError(err)
	plusOne, err := s.d6.Add(1)
	s.Require().NoError(err)
	s.True(plusOne.Equal(dice.PoolOf(shifted)))

	// Two dice are not one die of doubled range
	d11, err := dice.NewDieRange(2, 12)
	s.Require().NoError(err)
	s.False(twoDSix.Equal(dice.PoolOf(d11)))
}

func (s *PoolTestSuite) TestHistogram() {
	coin, err := dice.NewDie(2)
	s.Require().NoError(err)

	s.Equal("1\t. \n2\t. \n", dice.PoolOf(coin).Histogram())

	pair, err := coin.Times(2)
	s.Require().NoError(err)
	s.Equal("2\t. \n3\t. . \n4\t. \n", pair.Histogram())
}

func (s *PoolTestSuite) TestRollStaysInRange() {
	roller := dice.New(&dice.Config{Seed: 7})

	pool, err := s.d6.Add(s.d2_14)
	s.Require().NoError(err)
	pool, err = pool.Sub(5)
	s.Require().NoError(err)

	for i := 0; i < 100; i++ {
		result := pool.Roll(roller)
		s.GreaterOrEqual(result, pool.Min())
		s.LessOrEqual(result, pool.Max())
	}
}
