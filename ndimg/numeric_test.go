package ndimg

import (
	"math"
	"math/rand"

	. "github.com/janelia-flyem/go/gocheck"
)

func (s *CoreSuite) TestRound(c *C) {
	c.Assert(Round(2.5), Equals, int32(3))
	c.Assert(Round(-2.5), Equals, int32(-3))
	c.Assert(Round(1.49), Equals, int32(1))
	c.Assert(RoundDouble(-0.4), Equals, int64(0))
	c.Assert(RoundDouble(1e12+0.5), Equals, int64(1e12+1))
	c.Assert(RoundUnsigned(3.6), Equals, uint64(4))
	c.Assert(RoundUnsigned(float64(1<<63)), Equals, uint64(1<<63))
	c.Assert(RoundUnsigned(math.Ldexp(1, 64)-4096), Equals, uint64(math.MaxUint64-4095))
	c.Assert(RoundUnsigned(math.Ldexp(1, 64)), Equals, uint64(math.MaxUint64))
	c.Assert(RoundUnsigned(1e300), Equals, uint64(math.MaxUint64))
	c.Assert(RoundUnsigned(math.Inf(1)), Equals, uint64(math.MaxUint64))
	c.Assert(RoundUnsigned(-3.2), Equals, uint64(0))
	c.Assert(RoundUnsigned(-1e300), Equals, uint64(0))
	c.Assert(RoundUnsigned(math.NaN()), Equals, uint64(0))
}

func (s *CoreSuite) TestUnsignedArithmetic(c *C) {
	c.Assert(CompareUnsigned(-1, 1), Equals, 1)
	c.Assert(CompareUnsigned(1, -1), Equals, -1)
	c.Assert(CompareUnsigned(-5, -5), Equals, 0)
	c.Assert(CompareUnsigned(math.MinInt64, math.MaxInt64), Equals, 1)

	// 2^64-1 divided by 2 and by a divisor at or above 2^63.
	c.Assert(uint64(DivideUnsigned(-1, 2)), Equals, uint64(math.MaxUint64/2))
	c.Assert(DivideUnsigned(-1, math.MinInt64), Equals, int64(1))
	c.Assert(DivideUnsigned(math.MaxInt64, math.MinInt64), Equals, int64(0))
	c.Assert(DivideUnsigned(-3, -2), Equals, int64(1))

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10000; i++ {
		a := rng.Uint64()
		b := rng.Uint64() >> uint(rng.Intn(64))
		if b == 0 {
			b = 1
		}
		want := 0
		if a < b {
			want = -1
		} else if a > b {
			want = 1
		}
		c.Assert(CompareUnsigned(int64(a), int64(b)), Equals, want)
		c.Assert(uint64(DivideUnsigned(int64(a), int64(b))), Equals, a/b)
	}
}

func (s *CoreSuite) TestIntegerHelpers(c *C) {
	c.Assert(CeilDiv(10, 3), Equals, int64(4))
	c.Assert(CeilDiv(9, 3), Equals, int64(3))
	c.Assert(CeilDiv(-7, 3), Equals, int64(-2))
	c.Assert(FloorMod(-7, 3), Equals, int64(2))
	c.Assert(FloorMod(7, 3), Equals, int64(1))
}
