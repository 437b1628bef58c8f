package ndimg

import (
	"errors"
	"math"

	. "github.com/janelia-flyem/go/gocheck"
)

func (s *CoreSuite) TestPoint(c *C) {
	a := Point{10, 21, 837821}
	b := Point{78312, -200, 40123}
	c.Assert(a.Add(b), DeepEquals, Point{78322, -179, 877944})
	c.Assert(a.Sub(b), DeepEquals, Point{-78302, 221, 797698})
	c.Assert(a.AddScalar(10), DeepEquals, Point{20, 31, 837831})
	c.Assert(a.String(), Equals, "(10,21,837821)")

	result, changed := a.Max(b)
	c.Assert(changed, Equals, true)
	c.Assert(result, DeepEquals, Point{78312, 21, 837821})
	result, _ = b.Min(a)
	c.Assert(result, DeepEquals, Point{10, -200, 40123})

	c.Assert(Point{2, 3, 4}.Prod(), Equals, int64(24))
	c.Assert(a.Equals(a.Duplicate()), Equals, true)
	c.Assert(a.Equals(Point{10, 21}), Equals, false)

	_, err := a.CheckedValue(3)
	c.Assert(err, NotNil)

	p, err := StringToPoint("4, 5,6", ",")
	c.Assert(err, IsNil)
	c.Assert(p, DeepEquals, Point{4, 5, 6})
	_, err = StringToPoint("4,x", ",")
	c.Assert(err, NotNil)
}

func (s *CoreSuite) TestIndexing(c *C) {
	dim := []int64{4, 3, 2}
	c.Assert(Steps(dim), DeepEquals, []int64{1, 4, 12})

	pos := make([]int64, 3)
	for i := int64(0); i < 24; i++ {
		IndexToPosition(i, dim, pos)
		c.Assert(PositionToIndex(pos, dim), Equals, i)
	}
	IndexToPosition(17, dim, pos)
	c.Assert(pos, DeepEquals, []int64{1, 1, 1})
}

func (s *CoreSuite) TestInterval(c *C) {
	iv, err := IntervalFromDims([]int64{4, 3, 2})
	c.Assert(err, IsNil)
	c.Assert(iv.NumDims(), Equals, 3)
	c.Assert(iv.Max(1), Equals, int64(2))
	c.Assert(iv.NumElements(), Equals, int64(24))
	c.Assert(Dimensions(iv), DeepEquals, []int64{4, 3, 2})
	c.Assert(iv.String(), Equals, "[(0,0,0) -> (3,2,1)]")

	_, err = IntervalFromDims([]int64{4, 0})
	c.Assert(errors.Is(err, ErrBadShape), Equals, true)
	_, err = NewFinalInterval([]int64{0}, []int64{1, 2})
	c.Assert(err, NotNil)

	moved := Translate(iv, []int64{2, 2, 2})
	c.Assert(moved.MinPoint(), DeepEquals, Point{2, 2, 2})
	c.Assert(moved.MaxPoint(), DeepEquals, Point{5, 4, 3})

	both, err := Intersect(iv, moved)
	c.Assert(err, IsNil)
	c.Assert(both.MinPoint(), DeepEquals, Point{2, 2, 2})
	c.Assert(both.MaxPoint(), DeepEquals, Point{3, 2, 1})
	c.Assert(both.IsEmpty(), Equals, true)
	c.Assert(both.NumElements(), Equals, int64(0))

	huge, err := NewFinalInterval([]int64{0, 0, 0}, []int64{1 << 31, 1 << 31, 1 << 31})
	c.Assert(err, IsNil)
	_, err = CheckedNumElements(huge)
	c.Assert(errors.Is(err, ErrBadShape), Equals, true)

	full, err := NewFinalInterval([]int64{math.MinInt64}, []int64{math.MaxInt64})
	c.Assert(err, IsNil)
	_, err = CheckedNumElements(full)
	c.Assert(errors.Is(err, ErrBadShape), Equals, true)
	half, err := NewFinalInterval([]int64{0, 0}, []int64{0, math.MaxInt64})
	c.Assert(err, IsNil)
	_, err = CheckedNumElements(half)
	c.Assert(errors.Is(err, ErrBadShape), Equals, true)
	wide, err := NewFinalInterval([]int64{-5}, []int64{math.MaxInt64 - 10})
	c.Assert(err, IsNil)
	n, err := CheckedNumElements(wide)
	c.Assert(err, IsNil)
	c.Assert(n, Equals, int64(math.MaxInt64-4))

	inner, err := NewFinalInterval([]int64{1, 1, 0}, []int64{2, 2, 1})
	c.Assert(err, IsNil)
	c.Assert(ContainsInterval(iv, inner), Equals, true)
	c.Assert(ContainsInterval(inner, iv), Equals, false)
	c.Assert(Contains(iv, []int64{3, 2, 1}), Equals, true)
	c.Assert(Contains(iv, []int64{3, 3, 1}), Equals, false)
	c.Assert(Contains(iv, []int64{0, 0}), Equals, false)

	c.Assert(EqualDimensions(iv, moved), Equals, true)
	c.Assert(EqualDimensions(iv, inner), Equals, false)
	c.Assert(IntervalOf(moved).MinPoint(), DeepEquals, Point{2, 2, 2})
}
