package ndimg

import (
	"errors"
	"testing"

	. "github.com/janelia-flyem/go/gocheck"
)

func Test(t *testing.T) { TestingT(t) }

type CoreSuite struct{}

var _ = Suite(&CoreSuite{})

func (s *CoreSuite) TestDataType(c *C) {
	c.Assert(DataTypeBytes(T_uint16), Equals, 2)
	c.Assert(DataTypeBytes(T_float64), Equals, 8)
	c.Assert(T_int32.Bits(), Equals, 32)
	c.Assert(T_uint8.String(), Equals, "uint8")

	dt, err := ParseDataType("float32")
	c.Assert(err, IsNil)
	c.Assert(dt, Equals, T_float32)
	_, err = ParseDataType("float128")
	c.Assert(err, NotNil)

	c.Assert(T_uint8.Storage(), Equals, T_int8)
	c.Assert(T_uint64.Storage(), Equals, T_int64)
	c.Assert(T_float32.Storage(), Equals, T_float32)
	c.Assert(T_uint16.IsStorage(), Equals, false)
	c.Assert(T_int16.IsStorage(), Equals, true)

	b, err := T_uint32.MarshalJSON()
	c.Assert(err, IsNil)
	c.Assert(string(b), Equals, `"uint32"`)
	var back DataType
	c.Assert(back.UnmarshalJSON(b), IsNil)
	c.Assert(back, Equals, T_uint32)
}

func (s *CoreSuite) TestCheckShape(c *C) {
	n, err := CheckShape([]int64{4, 3, 2, 5})
	c.Assert(err, IsNil)
	c.Assert(n, Equals, int64(120))

	for _, dim := range [][]int64{
		nil,
		{3, 0, 2},
		{-1},
		{1 << 40, 1 << 40},
		make([]int64, MaxDimensions+1),
	} {
		_, err := CheckShape(dim)
		c.Assert(err, NotNil)
		c.Assert(errors.Is(err, ErrBadShape), Equals, true)
	}

	_, err = CheckedMul(1<<32, 1<<31)
	c.Assert(errors.Is(err, ErrBadShape), Equals, true)
	v, err := CheckedMul(1<<31, 1<<31)
	c.Assert(err, IsNil)
	c.Assert(v, Equals, int64(1<<62))
}

func (s *CoreSuite) TestCommand(c *C) {
	cmd := Command{"bench", "planar", "extra", "dims=10,20,3", "iters=5", "foo=bar"}
	c.Assert(cmd.Name(), Equals, "bench")
	c.Assert(cmd.String(), Equals, "bench planar extra dims=10,20,3 iters=5 foo=bar")

	value, found := cmd.Parameter(KeyDims)
	c.Assert(found, Equals, true)
	c.Assert(value, Equals, "10,20,3")
	_, found = cmd.Parameter(KeyLayout)
	c.Assert(found, Equals, false)
	c.Assert(cmd.ParameterOr(KeyLayout, "array"), Equals, "array")

	iters, err := cmd.IntParameter(KeyIters, 1)
	c.Assert(err, IsNil)
	c.Assert(iters, Equals, 5)
	workers, err := cmd.IntParameter(KeyWorkers, 4)
	c.Assert(err, IsNil)
	c.Assert(workers, Equals, 4)

	dims, err := cmd.Dims(nil)
	c.Assert(err, IsNil)
	c.Assert(dims, DeepEquals, []int64{10, 20, 3})

	var layout, second string
	overflow := cmd.CommandArgs(&layout, &second)
	c.Assert(layout, Equals, "planar")
	c.Assert(second, Equals, "extra")
	c.Assert(overflow, DeepEquals, []string{"foo=bar"})

	bad := Command{"check", "dims=10,0"}
	_, err = bad.Dims(nil)
	c.Assert(errors.Is(err, ErrBadShape), Equals, true)
}
