package pixel

import (
	"math"
	"strconv"

	"github.com/janelia-flyem/ndimg/access"
	"github.com/janelia-flyem/ndimg/ndimg"
)

// UnsignedLongType is an unsigned 64-bit integer pixel stored in an int64 block.
// Ordering and division operate on the stored bits as unsigned values.
type UnsignedLongType struct {
	native[int64]
}

// NewUnsignedLongType returns a variable holding v.
func NewUnsignedLongType(v uint64) *UnsignedLongType {
	t := &UnsignedLongType{newNative[int64](1)}
	t.v[0] = int64(v)
	return t
}

func (t *UnsignedLongType) Get() uint64 { return uint64(t.v[t.i]) }

func (t *UnsignedLongType) SetValue(v uint64) { t.v[t.i] = int64(v) }

// Bits returns the stored value reinterpreted as signed.
func (t *UnsignedLongType) Bits() int64 { return t.v[t.i] }

func (t *UnsignedLongType) SetBits(v int64) { t.v[t.i] = v }

func (t *UnsignedLongType) CreateVariable() *UnsignedLongType { return NewUnsignedLongType(0) }

func (t *UnsignedLongType) Copy() *UnsignedLongType { return NewUnsignedLongType(t.Get()) }

func (t *UnsignedLongType) Set(c *UnsignedLongType) { t.v[t.i] = c.v[c.i] }

func (t *UnsignedLongType) Equals(c *UnsignedLongType) bool { return t.v[t.i] == c.v[c.i] }

func (t *UnsignedLongType) String() string { return strconv.FormatUint(t.Get(), 10) }

func (t *UnsignedLongType) Add(c *UnsignedLongType) { t.v[t.i] += c.v[c.i] }

func (t *UnsignedLongType) Sub(c *UnsignedLongType) { t.v[t.i] -= c.v[c.i] }

func (t *UnsignedLongType) Mul(c *UnsignedLongType) { t.v[t.i] *= c.v[c.i] }

// Div never traps on divisors of 2^63 or more.  A zero divisor panics.
func (t *UnsignedLongType) Div(c *UnsignedLongType) {
	t.v[t.i] = ndimg.DivideUnsigned(t.v[t.i], c.v[c.i])
}

func (t *UnsignedLongType) MulFloat(c float32) {
	t.SetValue(ndimg.RoundUnsigned(float64(float32(t.Get()) * c)))
}

func (t *UnsignedLongType) MulDouble(c float64) {
	t.SetValue(ndimg.RoundUnsigned(float64(t.Get()) * c))
}

func (t *UnsignedLongType) SetOne() { t.v[t.i] = 1 }

func (t *UnsignedLongType) SetZero() { t.v[t.i] = 0 }

func (t *UnsignedLongType) Inc() { t.v[t.i]++ }

func (t *UnsignedLongType) Dec() { t.v[t.i]-- }

func (t *UnsignedLongType) CompareTo(c *UnsignedLongType) int {
	return ndimg.CompareUnsigned(t.v[t.i], c.v[c.i])
}

func (t *UnsignedLongType) Integer() int { return int(t.v[t.i]) }

func (t *UnsignedLongType) IntegerLong() int64 { return t.v[t.i] }

func (t *UnsignedLongType) SetInteger(v int64) { t.v[t.i] = v }

func (t *UnsignedLongType) RealFloat() float32 { return float32(t.Get()) }

func (t *UnsignedLongType) RealDouble() float64 { return float64(t.Get()) }

func (t *UnsignedLongType) SetRealFloat(f float32) { t.SetRealDouble(float64(f)) }

func (t *UnsignedLongType) SetRealDouble(f float64) { t.SetValue(ndimg.RoundUnsigned(f)) }

func (t *UnsignedLongType) MinValue() float64 { return 0 }

func (t *UnsignedLongType) MaxValue() float64 { return math.MaxUint64 }

func (t *UnsignedLongType) EntitiesPerPixel() int { return 1 }

func (t *UnsignedLongType) BitsPerPixel() int { return 64 }

func (t *UnsignedLongType) DataType() ndimg.DataType { return ndimg.T_uint64 }

func (t *UnsignedLongType) Primitive() ndimg.DataType { return ndimg.T_int64 }

func (t *UnsignedLongType) Link(owner access.Owner) *UnsignedLongType {
	return &UnsignedLongType{native[int64]{owner: owner}}
}

func (t *UnsignedLongType) CreateSuitableContainer(f ndimg.ImgFactory[*UnsignedLongType], dim []int64) (ndimg.Img[*UnsignedLongType], error) {
	return f.Create(dim, t)
}
