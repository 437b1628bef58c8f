package pixel

import (
	"math"
	"strconv"

	"github.com/janelia-flyem/ndimg/access"
	"github.com/janelia-flyem/ndimg/ndimg"
)

// FloatType is a 32-bit floating point pixel.
type FloatType struct {
	native[float32]
}

// NewFloatType returns a variable holding v.
func NewFloatType(v float32) *FloatType {
	t := &FloatType{newNative[float32](1)}
	t.v[0] = v
	return t
}

func (t *FloatType) Get() float32 { return t.v[t.i] }

func (t *FloatType) SetValue(v float32) { t.v[t.i] = v }

func (t *FloatType) CreateVariable() *FloatType { return NewFloatType(0) }

func (t *FloatType) Copy() *FloatType { return NewFloatType(t.Get()) }

func (t *FloatType) Set(c *FloatType) { t.v[t.i] = c.v[c.i] }

func (t *FloatType) Equals(c *FloatType) bool { return t.v[t.i] == c.v[c.i] }

func (t *FloatType) String() string { return strconv.FormatFloat(float64(t.Get()), 'g', -1, 32) }

func (t *FloatType) Add(c *FloatType) { t.v[t.i] += c.v[c.i] }

func (t *FloatType) Sub(c *FloatType) { t.v[t.i] -= c.v[c.i] }

func (t *FloatType) Mul(c *FloatType) { t.v[t.i] *= c.v[c.i] }

func (t *FloatType) Div(c *FloatType) { t.v[t.i] /= c.v[c.i] }

func (t *FloatType) MulFloat(c float32) { t.v[t.i] *= c }

func (t *FloatType) MulDouble(c float64) { t.v[t.i] = float32(float64(t.v[t.i]) * c) }

func (t *FloatType) SetOne() { t.v[t.i] = 1 }

func (t *FloatType) SetZero() { t.v[t.i] = 0 }

func (t *FloatType) CompareTo(c *FloatType) int { return compareFloat(t.v[t.i], c.v[c.i]) }

func (t *FloatType) RealFloat() float32 { return t.v[t.i] }

func (t *FloatType) RealDouble() float64 { return float64(t.v[t.i]) }

func (t *FloatType) SetRealFloat(f float32) { t.v[t.i] = f }

func (t *FloatType) SetRealDouble(f float64) { t.v[t.i] = float32(f) }

func (t *FloatType) MinValue() float64 { return -math.MaxFloat32 }

func (t *FloatType) MaxValue() float64 { return math.MaxFloat32 }

func (t *FloatType) EntitiesPerPixel() int { return 1 }

func (t *FloatType) BitsPerPixel() int { return 32 }

func (t *FloatType) DataType() ndimg.DataType { return ndimg.T_float32 }

func (t *FloatType) Primitive() ndimg.DataType { return ndimg.T_float32 }

func (t *FloatType) Link(owner access.Owner) *FloatType {
	return &FloatType{native[float32]{owner: owner}}
}

func (t *FloatType) CreateSuitableContainer(f ndimg.ImgFactory[*FloatType], dim []int64) (ndimg.Img[*FloatType], error) {
	return f.Create(dim, t)
}

// DoubleType is a 64-bit floating point pixel.
type DoubleType struct {
	native[float64]
}

// NewDoubleType returns a variable holding v.
func NewDoubleType(v float64) *DoubleType {
	t := &DoubleType{newNative[float64](1)}
	t.v[0] = v
	return t
}

func (t *DoubleType) Get() float64 { return t.v[t.i] }

func (t *DoubleType) SetValue(v float64) { t.v[t.i] = v }

func (t *DoubleType) CreateVariable() *DoubleType { return NewDoubleType(0) }

func (t *DoubleType) Copy() *DoubleType { return NewDoubleType(t.Get()) }

func (t *DoubleType) Set(c *DoubleType) { t.v[t.i] = c.v[c.i] }

func (t *DoubleType) Equals(c *DoubleType) bool { return t.v[t.i] == c.v[c.i] }

func (t *DoubleType) String() string { return strconv.FormatFloat(t.Get(), 'g', -1, 64) }

func (t *DoubleType) Add(c *DoubleType) { t.v[t.i] += c.v[c.i] }

func (t *DoubleType) Sub(c *DoubleType) { t.v[t.i] -= c.v[c.i] }

func (t *DoubleType) Mul(c *DoubleType) { t.v[t.i] *= c.v[c.i] }

func (t *DoubleType) Div(c *DoubleType) { t.v[t.i] /= c.v[c.i] }

func (t *DoubleType) MulFloat(c float32) { t.v[t.i] *= float64(c) }

func (t *DoubleType) MulDouble(c float64) { t.v[t.i] *= c }

func (t *DoubleType) SetOne() { t.v[t.i] = 1 }

func (t *DoubleType) SetZero() { t.v[t.i] = 0 }

func (t *DoubleType) CompareTo(c *DoubleType) int { return compareFloat(t.v[t.i], c.v[c.i]) }

func (t *DoubleType) RealFloat() float32 { return float32(t.v[t.i]) }

func (t *DoubleType) RealDouble() float64 { return t.v[t.i] }

func (t *DoubleType) SetRealFloat(f float32) { t.v[t.i] = float64(f) }

func (t *DoubleType) SetRealDouble(f float64) { t.v[t.i] = f }

func (t *DoubleType) MinValue() float64 { return -math.MaxFloat64 }

func (t *DoubleType) MaxValue() float64 { return math.MaxFloat64 }

func (t *DoubleType) EntitiesPerPixel() int { return 1 }

func (t *DoubleType) BitsPerPixel() int { return 64 }

func (t *DoubleType) DataType() ndimg.DataType { return ndimg.T_float64 }

func (t *DoubleType) Primitive() ndimg.DataType { return ndimg.T_float64 }

func (t *DoubleType) Link(owner access.Owner) *DoubleType {
	return &DoubleType{native[float64]{owner: owner}}
}

func (t *DoubleType) CreateSuitableContainer(f ndimg.ImgFactory[*DoubleType], dim []int64) (ndimg.Img[*DoubleType], error) {
	return f.Create(dim, t)
}

// compareFloat orders with the host comparison operators, so NaN is equal to everything.
func compareFloat[F float32 | float64](a, b F) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}
