package pixel

import (
	"math"
	"math/cmplx"
	"strconv"

	"github.com/janelia-flyem/ndimg/access"
	"github.com/janelia-flyem/ndimg/ndimg"
)

// ComplexFloatType is a complex pixel of two float32 entities, real part first.
type ComplexFloatType struct {
	native[float32]
}

// NewComplexFloatType returns a variable holding v.
func NewComplexFloatType(v complex64) *ComplexFloatType {
	t := &ComplexFloatType{newNative[float32](2)}
	t.SetValue(v)
	return t
}

func (t *ComplexFloatType) Get() complex64 {
	k := 2 * t.i
	return complex(t.v[k], t.v[k+1])
}

func (t *ComplexFloatType) SetValue(v complex64) {
	k := 2 * t.i
	t.v[k] = real(v)
	t.v[k+1] = imag(v)
}

func (t *ComplexFloatType) CreateVariable() *ComplexFloatType { return NewComplexFloatType(0) }

func (t *ComplexFloatType) Copy() *ComplexFloatType { return NewComplexFloatType(t.Get()) }

func (t *ComplexFloatType) Set(c *ComplexFloatType) { t.SetValue(c.Get()) }

func (t *ComplexFloatType) Equals(c *ComplexFloatType) bool { return t.Get() == c.Get() }

func (t *ComplexFloatType) String() string { return strconv.FormatComplex(complex128(t.Get()), 'g', -1, 64) }

func (t *ComplexFloatType) Add(c *ComplexFloatType) { t.SetValue(t.Get() + c.Get()) }

func (t *ComplexFloatType) Sub(c *ComplexFloatType) { t.SetValue(t.Get() - c.Get()) }

func (t *ComplexFloatType) Mul(c *ComplexFloatType) { t.SetValue(t.Get() * c.Get()) }

func (t *ComplexFloatType) Div(c *ComplexFloatType) { t.SetValue(t.Get() / c.Get()) }

func (t *ComplexFloatType) MulFloat(c float32) {
	k := 2 * t.i
	t.v[k] *= c
	t.v[k+1] *= c
}

func (t *ComplexFloatType) MulDouble(c float64) {
	k := 2 * t.i
	t.v[k] = float32(float64(t.v[k]) * c)
	t.v[k+1] = float32(float64(t.v[k+1]) * c)
}

func (t *ComplexFloatType) SetOne() { t.SetValue(1) }

func (t *ComplexFloatType) SetZero() { t.SetValue(0) }

func (t *ComplexFloatType) RealFloat() float32 { return t.v[2*t.i] }

func (t *ComplexFloatType) RealDouble() float64 { return float64(t.v[2*t.i]) }

func (t *ComplexFloatType) SetRealFloat(f float32) { t.v[2*t.i] = f }

func (t *ComplexFloatType) SetRealDouble(f float64) { t.v[2*t.i] = float32(f) }

func (t *ComplexFloatType) ImaginaryFloat() float32 { return t.v[2*t.i+1] }

func (t *ComplexFloatType) ImaginaryDouble() float64 { return float64(t.v[2*t.i+1]) }

func (t *ComplexFloatType) SetImaginaryFloat(f float32) { t.v[2*t.i+1] = f }

func (t *ComplexFloatType) SetImaginaryDouble(f float64) { t.v[2*t.i+1] = float32(f) }

func (t *ComplexFloatType) SetComplexNumber(re, im float64) {
	t.SetValue(complex(float32(re), float32(im)))
}

func (t *ComplexFloatType) ComplexConjugate() { t.v[2*t.i+1] = -t.v[2*t.i+1] }

// PowerDouble returns the magnitude.
func (t *ComplexFloatType) PowerDouble() float64 { return cmplx.Abs(complex128(t.Get())) }

func (t *ComplexFloatType) PhaseDouble() float64 {
	return math.Atan2(t.ImaginaryDouble(), t.RealDouble())
}

func (t *ComplexFloatType) EntitiesPerPixel() int { return 2 }

func (t *ComplexFloatType) BitsPerPixel() int { return 64 }

func (t *ComplexFloatType) DataType() ndimg.DataType { return ndimg.T_float32 }

func (t *ComplexFloatType) Primitive() ndimg.DataType { return ndimg.T_float32 }

func (t *ComplexFloatType) Link(owner access.Owner) *ComplexFloatType {
	return &ComplexFloatType{native[float32]{owner: owner}}
}

func (t *ComplexFloatType) CreateSuitableContainer(f ndimg.ImgFactory[*ComplexFloatType], dim []int64) (ndimg.Img[*ComplexFloatType], error) {
	return f.Create(dim, t)
}

// ComplexDoubleType is a complex pixel of two float64 entities, real part first.
type ComplexDoubleType struct {
	native[float64]
}

// NewComplexDoubleType returns a variable holding v.
func NewComplexDoubleType(v complex128) *ComplexDoubleType {
	t := &ComplexDoubleType{newNative[float64](2)}
	t.SetValue(v)
	return t
}

func (t *ComplexDoubleType) Get() complex128 {
	k := 2 * t.i
	return complex(t.v[k], t.v[k+1])
}

func (t *ComplexDoubleType) SetValue(v complex128) {
	k := 2 * t.i
	t.v[k] = real(v)
	t.v[k+1] = imag(v)
}

func (t *ComplexDoubleType) CreateVariable() *ComplexDoubleType { return NewComplexDoubleType(0) }

func (t *ComplexDoubleType) Copy() *ComplexDoubleType { return NewComplexDoubleType(t.Get()) }

func (t *ComplexDoubleType) Set(c *ComplexDoubleType) { t.SetValue(c.Get()) }

func (t *ComplexDoubleType) Equals(c *ComplexDoubleType) bool { return t.Get() == c.Get() }

func (t *ComplexDoubleType) String() string { return strconv.FormatComplex(t.Get(), 'g', -1, 128) }

func (t *ComplexDoubleType) Add(c *ComplexDoubleType) { t.SetValue(t.Get() + c.Get()) }

func (t *ComplexDoubleType) Sub(c *ComplexDoubleType) { t.SetValue(t.Get() - c.Get()) }

func (t *ComplexDoubleType) Mul(c *ComplexDoubleType) { t.SetValue(t.Get() * c.Get()) }

func (t *ComplexDoubleType) Div(c *ComplexDoubleType) { t.SetValue(t.Get() / c.Get()) }

func (t *ComplexDoubleType) MulFloat(c float32) { t.MulDouble(float64(c)) }

func (t *ComplexDoubleType) MulDouble(c float64) {
	k := 2 * t.i
	t.v[k] *= c
	t.v[k+1] *= c
}

func (t *ComplexDoubleType) SetOne() { t.SetValue(1) }

func (t *ComplexDoubleType) SetZero() { t.SetValue(0) }

func (t *ComplexDoubleType) RealFloat() float32 { return float32(t.v[2*t.i]) }

func (t *ComplexDoubleType) RealDouble() float64 { return t.v[2*t.i] }

func (t *ComplexDoubleType) SetRealFloat(f float32) { t.v[2*t.i] = float64(f) }

func (t *ComplexDoubleType) SetRealDouble(f float64) { t.v[2*t.i] = f }

func (t *ComplexDoubleType) ImaginaryFloat() float32 { return float32(t.v[2*t.i+1]) }

func (t *ComplexDoubleType) ImaginaryDouble() float64 { return t.v[2*t.i+1] }

func (t *ComplexDoubleType) SetImaginaryFloat(f float32) { t.v[2*t.i+1] = float64(f) }

func (t *ComplexDoubleType) SetImaginaryDouble(f float64) { t.v[2*t.i+1] = f }

func (t *ComplexDoubleType) SetComplexNumber(re, im float64) { t.SetValue(complex(re, im)) }

func (t *ComplexDoubleType) ComplexConjugate() { t.v[2*t.i+1] = -t.v[2*t.i+1] }

// PowerDouble returns the magnitude.
func (t *ComplexDoubleType) PowerDouble() float64 { return cmplx.Abs(t.Get()) }

func (t *ComplexDoubleType) PhaseDouble() float64 { return cmplx.Phase(t.Get()) }

func (t *ComplexDoubleType) EntitiesPerPixel() int { return 2 }

func (t *ComplexDoubleType) BitsPerPixel() int { return 128 }

func (t *ComplexDoubleType) DataType() ndimg.DataType { return ndimg.T_float64 }

func (t *ComplexDoubleType) Primitive() ndimg.DataType { return ndimg.T_float64 }

func (t *ComplexDoubleType) Link(owner access.Owner) *ComplexDoubleType {
	return &ComplexDoubleType{native[float64]{owner: owner}}
}

func (t *ComplexDoubleType) CreateSuitableContainer(f ndimg.ImgFactory[*ComplexDoubleType], dim []int64) (ndimg.Img[*ComplexDoubleType], error) {
	return f.Create(dim, t)
}
