package pixel

import (
	"fmt"
	"math"

	"github.com/janelia-flyem/ndimg/access"
	"github.com/janelia-flyem/ndimg/ndimg"
)

// RGBAType is a color pixel of four unsigned 8-bit channels stored in an int8
// block in red, green, blue, alpha order.  Arithmetic is per channel and wraps
// like UnsignedByteType; scaling rounds and clamps to [0, 255].
type RGBAType struct {
	native[int8]
}

// NewRGBAType returns a variable holding the given channels.
func NewRGBAType(r, g, b, a uint8) *RGBAType {
	t := &RGBAType{newNative[int8](4)}
	t.SetRGBA(r, g, b, a)
	return t
}

func (t *RGBAType) channel(c int) uint8 { return uint8(t.v[4*t.i+c]) }

func (t *RGBAType) Red() uint8   { return t.channel(0) }
func (t *RGBAType) Green() uint8 { return t.channel(1) }
func (t *RGBAType) Blue() uint8  { return t.channel(2) }
func (t *RGBAType) Alpha() uint8 { return t.channel(3) }

func (t *RGBAType) SetRGBA(r, g, b, a uint8) {
	k := 4 * t.i
	t.v[k] = int8(r)
	t.v[k+1] = int8(g)
	t.v[k+2] = int8(b)
	t.v[k+3] = int8(a)
}

// Packed returns the channels as 0xAARRGGBB.
func (t *RGBAType) Packed() uint32 {
	return uint32(t.Alpha())<<24 | uint32(t.Red())<<16 | uint32(t.Green())<<8 | uint32(t.Blue())
}

func (t *RGBAType) SetPacked(argb uint32) {
	t.SetRGBA(uint8(argb>>16), uint8(argb>>8), uint8(argb), uint8(argb>>24))
}

func (t *RGBAType) CreateVariable() *RGBAType { return NewRGBAType(0, 0, 0, 0) }

func (t *RGBAType) Copy() *RGBAType {
	return NewRGBAType(t.Red(), t.Green(), t.Blue(), t.Alpha())
}

func (t *RGBAType) Set(c *RGBAType) {
	copy(t.v[4*t.i:4*t.i+4], c.v[4*c.i:4*c.i+4])
}

func (t *RGBAType) Equals(c *RGBAType) bool { return t.Packed() == c.Packed() }

func (t *RGBAType) String() string {
	return fmt.Sprintf("(r=%d,g=%d,b=%d,a=%d)", t.Red(), t.Green(), t.Blue(), t.Alpha())
}

func (t *RGBAType) Add(c *RGBAType) {
	for ch := 0; ch < 4; ch++ {
		t.v[4*t.i+ch] += c.v[4*c.i+ch]
	}
}

func (t *RGBAType) Sub(c *RGBAType) {
	for ch := 0; ch < 4; ch++ {
		t.v[4*t.i+ch] -= c.v[4*c.i+ch]
	}
}

func (t *RGBAType) Mul(c *RGBAType) {
	for ch := 0; ch < 4; ch++ {
		t.v[4*t.i+ch] *= c.v[4*c.i+ch]
	}
}

func (t *RGBAType) Div(c *RGBAType) {
	for ch := 0; ch < 4; ch++ {
		t.v[4*t.i+ch] = int8(t.channel(ch) / c.channel(ch))
	}
}

func (t *RGBAType) MulFloat(c float32) { t.MulDouble(float64(c)) }

func (t *RGBAType) MulDouble(c float64) {
	for ch := 0; ch < 4; ch++ {
		v := math.Round(float64(t.channel(ch)) * c)
		t.v[4*t.i+ch] = int8(uint8(max(0, min(math.MaxUint8, v))))
	}
}

// SetOne sets all channels to 1 so that Mul acts as identity.
func (t *RGBAType) SetOne() { t.SetRGBA(1, 1, 1, 1) }

func (t *RGBAType) SetZero() { t.SetRGBA(0, 0, 0, 0) }

func (t *RGBAType) EntitiesPerPixel() int { return 4 }

func (t *RGBAType) BitsPerPixel() int { return 32 }

func (t *RGBAType) DataType() ndimg.DataType { return ndimg.T_uint8 }

func (t *RGBAType) Primitive() ndimg.DataType { return ndimg.T_int8 }

func (t *RGBAType) Link(owner access.Owner) *RGBAType {
	return &RGBAType{native[int8]{owner: owner}}
}

func (t *RGBAType) CreateSuitableContainer(f ndimg.ImgFactory[*RGBAType], dim []int64) (ndimg.Img[*RGBAType], error) {
	return f.Create(dim, t)
}
