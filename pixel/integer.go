package pixel

import (
	"cmp"
	"math"
	"strconv"

	"github.com/janelia-flyem/ndimg/access"
	"github.com/janelia-flyem/ndimg/ndimg"
)

// ByteType is a signed 8-bit integer pixel.
type ByteType struct {
	native[int8]
}

// NewByteType returns a variable holding v.
func NewByteType(v int8) *ByteType {
	t := &ByteType{newNative[int8](1)}
	t.v[0] = int8(v)
	return t
}

func (t *ByteType) Get() int8 { return t.v[t.i] }

func (t *ByteType) SetValue(v int8) { t.v[t.i] = v }

func (t *ByteType) CreateVariable() *ByteType { return NewByteType(0) }

func (t *ByteType) Copy() *ByteType { return NewByteType(t.Get()) }

func (t *ByteType) Set(c *ByteType) { t.v[t.i] = c.v[c.i] }

func (t *ByteType) Equals(c *ByteType) bool { return t.v[t.i] == c.v[c.i] }

func (t *ByteType) String() string { return strconv.FormatInt(int64(t.Get()), 10) }

func (t *ByteType) Add(c *ByteType) { t.v[t.i] += c.v[c.i] }

func (t *ByteType) Sub(c *ByteType) { t.v[t.i] -= c.v[c.i] }

func (t *ByteType) Mul(c *ByteType) { t.v[t.i] *= c.v[c.i] }

func (t *ByteType) Div(c *ByteType) { t.v[t.i] /= c.v[c.i] }

func (t *ByteType) MulFloat(c float32) { t.SetValue(int8(ndimg.RoundDouble(float64(float32(t.Get()) * c)))) }

func (t *ByteType) MulDouble(c float64) { t.SetValue(int8(ndimg.RoundDouble(float64(t.Get()) * c))) }

func (t *ByteType) SetOne() { t.v[t.i] = 1 }

func (t *ByteType) SetZero() { t.v[t.i] = 0 }

func (t *ByteType) Inc() { t.v[t.i]++ }

func (t *ByteType) Dec() { t.v[t.i]-- }

func (t *ByteType) CompareTo(c *ByteType) int { return cmp.Compare(t.Get(), c.v[c.i]) }

func (t *ByteType) Integer() int { return int(t.Get()) }

func (t *ByteType) IntegerLong() int64 { return int64(t.Get()) }

func (t *ByteType) SetInteger(v int64) { t.SetValue(int8(v)) }

func (t *ByteType) RealFloat() float32 { return float32(t.Get()) }

func (t *ByteType) RealDouble() float64 { return float64(t.Get()) }

func (t *ByteType) SetRealFloat(f float32) { t.SetRealDouble(float64(f)) }

func (t *ByteType) SetRealDouble(f float64) { t.SetValue(int8(ndimg.RoundDouble(f))) }

func (t *ByteType) MinValue() float64 { return math.MinInt8 }

func (t *ByteType) MaxValue() float64 { return math.MaxInt8 }

func (t *ByteType) EntitiesPerPixel() int { return 1 }

func (t *ByteType) BitsPerPixel() int { return 8 }

func (t *ByteType) DataType() ndimg.DataType { return ndimg.T_int8 }

func (t *ByteType) Primitive() ndimg.DataType { return ndimg.T_int8.Storage() }

func (t *ByteType) Link(owner access.Owner) *ByteType {
	return &ByteType{native[int8]{owner: owner}}
}

func (t *ByteType) CreateSuitableContainer(f ndimg.ImgFactory[*ByteType], dim []int64) (ndimg.Img[*ByteType], error) {
	return f.Create(dim, t)
}

// UnsignedByteType is an unsigned 8-bit integer pixel stored in an int8 block.
type UnsignedByteType struct {
	native[int8]
}

// NewUnsignedByteType returns a variable holding v.
func NewUnsignedByteType(v uint8) *UnsignedByteType {
	t := &UnsignedByteType{newNative[int8](1)}
	t.v[0] = int8(v)
	return t
}

func (t *UnsignedByteType) Get() uint8 { return uint8(t.v[t.i]) }

func (t *UnsignedByteType) SetValue(v uint8) { t.v[t.i] = int8(v) }

func (t *UnsignedByteType) CreateVariable() *UnsignedByteType { return NewUnsignedByteType(0) }

func (t *UnsignedByteType) Copy() *UnsignedByteType { return NewUnsignedByteType(t.Get()) }

func (t *UnsignedByteType) Set(c *UnsignedByteType) { t.v[t.i] = c.v[c.i] }

func (t *UnsignedByteType) Equals(c *UnsignedByteType) bool { return t.v[t.i] == c.v[c.i] }

func (t *UnsignedByteType) String() string { return strconv.FormatUint(uint64(t.Get()), 10) }

func (t *UnsignedByteType) Add(c *UnsignedByteType) { t.v[t.i] += c.v[c.i] }

func (t *UnsignedByteType) Sub(c *UnsignedByteType) { t.v[t.i] -= c.v[c.i] }

func (t *UnsignedByteType) Mul(c *UnsignedByteType) { t.v[t.i] *= c.v[c.i] }

func (t *UnsignedByteType) Div(c *UnsignedByteType) { t.SetValue(t.Get() / c.Get()) }

func (t *UnsignedByteType) MulFloat(c float32) { t.SetValue(uint8(ndimg.RoundDouble(float64(float32(t.Get()) * c)))) }

func (t *UnsignedByteType) MulDouble(c float64) { t.SetValue(uint8(ndimg.RoundDouble(float64(t.Get()) * c))) }

func (t *UnsignedByteType) SetOne() { t.v[t.i] = 1 }

func (t *UnsignedByteType) SetZero() { t.v[t.i] = 0 }

func (t *UnsignedByteType) Inc() { t.v[t.i]++ }

func (t *UnsignedByteType) Dec() { t.v[t.i]-- }

func (t *UnsignedByteType) CompareTo(c *UnsignedByteType) int { return cmp.Compare(t.Get(), uint8(c.v[c.i])) }

func (t *UnsignedByteType) Integer() int { return int(t.Get()) }

func (t *UnsignedByteType) IntegerLong() int64 { return int64(t.Get()) }

func (t *UnsignedByteType) SetInteger(v int64) { t.SetValue(uint8(v)) }

func (t *UnsignedByteType) RealFloat() float32 { return float32(t.Get()) }

func (t *UnsignedByteType) RealDouble() float64 { return float64(t.Get()) }

func (t *UnsignedByteType) SetRealFloat(f float32) { t.SetRealDouble(float64(f)) }

func (t *UnsignedByteType) SetRealDouble(f float64) { t.SetValue(uint8(ndimg.RoundDouble(f))) }

func (t *UnsignedByteType) MinValue() float64 { return 0 }

func (t *UnsignedByteType) MaxValue() float64 { return math.MaxUint8 }

func (t *UnsignedByteType) EntitiesPerPixel() int { return 1 }

func (t *UnsignedByteType) BitsPerPixel() int { return 8 }

func (t *UnsignedByteType) DataType() ndimg.DataType { return ndimg.T_uint8 }

func (t *UnsignedByteType) Primitive() ndimg.DataType { return ndimg.T_uint8.Storage() }

func (t *UnsignedByteType) Link(owner access.Owner) *UnsignedByteType {
	return &UnsignedByteType{native[int8]{owner: owner}}
}

func (t *UnsignedByteType) CreateSuitableContainer(f ndimg.ImgFactory[*UnsignedByteType], dim []int64) (ndimg.Img[*UnsignedByteType], error) {
	return f.Create(dim, t)
}

// ShortType is a signed 16-bit integer pixel.
type ShortType struct {
	native[int16]
}

// NewShortType returns a variable holding v.
func NewShortType(v int16) *ShortType {
	t := &ShortType{newNative[int16](1)}
	t.v[0] = int16(v)
	return t
}

func (t *ShortType) Get() int16 { return t.v[t.i] }

func (t *ShortType) SetValue(v int16) { t.v[t.i] = v }

func (t *ShortType) CreateVariable() *ShortType { return NewShortType(0) }

func (t *ShortType) Copy() *ShortType { return NewShortType(t.Get()) }

func (t *ShortType) Set(c *ShortType) { t.v[t.i] = c.v[c.i] }

func (t *ShortType) Equals(c *ShortType) bool { return t.v[t.i] == c.v[c.i] }

func (t *ShortType) String() string { return strconv.FormatInt(int64(t.Get()), 10) }

func (t *ShortType) Add(c *ShortType) { t.v[t.i] += c.v[c.i] }

func (t *ShortType) Sub(c *ShortType) { t.v[t.i] -= c.v[c.i] }

func (t *ShortType) Mul(c *ShortType) { t.v[t.i] *= c.v[c.i] }

func (t *ShortType) Div(c *ShortType) { t.v[t.i] /= c.v[c.i] }

func (t *ShortType) MulFloat(c float32) { t.SetValue(int16(ndimg.RoundDouble(float64(float32(t.Get()) * c)))) }

func (t *ShortType) MulDouble(c float64) { t.SetValue(int16(ndimg.RoundDouble(float64(t.Get()) * c))) }

func (t *ShortType) SetOne() { t.v[t.i] = 1 }

func (t *ShortType) SetZero() { t.v[t.i] = 0 }

func (t *ShortType) Inc() { t.v[t.i]++ }

func (t *ShortType) Dec() { t.v[t.i]-- }

func (t *ShortType) CompareTo(c *ShortType) int { return cmp.Compare(t.Get(), c.v[c.i]) }

func (t *ShortType) Integer() int { return int(t.Get()) }

func (t *ShortType) IntegerLong() int64 { return int64(t.Get()) }

func (t *ShortType) SetInteger(v int64) { t.SetValue(int16(v)) }

func (t *ShortType) RealFloat() float32 { return float32(t.Get()) }

func (t *ShortType) RealDouble() float64 { return float64(t.Get()) }

func (t *ShortType) SetRealFloat(f float32) { t.SetRealDouble(float64(f)) }

func (t *ShortType) SetRealDouble(f float64) { t.SetValue(int16(ndimg.RoundDouble(f))) }

func (t *ShortType) MinValue() float64 { return math.MinInt16 }

func (t *ShortType) MaxValue() float64 { return math.MaxInt16 }

func (t *ShortType) EntitiesPerPixel() int { return 1 }

func (t *ShortType) BitsPerPixel() int { return 16 }

func (t *ShortType) DataType() ndimg.DataType { return ndimg.T_int16 }

func (t *ShortType) Primitive() ndimg.DataType { return ndimg.T_int16.Storage() }

func (t *ShortType) Link(owner access.Owner) *ShortType {
	return &ShortType{native[int16]{owner: owner}}
}

func (t *ShortType) CreateSuitableContainer(f ndimg.ImgFactory[*ShortType], dim []int64) (ndimg.Img[*ShortType], error) {
	return f.Create(dim, t)
}

// UnsignedShortType is an unsigned 16-bit integer pixel stored in an int16 block.
type UnsignedShortType struct {
	native[int16]
}

// NewUnsignedShortType returns a variable holding v.
func NewUnsignedShortType(v uint16) *UnsignedShortType {
	t := &UnsignedShortType{newNative[int16](1)}
	t.v[0] = int16(v)
	return t
}

func (t *UnsignedShortType) Get() uint16 { return uint16(t.v[t.i]) }

func (t *UnsignedShortType) SetValue(v uint16) { t.v[t.i] = int16(v) }

func (t *UnsignedShortType) CreateVariable() *UnsignedShortType { return NewUnsignedShortType(0) }

func (t *UnsignedShortType) Copy() *UnsignedShortType { return NewUnsignedShortType(t.Get()) }

func (t *UnsignedShortType) Set(c *UnsignedShortType) { t.v[t.i] = c.v[c.i] }

func (t *UnsignedShortType) Equals(c *UnsignedShortType) bool { return t.v[t.i] == c.v[c.i] }

func (t *UnsignedShortType) String() string { return strconv.FormatUint(uint64(t.Get()), 10) }

func (t *UnsignedShortType) Add(c *UnsignedShortType) { t.v[t.i] += c.v[c.i] }

func (t *UnsignedShortType) Sub(c *UnsignedShortType) { t.v[t.i] -= c.v[c.i] }

func (t *UnsignedShortType) Mul(c *UnsignedShortType) { t.v[t.i] *= c.v[c.i] }

func (t *UnsignedShortType) Div(c *UnsignedShortType) { t.SetValue(t.Get() / c.Get()) }

func (t *UnsignedShortType) MulFloat(c float32) { t.SetValue(uint16(ndimg.RoundDouble(float64(float32(t.Get()) * c)))) }

func (t *UnsignedShortType) MulDouble(c float64) { t.SetValue(uint16(ndimg.RoundDouble(float64(t.Get()) * c))) }

func (t *UnsignedShortType) SetOne() { t.v[t.i] = 1 }

func (t *UnsignedShortType) SetZero() { t.v[t.i] = 0 }

func (t *UnsignedShortType) Inc() { t.v[t.i]++ }

func (t *UnsignedShortType) Dec() { t.v[t.i]-- }

func (t *UnsignedShortType) CompareTo(c *UnsignedShortType) int { return cmp.Compare(t.Get(), uint16(c.v[c.i])) }

func (t *UnsignedShortType) Integer() int { return int(t.Get()) }

func (t *UnsignedShortType) IntegerLong() int64 { return int64(t.Get()) }

func (t *UnsignedShortType) SetInteger(v int64) { t.SetValue(uint16(v)) }

func (t *UnsignedShortType) RealFloat() float32 { return float32(t.Get()) }

func (t *UnsignedShortType) RealDouble() float64 { return float64(t.Get()) }

func (t *UnsignedShortType) SetRealFloat(f float32) { t.SetRealDouble(float64(f)) }

func (t *UnsignedShortType) SetRealDouble(f float64) { t.SetValue(uint16(ndimg.RoundDouble(f))) }

func (t *UnsignedShortType) MinValue() float64 { return 0 }

func (t *UnsignedShortType) MaxValue() float64 { return math.MaxUint16 }

func (t *UnsignedShortType) EntitiesPerPixel() int { return 1 }

func (t *UnsignedShortType) BitsPerPixel() int { return 16 }

func (t *UnsignedShortType) DataType() ndimg.DataType { return ndimg.T_uint16 }

func (t *UnsignedShortType) Primitive() ndimg.DataType { return ndimg.T_uint16.Storage() }

func (t *UnsignedShortType) Link(owner access.Owner) *UnsignedShortType {
	return &UnsignedShortType{native[int16]{owner: owner}}
}

func (t *UnsignedShortType) CreateSuitableContainer(f ndimg.ImgFactory[*UnsignedShortType], dim []int64) (ndimg.Img[*UnsignedShortType], error) {
	return f.Create(dim, t)
}

// IntType is a signed 32-bit integer pixel.
type IntType struct {
	native[int32]
}

// NewIntType returns a variable holding v.
func NewIntType(v int32) *IntType {
	t := &IntType{newNative[int32](1)}
	t.v[0] = int32(v)
	return t
}

func (t *IntType) Get() int32 { return t.v[t.i] }

func (t *IntType) SetValue(v int32) { t.v[t.i] = v }

func (t *IntType) CreateVariable() *IntType { return NewIntType(0) }

func (t *IntType) Copy() *IntType { return NewIntType(t.Get()) }

func (t *IntType) Set(c *IntType) { t.v[t.i] = c.v[c.i] }

func (t *IntType) Equals(c *IntType) bool { return t.v[t.i] == c.v[c.i] }

func (t *IntType) String() string { return strconv.FormatInt(int64(t.Get()), 10) }

func (t *IntType) Add(c *IntType) { t.v[t.i] += c.v[c.i] }

func (t *IntType) Sub(c *IntType) { t.v[t.i] -= c.v[c.i] }

func (t *IntType) Mul(c *IntType) { t.v[t.i] *= c.v[c.i] }

func (t *IntType) Div(c *IntType) { t.v[t.i] /= c.v[c.i] }

func (t *IntType) MulFloat(c float32) { t.SetValue(int32(ndimg.RoundDouble(float64(float32(t.Get()) * c)))) }

func (t *IntType) MulDouble(c float64) { t.SetValue(int32(ndimg.RoundDouble(float64(t.Get()) * c))) }

func (t *IntType) SetOne() { t.v[t.i] = 1 }

func (t *IntType) SetZero() { t.v[t.i] = 0 }

func (t *IntType) Inc() { t.v[t.i]++ }

func (t *IntType) Dec() { t.v[t.i]-- }

func (t *IntType) CompareTo(c *IntType) int { return cmp.Compare(t.Get(), c.v[c.i]) }

func (t *IntType) Integer() int { return int(t.Get()) }

func (t *IntType) IntegerLong() int64 { return int64(t.Get()) }

func (t *IntType) SetInteger(v int64) { t.SetValue(int32(v)) }

func (t *IntType) RealFloat() float32 { return float32(t.Get()) }

func (t *IntType) RealDouble() float64 { return float64(t.Get()) }

func (t *IntType) SetRealFloat(f float32) { t.SetRealDouble(float64(f)) }

func (t *IntType) SetRealDouble(f float64) { t.SetValue(int32(ndimg.RoundDouble(f))) }

func (t *IntType) MinValue() float64 { return math.MinInt32 }

func (t *IntType) MaxValue() float64 { return math.MaxInt32 }

func (t *IntType) EntitiesPerPixel() int { return 1 }

func (t *IntType) BitsPerPixel() int { return 32 }

func (t *IntType) DataType() ndimg.DataType { return ndimg.T_int32 }

func (t *IntType) Primitive() ndimg.DataType { return ndimg.T_int32.Storage() }

func (t *IntType) Link(owner access.Owner) *IntType {
	return &IntType{native[int32]{owner: owner}}
}

func (t *IntType) CreateSuitableContainer(f ndimg.ImgFactory[*IntType], dim []int64) (ndimg.Img[*IntType], error) {
	return f.Create(dim, t)
}

// UnsignedIntType is an unsigned 32-bit integer pixel stored in an int32 block.
type UnsignedIntType struct {
	native[int32]
}

// NewUnsignedIntType returns a variable holding v.
func NewUnsignedIntType(v uint32) *UnsignedIntType {
	t := &UnsignedIntType{newNative[int32](1)}
	t.v[0] = int32(v)
	return t
}

func (t *UnsignedIntType) Get() uint32 { return uint32(t.v[t.i]) }

func (t *UnsignedIntType) SetValue(v uint32) { t.v[t.i] = int32(v) }

func (t *UnsignedIntType) CreateVariable() *UnsignedIntType { return NewUnsignedIntType(0) }

func (t *UnsignedIntType) Copy() *UnsignedIntType { return NewUnsignedIntType(t.Get()) }

func (t *UnsignedIntType) Set(c *UnsignedIntType) { t.v[t.i] = c.v[c.i] }

func (t *UnsignedIntType) Equals(c *UnsignedIntType) bool { return t.v[t.i] == c.v[c.i] }

func (t *UnsignedIntType) String() string { return strconv.FormatUint(uint64(t.Get()), 10) }

func (t *UnsignedIntType) Add(c *UnsignedIntType) { t.v[t.i] += c.v[c.i] }

func (t *UnsignedIntType) Sub(c *UnsignedIntType) { t.v[t.i] -= c.v[c.i] }

func (t *UnsignedIntType) Mul(c *UnsignedIntType) { t.v[t.i] *= c.v[c.i] }

func (t *UnsignedIntType) Div(c *UnsignedIntType) { t.SetValue(t.Get() / c.Get()) }

func (t *UnsignedIntType) MulFloat(c float32) { t.SetValue(uint32(ndimg.RoundDouble(float64(float32(t.Get()) * c)))) }

func (t *UnsignedIntType) MulDouble(c float64) { t.SetValue(uint32(ndimg.RoundDouble(float64(t.Get()) * c))) }

func (t *UnsignedIntType) SetOne() { t.v[t.i] = 1 }

func (t *UnsignedIntType) SetZero() { t.v[t.i] = 0 }

func (t *UnsignedIntType) Inc() { t.v[t.i]++ }

func (t *UnsignedIntType) Dec() { t.v[t.i]-- }

func (t *UnsignedIntType) CompareTo(c *UnsignedIntType) int { return cmp.Compare(t.Get(), uint32(c.v[c.i])) }

func (t *UnsignedIntType) Integer() int { return int(t.Get()) }

func (t *UnsignedIntType) IntegerLong() int64 { return int64(t.Get()) }

func (t *UnsignedIntType) SetInteger(v int64) { t.SetValue(uint32(v)) }

func (t *UnsignedIntType) RealFloat() float32 { return float32(t.Get()) }

func (t *UnsignedIntType) RealDouble() float64 { return float64(t.Get()) }

func (t *UnsignedIntType) SetRealFloat(f float32) { t.SetRealDouble(float64(f)) }

func (t *UnsignedIntType) SetRealDouble(f float64) { t.SetValue(uint32(ndimg.RoundDouble(f))) }

func (t *UnsignedIntType) MinValue() float64 { return 0 }

func (t *UnsignedIntType) MaxValue() float64 { return math.MaxUint32 }

func (t *UnsignedIntType) EntitiesPerPixel() int { return 1 }

func (t *UnsignedIntType) BitsPerPixel() int { return 32 }

func (t *UnsignedIntType) DataType() ndimg.DataType { return ndimg.T_uint32 }

func (t *UnsignedIntType) Primitive() ndimg.DataType { return ndimg.T_uint32.Storage() }

func (t *UnsignedIntType) Link(owner access.Owner) *UnsignedIntType {
	return &UnsignedIntType{native[int32]{owner: owner}}
}

func (t *UnsignedIntType) CreateSuitableContainer(f ndimg.ImgFactory[*UnsignedIntType], dim []int64) (ndimg.Img[*UnsignedIntType], error) {
	return f.Create(dim, t)
}

// LongType is a signed 64-bit integer pixel.
type LongType struct {
	native[int64]
}

// NewLongType returns a variable holding v.
func NewLongType(v int64) *LongType {
	t := &LongType{newNative[int64](1)}
	t.v[0] = int64(v)
	return t
}

func (t *LongType) Get() int64 { return t.v[t.i] }

func (t *LongType) SetValue(v int64) { t.v[t.i] = v }

func (t *LongType) CreateVariable() *LongType { return NewLongType(0) }

func (t *LongType) Copy() *LongType { return NewLongType(t.Get()) }

func (t *LongType) Set(c *LongType) { t.v[t.i] = c.v[c.i] }

func (t *LongType) Equals(c *LongType) bool { return t.v[t.i] == c.v[c.i] }

func (t *LongType) String() string { return strconv.FormatInt(int64(t.Get()), 10) }

func (t *LongType) Add(c *LongType) { t.v[t.i] += c.v[c.i] }

func (t *LongType) Sub(c *LongType) { t.v[t.i] -= c.v[c.i] }

func (t *LongType) Mul(c *LongType) { t.v[t.i] *= c.v[c.i] }

func (t *LongType) Div(c *LongType) { t.v[t.i] /= c.v[c.i] }

func (t *LongType) MulFloat(c float32) { t.SetValue(int64(ndimg.RoundDouble(float64(float32(t.Get()) * c)))) }

func (t *LongType) MulDouble(c float64) { t.SetValue(int64(ndimg.RoundDouble(float64(t.Get()) * c))) }

func (t *LongType) SetOne() { t.v[t.i] = 1 }

func (t *LongType) SetZero() { t.v[t.i] = 0 }

func (t *LongType) Inc() { t.v[t.i]++ }

func (t *LongType) Dec() { t.v[t.i]-- }

func (t *LongType) CompareTo(c *LongType) int { return cmp.Compare(t.Get(), c.v[c.i]) }

func (t *LongType) Integer() int { return int(t.Get()) }

func (t *LongType) IntegerLong() int64 { return int64(t.Get()) }

func (t *LongType) SetInteger(v int64) { t.SetValue(int64(v)) }

func (t *LongType) RealFloat() float32 { return float32(t.Get()) }

func (t *LongType) RealDouble() float64 { return float64(t.Get()) }

func (t *LongType) SetRealFloat(f float32) { t.SetRealDouble(float64(f)) }

func (t *LongType) SetRealDouble(f float64) { t.SetValue(int64(ndimg.RoundDouble(f))) }

func (t *LongType) MinValue() float64 { return math.MinInt64 }

func (t *LongType) MaxValue() float64 { return math.MaxInt64 }

func (t *LongType) EntitiesPerPixel() int { return 1 }

func (t *LongType) BitsPerPixel() int { return 64 }

func (t *LongType) DataType() ndimg.DataType { return ndimg.T_int64 }

func (t *LongType) Primitive() ndimg.DataType { return ndimg.T_int64.Storage() }

func (t *LongType) Link(owner access.Owner) *LongType {
	return &LongType{native[int64]{owner: owner}}
}

func (t *LongType) CreateSuitableContainer(f ndimg.ImgFactory[*LongType], dim []int64) (ndimg.Img[*LongType], error) {
	return f.Create(dim, t)
}
