/*
Package pixel defines the pixel types of ndimg images and the capability interfaces
algorithms are written against.

A pixel value of a container is a flyweight: a pointer into the current storage
block plus an index.  Cursors own one such handle and move its index as they
advance, rebinding the block when crossing a plane or cell boundary.  Values
created with CreateVariable or the NewXxxType constructors own a private
one-pixel block instead.

Capabilities are split into orthogonal interfaces:

	NumericType    Add/Sub/Mul/Div, MulFloat/MulDouble, SetOne/SetZero
	Comparable     CompareTo (total order; NaN compares equal to everything)
	Integer        Integer/IntegerLong/SetInteger, Inc/Dec
	Real           RealFloat/RealDouble/SetRealFloat/SetRealDouble, MinValue/MaxValue
	Complex        real and imaginary parts, conjugate, power and phase

Integer arithmetic wraps on overflow and integer division by zero panics.
*/
package pixel

import (
	"github.com/janelia-flyem/ndimg/access"
	"github.com/janelia-flyem/ndimg/ndimg"
)

// Type is any pixel value handle.
type Type[T any] interface {
	// CreateVariable returns a new zero-valued pixel with its own storage.
	CreateVariable() T

	// Copy returns a new pixel with its own storage and the receiver's value.
	Copy() T

	// Set copies the value of c into the receiver's current position.
	Set(c T)

	Equals(c T) bool
	String() string
}

// NumericType supports arithmetic with another pixel of the same type.
type NumericType[T any] interface {
	Type[T]
	Add(c T)
	Sub(c T)
	Mul(c T)
	Div(c T)
	MulFloat(c float32)
	MulDouble(c float64)
	SetOne()
	SetZero()
}

// Comparable pixels have a total order.
type Comparable[T any] interface {
	CompareTo(c T) int
}

// Integer pixels expose their value as an integer.
type Integer interface {
	Integer() int
	IntegerLong() int64
	SetInteger(v int64)
	Inc()
	Dec()
}

// Real pixels expose their value as a floating point number.
type Real interface {
	RealFloat() float32
	RealDouble() float64
	SetRealFloat(f float32)
	SetRealDouble(f float64)

	// MinValue and MaxValue bound the representable values.
	MinValue() float64
	MaxValue() float64
}

// Complex pixels hold a real and an imaginary part.
type Complex interface {
	RealFloat() float32
	RealDouble() float64
	SetRealFloat(f float32)
	SetRealDouble(f float64)
	ImaginaryFloat() float32
	ImaginaryDouble() float64
	SetImaginaryFloat(f float32)
	SetImaginaryDouble(f float64)
	SetComplexNumber(re, im float64)
	ComplexConjugate()
	PowerDouble() float64
	PhaseDouble() float64
}

type RealType[T any] interface {
	NumericType[T]
	Comparable[T]
	Real
}

type IntegerType[T any] interface {
	RealType[T]
	Integer
}

type ComplexType[T any] interface {
	NumericType[T]
	Complex
}

// NativeType is a pixel type backed by a storage block of a container.  The
// binding operations are allocation-free and are only called by containers
// and their cursors.
type NativeType[T any] interface {
	Type[T]

	// EntitiesPerPixel returns the number of primitive elements per pixel.
	EntitiesPerPixel() int

	BitsPerPixel() int

	// DataType returns the element type of the pixel value, e.g. T_uint16.
	DataType() ndimg.DataType

	// Primitive returns the element type of the storage block, e.g. T_int16.
	Primitive() ndimg.DataType

	// Link returns a new pixel of the receiver's type that reads from blocks
	// handed out by owner.  The pixel is unusable until UpdateContainer is called.
	Link(owner access.Owner) T

	// UpdateContainer rebinds the pixel to the block the sampler is positioned on.
	UpdateContainer(s access.Sampler)

	UpdateIndex(i int)
	Index() int
	IncIndex()
	IncIndexBy(k int)
	DecIndex()
	DecIndexBy(k int)

	// CreateSuitableContainer creates a zeroed image of the receiver's type.
	CreateSuitableContainer(f ndimg.ImgFactory[T], dim []int64) (ndimg.Img[T], error)
}

// native is the storage binding shared by all pixel types.  The index i counts
// pixels; types with more than one entity per pixel scale it into v.
type native[E access.Primitive] struct {
	owner access.Owner
	v     []E
	i     int
}

func newNative[E access.Primitive](entities int) native[E] {
	a := access.NewArray[E](entities)
	return native[E]{owner: access.Variable(a), v: a.Data()}
}

func (n *native[E]) UpdateContainer(s access.Sampler) {
	n.v = n.owner.Update(s).(*access.Array[E]).Data()
}

func (n *native[E]) UpdateIndex(i int) { n.i = i }

func (n *native[E]) Index() int { return n.i }

func (n *native[E]) IncIndex() { n.i++ }

func (n *native[E]) IncIndexBy(k int) { n.i += k }

func (n *native[E]) DecIndex() { n.i-- }

func (n *native[E]) DecIndexBy(k int) { n.i -= k }

var (
	_ IntegerType[*ByteType]          = (*ByteType)(nil)
	_ IntegerType[*UnsignedByteType]  = (*UnsignedByteType)(nil)
	_ IntegerType[*ShortType]         = (*ShortType)(nil)
	_ IntegerType[*UnsignedShortType] = (*UnsignedShortType)(nil)
	_ IntegerType[*IntType]           = (*IntType)(nil)
	_ IntegerType[*UnsignedIntType]   = (*UnsignedIntType)(nil)
	_ IntegerType[*LongType]          = (*LongType)(nil)
	_ IntegerType[*UnsignedLongType]  = (*UnsignedLongType)(nil)
	_ RealType[*FloatType]            = (*FloatType)(nil)
	_ RealType[*DoubleType]           = (*DoubleType)(nil)
	_ ComplexType[*ComplexFloatType]  = (*ComplexFloatType)(nil)
	_ ComplexType[*ComplexDoubleType] = (*ComplexDoubleType)(nil)
	_ NumericType[*RGBAType]          = (*RGBAType)(nil)

	_ NativeType[*ByteType]          = (*ByteType)(nil)
	_ NativeType[*UnsignedByteType]  = (*UnsignedByteType)(nil)
	_ NativeType[*ShortType]         = (*ShortType)(nil)
	_ NativeType[*UnsignedShortType] = (*UnsignedShortType)(nil)
	_ NativeType[*IntType]           = (*IntType)(nil)
	_ NativeType[*UnsignedIntType]   = (*UnsignedIntType)(nil)
	_ NativeType[*LongType]          = (*LongType)(nil)
	_ NativeType[*UnsignedLongType]  = (*UnsignedLongType)(nil)
	_ NativeType[*FloatType]         = (*FloatType)(nil)
	_ NativeType[*DoubleType]        = (*DoubleType)(nil)
	_ NativeType[*ComplexFloatType]  = (*ComplexFloatType)(nil)
	_ NativeType[*ComplexDoubleType] = (*ComplexDoubleType)(nil)
	_ NativeType[*RGBAType]          = (*RGBAType)(nil)
)
