// Package access provides the typed storage blocks that back image containers.
// A block is a flat slice of one primitive; pixel types bind to a block and an
// index into it, and containers hand out blocks through the Owner interface as
// a traversal moves between planes or cells.
package access

import (
	"encoding/binary"
	"fmt"

	"github.com/janelia-flyem/ndimg/ndimg"
)

// Primitive is the set of element types a storage block can hold.
type Primitive interface {
	int8 | int16 | int32 | int64 | float32 | float64
}

// Block is a contiguous, fixed-length run of primitive elements.
type Block interface {
	// Len returns the number of primitive elements.
	Len() int

	// DataType returns the primitive held by the block.
	DataType() ndimg.DataType

	// CreateBlock returns a new zeroed block of the same primitive with n elements.
	CreateBlock(n int) Block

	// Clone returns a deep copy.
	Clone() Block

	MarshalBinary() ([]byte, error)
	UnmarshalBinary(data []byte) error
}

// Sampler is anything positioned within a container, i.e. a cursor or random access.
type Sampler interface {
	// StorageIndex returns the index of the block holding the current position.
	// Single-block containers return 0.
	StorageIndex() int
}

// Owner hands out the block a Sampler is currently positioned on.
type Owner interface {
	Update(s Sampler) Block
}

// Array is a block of elements of primitive E.
type Array[E Primitive] struct {
	data []E
}

type (
	ByteArray   = Array[int8]
	ShortArray  = Array[int16]
	IntArray    = Array[int32]
	LongArray   = Array[int64]
	FloatArray  = Array[float32]
	DoubleArray = Array[float64]
)

// NewArray returns a zeroed block of n elements.
func NewArray[E Primitive](n int) *Array[E] {
	return &Array[E]{data: make([]E, n)}
}

// Wrap returns a block using data directly as its storage.
func Wrap[E Primitive](data []E) *Array[E] {
	return &Array[E]{data: data}
}

// New returns a zeroed block of n elements of the storage primitive for dt.
// Unsigned types are mapped to their signed storage primitive.
func New(dt ndimg.DataType, n int) (Block, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative block length %d", ndimg.ErrBadShape, n)
	}
	switch dt.Storage() {
	case ndimg.T_int8:
		return NewArray[int8](n), nil
	case ndimg.T_int16:
		return NewArray[int16](n), nil
	case ndimg.T_int32:
		return NewArray[int32](n), nil
	case ndimg.T_int64:
		return NewArray[int64](n), nil
	case ndimg.T_float32:
		return NewArray[float32](n), nil
	case ndimg.T_float64:
		return NewArray[float64](n), nil
	default:
		return nil, fmt.Errorf("no storage block for data type %s", dt)
	}
}

// Value returns element i.  The index is only checked by the Go runtime.
func (a *Array[E]) Value(i int) E {
	return a.data[i]
}

// SetValue sets element i.
func (a *Array[E]) SetValue(i int, v E) {
	a.data[i] = v
}

// Data returns the underlying slice.
func (a *Array[E]) Data() []E {
	return a.data
}

func (a *Array[E]) Len() int {
	return len(a.data)
}

func (a *Array[E]) DataType() ndimg.DataType {
	var zero E
	switch any(zero).(type) {
	case int8:
		return ndimg.T_int8
	case int16:
		return ndimg.T_int16
	case int32:
		return ndimg.T_int32
	case int64:
		return ndimg.T_int64
	case float32:
		return ndimg.T_float32
	default:
		return ndimg.T_float64
	}
}

func (a *Array[E]) CreateBlock(n int) Block {
	return NewArray[E](n)
}

func (a *Array[E]) Clone() Block {
	data := make([]E, len(a.data))
	copy(data, a.data)
	return &Array[E]{data: data}
}

// MarshalBinary returns the elements in little-endian byte order.
func (a *Array[E]) MarshalBinary() ([]byte, error) {
	return binary.Append(make([]byte, 0, len(a.data)*ndimg.DataTypeBytes(a.DataType())), binary.LittleEndian, a.data)
}

// UnmarshalBinary replaces the elements with little-endian encoded data.
func (a *Array[E]) UnmarshalBinary(b []byte) error {
	size := ndimg.DataTypeBytes(a.DataType())
	if len(b)%size != 0 {
		return fmt.Errorf("%d bytes is not a multiple of %s element size %d", len(b), a.DataType(), size)
	}
	data := make([]E, len(b)/size)
	if _, err := binary.Decode(b, binary.LittleEndian, data); err != nil {
		return err
	}
	a.data = data
	return nil
}

// variable is the Owner of a single pixel value outside any container.
type variable struct {
	block Block
}

// Variable returns an Owner that always hands out the given block.
func Variable(b Block) Owner {
	return variable{b}
}

func (v variable) Update(Sampler) Block {
	return v.block
}
