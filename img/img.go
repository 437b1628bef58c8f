/*
Package img holds the in-memory image containers: ArrayImg (one flat block),
PlanarImg (one block per 2-D plane) and CellImg (a regular grid of blocks).

All containers iterate with axis 0 fastest.  Cursors and random accesses own a
single pixel handle that is rebound to the current block whenever they move
onto another plane or cell, so Get() returns the same handle for the lifetime
of the traversal.  Hot-path operations do not validate positions.
*/
package img

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/janelia-flyem/ndimg/access"
	"github.com/janelia-flyem/ndimg/ndimg"
	"github.com/janelia-flyem/ndimg/pixel"
)

// nativeImg holds the shape and prototype pixel shared by all containers.
type nativeImg[T pixel.NativeType[T]] struct {
	dim       []int64
	numPixels int64
	proto     T
}

func newNativeImg[T pixel.NativeType[T]](dim []int64, proto T) (nativeImg[T], error) {
	numPixels, err := ndimg.CheckShape(dim)
	if err != nil {
		return nativeImg[T]{}, err
	}
	if _, err := ndimg.CheckedMul(numPixels, int64(proto.EntitiesPerPixel())); err != nil {
		return nativeImg[T]{}, err
	}
	d := make([]int64, len(dim))
	copy(d, dim)
	return nativeImg[T]{dim: d, numPixels: numPixels, proto: proto}, nil
}

func (img *nativeImg[T]) NumDims() int { return len(img.dim) }

func (img *nativeImg[T]) Min(d int) int64 { return 0 }

func (img *nativeImg[T]) Max(d int) int64 { return img.dim[d] - 1 }

func (img *nativeImg[T]) Dimension(d int) int64 { return img.dim[d] }

// Dimensions returns a copy of the per-axis lengths.
func (img *nativeImg[T]) Dimensions() []int64 {
	d := make([]int64, len(img.dim))
	copy(d, img.dim)
	return d
}

// Size returns the number of pixels.
func (img *nativeImg[T]) Size() int64 { return img.numPixels }

// Prototype returns the pixel type the image was created for.
func (img *nativeImg[T]) Prototype() T { return img.proto }

// newBlock allocates storage for numPixels pixels of the prototype's primitive.
func (img *nativeImg[T]) newBlock(numPixels int64) (access.Block, error) {
	n := numPixels * int64(img.proto.EntitiesPerPixel())
	if int64(int(n)) != n {
		return nil, fmt.Errorf("%w: block of %d elements exceeds platform int", ndimg.ErrBadShape, n)
	}
	return access.New(img.proto.Primitive(), int(n))
}

// logAllocation records the memory taken by a new container at debug level.
func (img *nativeImg[T]) logAllocation(layout string, numBlocks int) {
	bytes := uint64(img.numPixels) * uint64(img.proto.BitsPerPixel()/8)
	ndimg.Debugf("Allocated %s %s image %v: %s in %s blocks\n", layout, img.proto.DataType(),
		img.dim, humanize.Bytes(bytes), humanize.Comma(int64(numBlocks)))
}

// layout identifies the iteration order of a container independent of pixel type.
type layout interface {
	layoutKey() (kind string, dim []int64, cellSize int64)
}

func equalIterationOrder(a layout, f ndimg.Interval) bool {
	b, ok := f.(layout)
	if !ok {
		return false
	}
	kindA, dimA, cellA := a.layoutKey()
	kindB, dimB, cellB := b.layoutKey()
	if kindA != kindB || cellA != cellB || len(dimA) != len(dimB) {
		return false
	}
	for d := range dimA {
		if dimA[d] != dimB[d] {
			return false
		}
	}
	return true
}

// CopyInto sets every pixel of dst to the value of the pixel at the same
// position in src.  Both images must have the same dimensions.  When the
// iteration orders agree, both are walked in lockstep; otherwise src is
// sampled through a random access positioned by dst's localizing cursor.
func CopyInto[T pixel.Type[T]](dst, src ndimg.Img[T]) error {
	if !ndimg.EqualDimensions(dst, src) {
		return fmt.Errorf("%w: cannot copy %v into %v", ndimg.ErrBadShape, ndimg.Dimensions(src), ndimg.Dimensions(dst))
	}
	if dst.EqualIterationOrder(src) {
		c := dst.Cursor()
		s := src.Cursor()
		for c.HasNext() {
			c.Next().Set(s.Next())
		}
		return nil
	}
	pos := make([]int64, dst.NumDims())
	c := dst.LocalizingCursor()
	ra := src.RandomAccess()
	for c.HasNext() {
		t := c.Next()
		c.Localize(pos)
		ra.SetPosition(pos)
		t.Set(ra.Get())
	}
	return nil
}
