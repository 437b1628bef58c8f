package img

import (
	"fmt"

	"github.com/janelia-flyem/ndimg/access"
	"github.com/janelia-flyem/ndimg/ndimg"
	"github.com/janelia-flyem/ndimg/pixel"
)

// PlanarImg stores each 2-D plane spanned by axes 0 and 1 in its own block.  A
// 1-D image has a single block of dim[0] pixels.  Planes are indexed by the
// remaining axes with axis 2 fastest.
type PlanarImg[T pixel.NativeType[T]] struct {
	nativeImg[T]
	slices     []access.Block
	sliceSteps []int64 // sliceSteps[d] for d >= 2; entries 0 and 1 are unused
	sliceLen   int     // pixels per plane
}

// NewPlanarImg returns a zeroed image of the given shape.
func NewPlanarImg[T pixel.NativeType[T]](dim []int64, proto T) (*PlanarImg[T], error) {
	img, err := newPlanarImg(dim, proto)
	if err != nil {
		return nil, err
	}
	for s := range img.slices {
		if img.slices[s], err = img.newBlock(int64(img.sliceLen)); err != nil {
			return nil, err
		}
	}
	img.logAllocation("planar", len(img.slices))
	return img, nil
}

// newPlanarImg returns a planar image without storage.
func newPlanarImg[T pixel.NativeType[T]](dim []int64, proto T) (*PlanarImg[T], error) {
	base, err := newNativeImg(dim, proto)
	if err != nil {
		return nil, err
	}
	n := len(base.dim)
	img := &PlanarImg[T]{nativeImg: base, sliceSteps: make([]int64, n)}

	sliceLen := base.dim[0]
	if n > 1 {
		sliceLen *= base.dim[1]
	}
	numSlices := int64(1)
	if n > 2 {
		img.sliceSteps[2] = 1
		for d := 3; d < n; d++ {
			img.sliceSteps[d] = base.dim[d-1] * img.sliceSteps[d-1]
		}
		numSlices = base.numPixels / sliceLen
	}
	if int64(int(sliceLen)) != sliceLen || int64(int(numSlices)) != numSlices {
		return nil, fmt.Errorf("%w: planes of %v exceed platform int", ndimg.ErrBadShape, dim)
	}
	img.sliceLen = int(sliceLen)
	img.slices = make([]access.Block, numSlices)
	return img, nil
}

// Update returns the plane the sampler is positioned on.
func (img *PlanarImg[T]) Update(s access.Sampler) access.Block {
	return img.slices[s.StorageIndex()]
}

// NumSlices returns the number of planes.
func (img *PlanarImg[T]) NumSlices() int {
	return len(img.slices)
}

// Plane returns the storage of plane i.
func (img *PlanarImg[T]) Plane(i int) access.Block {
	return img.slices[i]
}

// SetPlane installs b as the storage of plane i.  The block must hold exactly
// one plane of the image's storage primitive.
func (img *PlanarImg[T]) SetPlane(i int, b access.Block) error {
	if i < 0 || i >= len(img.slices) {
		return fmt.Errorf("plane %d out of range for %d planes", i, len(img.slices))
	}
	want := img.sliceLen * img.proto.EntitiesPerPixel()
	if b.Len() != want {
		return fmt.Errorf("%w: plane has %d elements, expected %d", ndimg.ErrPlaneSize, b.Len(), want)
	}
	if b.DataType() != img.proto.Primitive() {
		return fmt.Errorf("%w: plane holds %s, expected %s", ndimg.ErrPlaneSize, b.DataType(), img.proto.Primitive())
	}
	img.slices[i] = b
	return nil
}

// PositionToIndex returns the plane and within-plane index of a position.
func (img *PlanarImg[T]) PositionToIndex(position []int64) (slice, k int) {
	switch len(img.dim) {
	case 1:
		return 0, int(position[0])
	case 2:
		return 0, int(position[1]*img.dim[0] + position[0])
	}
	var s int64
	for d := 2; d < len(img.dim); d++ {
		s += position[d] * img.sliceSteps[d]
	}
	return int(s), int(position[1]*img.dim[0] + position[0])
}

// IndexToGlobalPosition writes the position of within-plane index k of plane
// slice into position.
func (img *PlanarImg[T]) IndexToGlobalPosition(slice, k int, position []int64) {
	n := len(img.dim)
	dim0 := img.dim[0]
	position[0] = int64(k) % dim0
	if n == 1 {
		return
	}
	position[1] = int64(k) / dim0
	if n == 2 {
		return
	}
	maxDim := n - 1
	s := int64(slice)
	for d := 2; d < maxDim; d++ {
		j := s / img.dim[d]
		position[d] = s - j*img.dim[d]
		s = j
	}
	position[maxDim] = s
}

// IndexToGlobalPositionDim returns axis d of the position of within-plane
// index k of plane slice.
func (img *PlanarImg[T]) IndexToGlobalPositionDim(slice, k, d int) int64 {
	switch d {
	case 0:
		return int64(k) % img.dim[0]
	case 1:
		return int64(k) / img.dim[0]
	}
	return int64(slice) / img.sliceSteps[d] % img.dim[d]
}

func (img *PlanarImg[T]) layoutKey() (string, []int64, int64) {
	return "planar", img.dim, 0
}

// EqualIterationOrder is true only for planar images of identical dimensions.
func (img *PlanarImg[T]) EqualIterationOrder(f ndimg.Interval) bool {
	return equalIterationOrder(img, f)
}

func (img *PlanarImg[T]) Factory() ndimg.ImgFactory[T] {
	return PlanarImgFactory[T]{}
}

func (img *PlanarImg[T]) Copy() ndimg.Img[T] {
	cp := &PlanarImg[T]{
		nativeImg:  img.nativeImg,
		slices:     make([]access.Block, len(img.slices)),
		sliceSteps: img.sliceSteps,
		sliceLen:   img.sliceLen,
	}
	for s, b := range img.slices {
		cp.slices[s] = b.Clone()
	}
	return cp
}

func (img *PlanarImg[T]) FirstElement() T {
	return img.Cursor().Next()
}

func (img *PlanarImg[T]) Cursor() ndimg.Cursor[T] {
	switch len(img.dim) {
	case 1:
		return newPlanarCursor1D(img)
	case 2:
		return newPlanarCursor2D(img)
	default:
		return newPlanarCursor(img)
	}
}

func (img *PlanarImg[T]) LocalizingCursor() ndimg.Cursor[T] {
	return newPlanarLocalizingCursor(img)
}

func (img *PlanarImg[T]) RandomAccess() ndimg.RandomAccess[T] {
	if len(img.dim) == 1 {
		return newPlanarRandomAccess1D(img)
	}
	return newPlanarRandomAccess(img)
}
