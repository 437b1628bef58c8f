package img

import (
	"github.com/janelia-flyem/ndimg/ndimg"
	"github.com/janelia-flyem/ndimg/pixel"
)

// planarRandomAccess keeps the plane index and within-plane index in step with
// its position.  Moves along axes 0 and 1 only shift the pixel index; moves
// along higher axes change plane and rebind the pixel.
type planarRandomAccess[T pixel.NativeType[T]] struct {
	img        *PlanarImg[T]
	t          T
	sliceIndex int
	width      int
	position   []int64
}

func newPlanarRandomAccess[T pixel.NativeType[T]](img *PlanarImg[T]) *planarRandomAccess[T] {
	ra := &planarRandomAccess[T]{
		img:      img,
		t:        img.proto.Link(img),
		width:    int(img.dim[0]),
		position: make([]int64, len(img.dim)),
	}
	ra.t.UpdateContainer(ra)
	ra.t.UpdateIndex(0)
	return ra
}

func (ra *planarRandomAccess[T]) StorageIndex() int { return ra.sliceIndex }

func (ra *planarRandomAccess[T]) Get() T { return ra.t }

func (ra *planarRandomAccess[T]) NumDims() int { return len(ra.position) }

func (ra *planarRandomAccess[T]) Fwd(d int) {
	ra.position[d]++
	switch d {
	case 0:
		ra.t.IncIndex()
	case 1:
		ra.t.IncIndexBy(ra.width)
	default:
		ra.sliceIndex += int(ra.img.sliceSteps[d])
		ra.t.UpdateContainer(ra)
	}
}

func (ra *planarRandomAccess[T]) Bck(d int) {
	ra.position[d]--
	switch d {
	case 0:
		ra.t.DecIndex()
	case 1:
		ra.t.DecIndexBy(ra.width)
	default:
		ra.sliceIndex -= int(ra.img.sliceSteps[d])
		ra.t.UpdateContainer(ra)
	}
}

func (ra *planarRandomAccess[T]) Move(distance int64, d int) {
	ra.position[d] += distance
	switch d {
	case 0:
		ra.t.IncIndexBy(int(distance))
	case 1:
		ra.t.IncIndexBy(int(distance) * ra.width)
	default:
		ra.sliceIndex += int(distance * ra.img.sliceSteps[d])
		ra.t.UpdateContainer(ra)
	}
}

// MoveBy rebinds at most once however many higher axes change.
func (ra *planarRandomAccess[T]) MoveBy(distance []int64) {
	ra.position[0] += distance[0]
	k := int(distance[0])
	if len(distance) > 1 {
		ra.position[1] += distance[1]
		k += int(distance[1]) * ra.width
	}
	ra.t.IncIndexBy(k)

	var ds int64
	for d := 2; d < len(distance); d++ {
		ra.position[d] += distance[d]
		ds += distance[d] * ra.img.sliceSteps[d]
	}
	if ds != 0 {
		ra.sliceIndex += int(ds)
		ra.t.UpdateContainer(ra)
	}
}

func (ra *planarRandomAccess[T]) SetPosition(position []int64) {
	copy(ra.position, position)
	s, k := ra.img.PositionToIndex(ra.position)
	ra.sliceIndex = s
	ra.t.UpdateContainer(ra)
	ra.t.UpdateIndex(k)
}

func (ra *planarRandomAccess[T]) SetPositionDim(position int64, d int) {
	ra.Move(position-ra.position[d], d)
}

func (ra *planarRandomAccess[T]) Localize(position []int64) { copy(position, ra.position) }

func (ra *planarRandomAccess[T]) LongPosition(d int) int64 { return ra.position[d] }

func (ra *planarRandomAccess[T]) IntPosition(d int) int { return int(ra.position[d]) }

func (ra *planarRandomAccess[T]) Copy() ndimg.RandomAccess[T] {
	cp := &planarRandomAccess[T]{
		img:        ra.img,
		t:          ra.img.proto.Link(ra.img),
		sliceIndex: ra.sliceIndex,
		width:      ra.width,
		position:   append([]int64(nil), ra.position...),
	}
	cp.t.UpdateContainer(cp)
	cp.t.UpdateIndex(ra.t.Index())
	return cp
}

// planarRandomAccess1D addresses the single block of a 1-D image.
type planarRandomAccess1D[T pixel.NativeType[T]] struct {
	img      *PlanarImg[T]
	t        T
	position []int64
}

func newPlanarRandomAccess1D[T pixel.NativeType[T]](img *PlanarImg[T]) *planarRandomAccess1D[T] {
	ra := &planarRandomAccess1D[T]{img: img, t: img.proto.Link(img), position: make([]int64, 1)}
	ra.t.UpdateContainer(ra)
	ra.t.UpdateIndex(0)
	return ra
}

func (ra *planarRandomAccess1D[T]) StorageIndex() int { return 0 }

func (ra *planarRandomAccess1D[T]) Get() T { return ra.t }

func (ra *planarRandomAccess1D[T]) NumDims() int { return 1 }

func (ra *planarRandomAccess1D[T]) Fwd(int) {
	ra.position[0]++
	ra.t.IncIndex()
}

func (ra *planarRandomAccess1D[T]) Bck(int) {
	ra.position[0]--
	ra.t.DecIndex()
}

func (ra *planarRandomAccess1D[T]) Move(distance int64, _ int) {
	ra.position[0] += distance
	ra.t.IncIndexBy(int(distance))
}

func (ra *planarRandomAccess1D[T]) MoveBy(distance []int64) { ra.Move(distance[0], 0) }

func (ra *planarRandomAccess1D[T]) SetPosition(position []int64) {
	ra.position[0] = position[0]
	ra.t.UpdateIndex(int(position[0]))
}

func (ra *planarRandomAccess1D[T]) SetPositionDim(position int64, _ int) {
	ra.position[0] = position
	ra.t.UpdateIndex(int(position))
}

func (ra *planarRandomAccess1D[T]) Localize(position []int64) { position[0] = ra.position[0] }

func (ra *planarRandomAccess1D[T]) LongPosition(int) int64 { return ra.position[0] }

func (ra *planarRandomAccess1D[T]) IntPosition(int) int { return int(ra.position[0]) }

func (ra *planarRandomAccess1D[T]) Copy() ndimg.RandomAccess[T] {
	cp := &planarRandomAccess1D[T]{img: ra.img, t: ra.img.proto.Link(ra.img), position: []int64{ra.position[0]}}
	cp.t.UpdateContainer(cp)
	cp.t.UpdateIndex(ra.t.Index())
	return cp
}
