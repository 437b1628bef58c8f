package img

import (
	"github.com/janelia-flyem/ndimg/ndimg"
	"github.com/janelia-flyem/ndimg/pixel"
)

// planarCursor iterates plane by plane.  The pixel index is the index within
// the current plane and the pixel is rebound whenever a plane is exhausted.
type planarCursor[T pixel.NativeType[T]] struct {
	img        *PlanarImg[T]
	t          T
	sliceIndex int
	lastIndex  int
	lastSlice  int
}

func newPlanarCursor[T pixel.NativeType[T]](img *PlanarImg[T]) *planarCursor[T] {
	c := &planarCursor[T]{
		img:       img,
		t:         img.proto.Link(img),
		lastIndex: img.sliceLen - 1,
		lastSlice: len(img.slices) - 1,
	}
	c.Reset()
	return c
}

func (c *planarCursor[T]) StorageIndex() int { return c.sliceIndex }

func (c *planarCursor[T]) Get() T { return c.t }

func (c *planarCursor[T]) HasNext() bool {
	return c.t.Index() < c.lastIndex || c.sliceIndex < c.lastSlice
}

func (c *planarCursor[T]) Fwd() {
	c.t.IncIndex()
	if c.t.Index() > c.lastIndex {
		c.sliceIndex++
		c.t.UpdateIndex(0)
		c.t.UpdateContainer(c)
	}
}

func (c *planarCursor[T]) Next() T {
	c.Fwd()
	return c.t
}

func (c *planarCursor[T]) JumpFwd(steps int64) {
	k := int64(c.t.Index()) + steps
	if k > int64(c.lastIndex) {
		sliceLen := int64(c.lastIndex) + 1
		c.sliceIndex += int(k / sliceLen)
		k %= sliceLen
		c.t.UpdateContainer(c)
	}
	c.t.UpdateIndex(int(k))
}

func (c *planarCursor[T]) Reset() {
	c.sliceIndex = 0
	c.t.UpdateIndex(-1)
	c.t.UpdateContainer(c)
}

func (c *planarCursor[T]) NumDims() int { return len(c.img.dim) }

func (c *planarCursor[T]) Localize(position []int64) {
	c.img.IndexToGlobalPosition(c.sliceIndex, c.t.Index(), position)
}

func (c *planarCursor[T]) LongPosition(d int) int64 {
	return c.img.IndexToGlobalPositionDim(c.sliceIndex, c.t.Index(), d)
}

func (c *planarCursor[T]) IntPosition(d int) int { return int(c.LongPosition(d)) }

func (c *planarCursor[T]) Copy() ndimg.Cursor[T] {
	cp := &planarCursor[T]{
		img:        c.img,
		t:          c.img.proto.Link(c.img),
		sliceIndex: c.sliceIndex,
		lastIndex:  c.lastIndex,
		lastSlice:  c.lastSlice,
	}
	cp.t.UpdateContainer(cp)
	cp.t.UpdateIndex(c.t.Index())
	return cp
}

// planarCursor2D iterates the single plane of a 2-D image.
type planarCursor2D[T pixel.NativeType[T]] struct {
	img       *PlanarImg[T]
	t         T
	lastIndex int
	width     int
}

func newPlanarCursor2D[T pixel.NativeType[T]](img *PlanarImg[T]) *planarCursor2D[T] {
	c := &planarCursor2D[T]{img: img, t: img.proto.Link(img), lastIndex: img.sliceLen - 1, width: int(img.dim[0])}
	c.t.UpdateContainer(c)
	c.Reset()
	return c
}

func (c *planarCursor2D[T]) StorageIndex() int { return 0 }

func (c *planarCursor2D[T]) Get() T { return c.t }

func (c *planarCursor2D[T]) HasNext() bool { return c.t.Index() < c.lastIndex }

func (c *planarCursor2D[T]) Fwd() { c.t.IncIndex() }

func (c *planarCursor2D[T]) Next() T {
	c.t.IncIndex()
	return c.t
}

func (c *planarCursor2D[T]) JumpFwd(steps int64) { c.t.IncIndexBy(int(steps)) }

func (c *planarCursor2D[T]) Reset() { c.t.UpdateIndex(-1) }

func (c *planarCursor2D[T]) NumDims() int { return 2 }

func (c *planarCursor2D[T]) Localize(position []int64) {
	k := c.t.Index()
	position[0] = int64(k % c.width)
	position[1] = int64(k / c.width)
}

func (c *planarCursor2D[T]) LongPosition(d int) int64 {
	if d == 0 {
		return int64(c.t.Index() % c.width)
	}
	return int64(c.t.Index() / c.width)
}

func (c *planarCursor2D[T]) IntPosition(d int) int { return int(c.LongPosition(d)) }

func (c *planarCursor2D[T]) Copy() ndimg.Cursor[T] {
	cp := &planarCursor2D[T]{img: c.img, t: c.img.proto.Link(c.img), lastIndex: c.lastIndex, width: c.width}
	cp.t.UpdateContainer(cp)
	cp.t.UpdateIndex(c.t.Index())
	return cp
}

// planarCursor1D iterates the single line of a 1-D image.
type planarCursor1D[T pixel.NativeType[T]] struct {
	img       *PlanarImg[T]
	t         T
	lastIndex int
}

func newPlanarCursor1D[T pixel.NativeType[T]](img *PlanarImg[T]) *planarCursor1D[T] {
	c := &planarCursor1D[T]{img: img, t: img.proto.Link(img), lastIndex: img.sliceLen - 1}
	c.t.UpdateContainer(c)
	c.Reset()
	return c
}

func (c *planarCursor1D[T]) StorageIndex() int { return 0 }

func (c *planarCursor1D[T]) Get() T { return c.t }

func (c *planarCursor1D[T]) HasNext() bool { return c.t.Index() < c.lastIndex }

func (c *planarCursor1D[T]) Fwd() { c.t.IncIndex() }

func (c *planarCursor1D[T]) Next() T {
	c.t.IncIndex()
	return c.t
}

func (c *planarCursor1D[T]) JumpFwd(steps int64) { c.t.IncIndexBy(int(steps)) }

func (c *planarCursor1D[T]) Reset() { c.t.UpdateIndex(-1) }

func (c *planarCursor1D[T]) NumDims() int { return 1 }

func (c *planarCursor1D[T]) Localize(position []int64) { position[0] = int64(c.t.Index()) }

func (c *planarCursor1D[T]) LongPosition(int) int64 { return int64(c.t.Index()) }

func (c *planarCursor1D[T]) IntPosition(int) int { return c.t.Index() }

func (c *planarCursor1D[T]) Copy() ndimg.Cursor[T] {
	cp := &planarCursor1D[T]{img: c.img, t: c.img.proto.Link(c.img), lastIndex: c.lastIndex}
	cp.t.UpdateContainer(cp)
	cp.t.UpdateIndex(c.t.Index())
	return cp
}

// planarLocalizingCursor tracks the position by carrying across axes as it moves.
type planarLocalizingCursor[T pixel.NativeType[T]] struct {
	planarCursor[T]
	position []int64
	max      []int64
}

func newPlanarLocalizingCursor[T pixel.NativeType[T]](img *PlanarImg[T]) *planarLocalizingCursor[T] {
	c := &planarLocalizingCursor[T]{
		planarCursor: planarCursor[T]{
			img:       img,
			t:         img.proto.Link(img),
			lastIndex: img.sliceLen - 1,
			lastSlice: len(img.slices) - 1,
		},
		position: make([]int64, len(img.dim)),
		max:      make([]int64, len(img.dim)),
	}
	for d, length := range img.dim {
		c.max[d] = length - 1
	}
	c.Reset()
	return c
}

func (c *planarLocalizingCursor[T]) Fwd() {
	c.t.IncIndex()
	if c.t.Index() > c.lastIndex {
		c.sliceIndex++
		c.t.UpdateIndex(0)
		c.t.UpdateContainer(c)
	}
	for d := range c.position {
		if c.position[d] < c.max[d] {
			c.position[d]++
			return
		}
		c.position[d] = 0
	}
}

func (c *planarLocalizingCursor[T]) Next() T {
	c.Fwd()
	return c.t
}

func (c *planarLocalizingCursor[T]) JumpFwd(steps int64) {
	c.planarCursor.JumpFwd(steps)
	c.img.IndexToGlobalPosition(c.sliceIndex, c.t.Index(), c.position)
}

func (c *planarLocalizingCursor[T]) Reset() {
	c.planarCursor.Reset()
	clear(c.position)
	c.position[0] = -1
}

func (c *planarLocalizingCursor[T]) Localize(position []int64) { copy(position, c.position) }

func (c *planarLocalizingCursor[T]) LongPosition(d int) int64 { return c.position[d] }

func (c *planarLocalizingCursor[T]) IntPosition(d int) int { return int(c.position[d]) }

func (c *planarLocalizingCursor[T]) Copy() ndimg.Cursor[T] {
	cp := &planarLocalizingCursor[T]{
		planarCursor: planarCursor[T]{
			img:        c.img,
			t:          c.img.proto.Link(c.img),
			sliceIndex: c.sliceIndex,
			lastIndex:  c.lastIndex,
			lastSlice:  c.lastSlice,
		},
		position: append([]int64(nil), c.position...),
		max:      c.max,
	}
	cp.t.UpdateContainer(cp)
	cp.t.UpdateIndex(c.t.Index())
	return cp
}
