package img

import (
	"github.com/janelia-flyem/ndimg/access"
	"github.com/janelia-flyem/ndimg/ndimg"
	"github.com/janelia-flyem/ndimg/pixel"
)

// ArrayImg stores all pixels in a single block.
type ArrayImg[T pixel.NativeType[T]] struct {
	nativeImg[T]
	data  access.Block
	steps []int64
}

// NewArrayImg returns a zeroed image of the given shape.
func NewArrayImg[T pixel.NativeType[T]](dim []int64, proto T) (*ArrayImg[T], error) {
	base, err := newNativeImg(dim, proto)
	if err != nil {
		return nil, err
	}
	data, err := base.newBlock(base.numPixels)
	if err != nil {
		return nil, err
	}
	img := &ArrayImg[T]{nativeImg: base, data: data, steps: ndimg.Steps(base.dim)}
	img.logAllocation("array", 1)
	return img, nil
}

// Update returns the single storage block.
func (img *ArrayImg[T]) Update(access.Sampler) access.Block {
	return img.data
}

// Block returns the storage of the image.
func (img *ArrayImg[T]) Block() access.Block {
	return img.data
}

func (img *ArrayImg[T]) layoutKey() (string, []int64, int64) {
	return "array", img.dim, 0
}

func (img *ArrayImg[T]) EqualIterationOrder(f ndimg.Interval) bool {
	return equalIterationOrder(img, f)
}

func (img *ArrayImg[T]) Factory() ndimg.ImgFactory[T] {
	return ArrayImgFactory[T]{}
}

func (img *ArrayImg[T]) Copy() ndimg.Img[T] {
	return &ArrayImg[T]{nativeImg: img.nativeImg, data: img.data.Clone(), steps: img.steps}
}

func (img *ArrayImg[T]) FirstElement() T {
	return img.Cursor().Next()
}

func (img *ArrayImg[T]) Cursor() ndimg.Cursor[T] {
	c := &arrayCursor[T]{img: img, t: img.proto.Link(img), last: int(img.numPixels - 1)}
	c.t.UpdateContainer(c)
	c.Reset()
	return c
}

func (img *ArrayImg[T]) LocalizingCursor() ndimg.Cursor[T] {
	c := &arrayLocalizingCursor[T]{
		arrayCursor: arrayCursor[T]{img: img, t: img.proto.Link(img), last: int(img.numPixels - 1)},
		position:    make([]int64, len(img.dim)),
	}
	c.t.UpdateContainer(c)
	c.Reset()
	return c
}

func (img *ArrayImg[T]) RandomAccess() ndimg.RandomAccess[T] {
	ra := &arrayRandomAccess[T]{img: img, t: img.proto.Link(img), position: make([]int64, len(img.dim))}
	ra.t.UpdateContainer(ra)
	ra.t.UpdateIndex(0)
	return ra
}

// arrayCursor walks the single block by index and only computes positions on request.
type arrayCursor[T pixel.NativeType[T]] struct {
	img  *ArrayImg[T]
	t    T
	last int
}

func (c *arrayCursor[T]) StorageIndex() int { return 0 }

func (c *arrayCursor[T]) Get() T { return c.t }

func (c *arrayCursor[T]) HasNext() bool { return c.t.Index() < c.last }

func (c *arrayCursor[T]) Fwd() { c.t.IncIndex() }

func (c *arrayCursor[T]) JumpFwd(steps int64) { c.t.IncIndexBy(int(steps)) }

func (c *arrayCursor[T]) Reset() { c.t.UpdateIndex(-1) }

func (c *arrayCursor[T]) Next() T {
	c.t.IncIndex()
	return c.t
}

func (c *arrayCursor[T]) NumDims() int { return len(c.img.dim) }

func (c *arrayCursor[T]) Localize(position []int64) {
	ndimg.IndexToPosition(int64(c.t.Index()), c.img.dim, position)
}

func (c *arrayCursor[T]) LongPosition(d int) int64 {
	return int64(c.t.Index()) / c.img.steps[d] % c.img.dim[d]
}

func (c *arrayCursor[T]) IntPosition(d int) int { return int(c.LongPosition(d)) }

func (c *arrayCursor[T]) Copy() ndimg.Cursor[T] {
	cp := &arrayCursor[T]{img: c.img, t: c.img.proto.Link(c.img), last: c.last}
	cp.t.UpdateContainer(cp)
	cp.t.UpdateIndex(c.t.Index())
	return cp
}

// arrayLocalizingCursor additionally tracks its position while moving.
type arrayLocalizingCursor[T pixel.NativeType[T]] struct {
	arrayCursor[T]
	position []int64
}

func (c *arrayLocalizingCursor[T]) Fwd() {
	c.t.IncIndex()
	for d := range c.position {
		if c.position[d] < c.img.dim[d]-1 {
			c.position[d]++
			return
		}
		c.position[d] = 0
	}
}

func (c *arrayLocalizingCursor[T]) Next() T {
	c.Fwd()
	return c.t
}

func (c *arrayLocalizingCursor[T]) JumpFwd(steps int64) {
	c.t.IncIndexBy(int(steps))
	ndimg.IndexToPosition(int64(c.t.Index()), c.img.dim, c.position)
}

func (c *arrayLocalizingCursor[T]) Reset() {
	c.t.UpdateIndex(-1)
	clear(c.position)
	c.position[0] = -1
}

func (c *arrayLocalizingCursor[T]) Localize(position []int64) { copy(position, c.position) }

func (c *arrayLocalizingCursor[T]) LongPosition(d int) int64 { return c.position[d] }

func (c *arrayLocalizingCursor[T]) IntPosition(d int) int { return int(c.position[d]) }

func (c *arrayLocalizingCursor[T]) Copy() ndimg.Cursor[T] {
	cp := &arrayLocalizingCursor[T]{
		arrayCursor: arrayCursor[T]{img: c.img, t: c.img.proto.Link(c.img), last: c.last},
		position:    append([]int64(nil), c.position...),
	}
	cp.t.UpdateContainer(cp)
	cp.t.UpdateIndex(c.t.Index())
	return cp
}

// arrayRandomAccess moves by the per-axis index steps of the block.
type arrayRandomAccess[T pixel.NativeType[T]] struct {
	img      *ArrayImg[T]
	t        T
	position []int64
}

func (ra *arrayRandomAccess[T]) StorageIndex() int { return 0 }

func (ra *arrayRandomAccess[T]) Get() T { return ra.t }

func (ra *arrayRandomAccess[T]) NumDims() int { return len(ra.position) }

func (ra *arrayRandomAccess[T]) Fwd(d int) {
	ra.position[d]++
	ra.t.IncIndexBy(int(ra.img.steps[d]))
}

func (ra *arrayRandomAccess[T]) Bck(d int) {
	ra.position[d]--
	ra.t.DecIndexBy(int(ra.img.steps[d]))
}

func (ra *arrayRandomAccess[T]) Move(distance int64, d int) {
	ra.position[d] += distance
	ra.t.IncIndexBy(int(distance * ra.img.steps[d]))
}

func (ra *arrayRandomAccess[T]) MoveBy(distance []int64) {
	for d, dist := range distance {
		ra.Move(dist, d)
	}
}

func (ra *arrayRandomAccess[T]) SetPosition(position []int64) {
	copy(ra.position, position)
	ra.t.UpdateIndex(int(ndimg.PositionToIndex(ra.position, ra.img.dim)))
}

func (ra *arrayRandomAccess[T]) SetPositionDim(position int64, d int) {
	ra.Move(position-ra.position[d], d)
}

func (ra *arrayRandomAccess[T]) Localize(position []int64) { copy(position, ra.position) }

func (ra *arrayRandomAccess[T]) LongPosition(d int) int64 { return ra.position[d] }

func (ra *arrayRandomAccess[T]) IntPosition(d int) int { return int(ra.position[d]) }

func (ra *arrayRandomAccess[T]) Copy() ndimg.RandomAccess[T] {
	cp := &arrayRandomAccess[T]{img: ra.img, t: ra.img.proto.Link(ra.img), position: append([]int64(nil), ra.position...)}
	cp.t.UpdateContainer(cp)
	cp.t.UpdateIndex(ra.t.Index())
	return cp
}
