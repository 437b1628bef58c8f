package img

import (
	"fmt"

	"github.com/janelia-flyem/ndimg/access"
	"github.com/janelia-flyem/ndimg/ndimg"
	"github.com/janelia-flyem/ndimg/pixel"
)

// DefaultCellSize is the edge length of cells when none is given.
const DefaultCellSize = 64

// cell is one block of a CellImg covering the box [min, min+dim).
type cell struct {
	min       []int64
	dim       []int64
	steps     []int64
	numPixels int64
	block     access.Block
}

// CellImg divides an image into a regular grid of hypercubic cells with edge
// cellSize, truncated at the upper image borders.  Each cell is stored in its
// own block with axis 0 fastest, and cells are iterated in grid order with
// axis 0 fastest.
type CellImg[T pixel.NativeType[T]] struct {
	nativeImg[T]
	cellSize  int64
	grid      []int64
	gridSteps []int64
	cells     []*cell
}

// NewCellImg returns a zeroed image of the given shape and cell edge length.
func NewCellImg[T pixel.NativeType[T]](dim []int64, cellSize int, proto T) (*CellImg[T], error) {
	base, err := newNativeImg(dim, proto)
	if err != nil {
		return nil, err
	}
	if cellSize < 1 {
		return nil, fmt.Errorf("%w: cell size %d", ndimg.ErrBadShape, cellSize)
	}
	n := len(base.dim)
	img := &CellImg[T]{nativeImg: base, cellSize: int64(cellSize), grid: make([]int64, n)}
	for d, length := range base.dim {
		img.grid[d] = ndimg.CeilDiv(length, img.cellSize)
	}
	img.gridSteps = ndimg.Steps(img.grid)
	numCells, err := ndimg.CheckShape(img.grid)
	if err != nil {
		return nil, err
	}

	img.cells = make([]*cell, numCells)
	gridPos := make([]int64, n)
	for i := range img.cells {
		ndimg.IndexToPosition(int64(i), img.grid, gridPos)
		c := &cell{min: make([]int64, n), dim: make([]int64, n)}
		for d := range gridPos {
			c.min[d] = gridPos[d] * img.cellSize
			c.dim[d] = min(img.cellSize, base.dim[d]-c.min[d])
		}
		c.steps = ndimg.Steps(c.dim)
		c.numPixels = c.steps[n-1] * c.dim[n-1]
		if c.block, err = img.newBlock(c.numPixels); err != nil {
			return nil, err
		}
		img.cells[i] = c
	}
	img.logAllocation("cell", len(img.cells))
	return img, nil
}

// Update returns the block of the cell the sampler is positioned on.
func (img *CellImg[T]) Update(s access.Sampler) access.Block {
	return img.cells[s.StorageIndex()].block
}

// CellSize returns the edge length of full cells.
func (img *CellImg[T]) CellSize() int { return int(img.cellSize) }

// NumCells returns the number of cells.
func (img *CellImg[T]) NumCells() int { return len(img.cells) }

// CellBlock returns the storage of cell i.
func (img *CellImg[T]) CellBlock(i int) access.Block { return img.cells[i].block }

// CellInterval returns the box covered by cell i.
func (img *CellImg[T]) CellInterval(i int) *ndimg.FinalInterval {
	c := img.cells[i]
	max := make([]int64, len(c.min))
	for d := range max {
		max[d] = c.min[d] + c.dim[d] - 1
	}
	iv, _ := ndimg.NewFinalInterval(c.min, max)
	return iv
}

func (img *CellImg[T]) layoutKey() (string, []int64, int64) {
	return "cell", img.dim, img.cellSize
}

// EqualIterationOrder is true only for cell images of identical dimensions and cell size.
func (img *CellImg[T]) EqualIterationOrder(f ndimg.Interval) bool {
	return equalIterationOrder(img, f)
}

func (img *CellImg[T]) Factory() ndimg.ImgFactory[T] {
	return CellImgFactory[T]{CellSize: int(img.cellSize)}
}

func (img *CellImg[T]) Copy() ndimg.Img[T] {
	cp := &CellImg[T]{
		nativeImg: img.nativeImg,
		cellSize:  img.cellSize,
		grid:      img.grid,
		gridSteps: img.gridSteps,
		cells:     make([]*cell, len(img.cells)),
	}
	for i, c := range img.cells {
		dup := *c
		dup.block = c.block.Clone()
		cp.cells[i] = &dup
	}
	return cp
}

func (img *CellImg[T]) FirstElement() T {
	return img.Cursor().Next()
}

func (img *CellImg[T]) Cursor() ndimg.Cursor[T] {
	c := &cellCursor[T]{img: img, t: img.proto.Link(img), lastCell: len(img.cells) - 1}
	c.Reset()
	return c
}

func (img *CellImg[T]) LocalizingCursor() ndimg.Cursor[T] {
	c := &cellLocalizingCursor[T]{
		cellCursor: cellCursor[T]{img: img, t: img.proto.Link(img), lastCell: len(img.cells) - 1},
		position:   make([]int64, len(img.dim)),
	}
	c.Reset()
	return c
}

func (img *CellImg[T]) RandomAccess() ndimg.RandomAccess[T] {
	ra := &cellRandomAccess[T]{img: img, t: img.proto.Link(img), position: make([]int64, len(img.dim))}
	ra.relocate()
	return ra
}

// cellCursor iterates cell by cell, rebinding the pixel at each cell boundary.
type cellCursor[T pixel.NativeType[T]] struct {
	img       *CellImg[T]
	t         T
	cellIndex int
	lastIndex int
	lastCell  int
}

func (c *cellCursor[T]) StorageIndex() int { return c.cellIndex }

func (c *cellCursor[T]) Get() T { return c.t }

func (c *cellCursor[T]) HasNext() bool {
	return c.t.Index() < c.lastIndex || c.cellIndex < c.lastCell
}

// nextCell moves to the start of the following cell.
func (c *cellCursor[T]) nextCell() {
	c.cellIndex++
	c.lastIndex = int(c.img.cells[c.cellIndex].numPixels - 1)
	c.t.UpdateIndex(0)
	c.t.UpdateContainer(c)
}

func (c *cellCursor[T]) Fwd() {
	c.t.IncIndex()
	if c.t.Index() > c.lastIndex {
		c.nextCell()
	}
}

func (c *cellCursor[T]) Next() T {
	c.Fwd()
	return c.t
}

func (c *cellCursor[T]) JumpFwd(steps int64) {
	k := int64(c.t.Index()) + steps
	if k > int64(c.lastIndex) {
		for k > int64(c.lastIndex) {
			k -= int64(c.lastIndex) + 1
			c.cellIndex++
			c.lastIndex = int(c.img.cells[c.cellIndex].numPixels - 1)
		}
		c.t.UpdateContainer(c)
	}
	c.t.UpdateIndex(int(k))
}

func (c *cellCursor[T]) Reset() {
	c.cellIndex = 0
	c.lastIndex = int(c.img.cells[0].numPixels - 1)
	c.t.UpdateIndex(-1)
	c.t.UpdateContainer(c)
}

func (c *cellCursor[T]) NumDims() int { return len(c.img.dim) }

func (c *cellCursor[T]) Localize(position []int64) {
	cl := c.img.cells[c.cellIndex]
	ndimg.IndexToPosition(int64(c.t.Index()), cl.dim, position)
	for d := range position {
		position[d] += cl.min[d]
	}
}

func (c *cellCursor[T]) LongPosition(d int) int64 {
	cl := c.img.cells[c.cellIndex]
	return cl.min[d] + int64(c.t.Index())/cl.steps[d]%cl.dim[d]
}

func (c *cellCursor[T]) IntPosition(d int) int { return int(c.LongPosition(d)) }

func (c *cellCursor[T]) Copy() ndimg.Cursor[T] {
	cp := &cellCursor[T]{
		img:       c.img,
		t:         c.img.proto.Link(c.img),
		cellIndex: c.cellIndex,
		lastIndex: c.lastIndex,
		lastCell:  c.lastCell,
	}
	cp.t.UpdateContainer(cp)
	cp.t.UpdateIndex(c.t.Index())
	return cp
}

// cellLocalizingCursor tracks the position, carrying within the current cell.
type cellLocalizingCursor[T pixel.NativeType[T]] struct {
	cellCursor[T]
	position []int64
}

func (c *cellLocalizingCursor[T]) Fwd() {
	c.t.IncIndex()
	if c.t.Index() > c.lastIndex {
		c.nextCell()
		copy(c.position, c.img.cells[c.cellIndex].min)
		return
	}
	cl := c.img.cells[c.cellIndex]
	for d := range c.position {
		if c.position[d] < cl.min[d]+cl.dim[d]-1 {
			c.position[d]++
			return
		}
		c.position[d] = cl.min[d]
	}
}

func (c *cellLocalizingCursor[T]) Next() T {
	c.Fwd()
	return c.t
}

func (c *cellLocalizingCursor[T]) JumpFwd(steps int64) {
	c.cellCursor.JumpFwd(steps)
	c.cellCursor.Localize(c.position)
}

func (c *cellLocalizingCursor[T]) Reset() {
	c.cellCursor.Reset()
	clear(c.position)
	c.position[0] = -1
}

func (c *cellLocalizingCursor[T]) Localize(position []int64) { copy(position, c.position) }

func (c *cellLocalizingCursor[T]) LongPosition(d int) int64 { return c.position[d] }

func (c *cellLocalizingCursor[T]) IntPosition(d int) int { return int(c.position[d]) }

func (c *cellLocalizingCursor[T]) Copy() ndimg.Cursor[T] {
	cp := &cellLocalizingCursor[T]{
		cellCursor: cellCursor[T]{
			img:       c.img,
			t:         c.img.proto.Link(c.img),
			cellIndex: c.cellIndex,
			lastIndex: c.lastIndex,
			lastCell:  c.lastCell,
		},
		position: append([]int64(nil), c.position...),
	}
	cp.t.UpdateContainer(cp)
	cp.t.UpdateIndex(c.t.Index())
	return cp
}

// cellRandomAccess moves within the current cell by index steps and looks up
// the containing cell only when a move leaves it.
type cellRandomAccess[T pixel.NativeType[T]] struct {
	img       *CellImg[T]
	t         T
	cellIndex int
	cell      *cell
	position  []int64
}

func (ra *cellRandomAccess[T]) StorageIndex() int { return ra.cellIndex }

func (ra *cellRandomAccess[T]) Get() T { return ra.t }

func (ra *cellRandomAccess[T]) NumDims() int { return len(ra.position) }

// relocate finds the cell containing the position and rebinds to it.
func (ra *cellRandomAccess[T]) relocate() {
	var ci int64
	for d, x := range ra.position {
		ci += x / ra.img.cellSize * ra.img.gridSteps[d]
	}
	ra.cellIndex = int(ci)
	ra.cell = ra.img.cells[ci]
	var k int64
	for d, x := range ra.position {
		k += (x - ra.cell.min[d]) * ra.cell.steps[d]
	}
	ra.t.UpdateContainer(ra)
	ra.t.UpdateIndex(int(k))
}

func (ra *cellRandomAccess[T]) Move(distance int64, d int) {
	ra.position[d] += distance
	local := ra.position[d] - ra.cell.min[d]
	if local >= 0 && local < ra.cell.dim[d] {
		ra.t.IncIndexBy(int(distance * ra.cell.steps[d]))
		return
	}
	ra.relocate()
}

func (ra *cellRandomAccess[T]) Fwd(d int) { ra.Move(1, d) }

func (ra *cellRandomAccess[T]) Bck(d int) { ra.Move(-1, d) }

func (ra *cellRandomAccess[T]) MoveBy(distance []int64) {
	for d, dist := range distance {
		ra.position[d] += dist
	}
	ra.relocate()
}

func (ra *cellRandomAccess[T]) SetPosition(position []int64) {
	copy(ra.position, position)
	ra.relocate()
}

func (ra *cellRandomAccess[T]) SetPositionDim(position int64, d int) {
	ra.Move(position-ra.position[d], d)
}

func (ra *cellRandomAccess[T]) Localize(position []int64) { copy(position, ra.position) }

func (ra *cellRandomAccess[T]) LongPosition(d int) int64 { return ra.position[d] }

func (ra *cellRandomAccess[T]) IntPosition(d int) int { return int(ra.position[d]) }

func (ra *cellRandomAccess[T]) Copy() ndimg.RandomAccess[T] {
	cp := &cellRandomAccess[T]{img: ra.img, t: ra.img.proto.Link(ra.img), position: append([]int64(nil), ra.position...)}
	cp.relocate()
	return cp
}
