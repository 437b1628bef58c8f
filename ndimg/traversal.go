package ndimg

// Sampler gives access to the pixel at the current position.  The returned handle
// is the same for the lifetime of the sampler and is rebound as the sampler moves,
// so callers must Copy() a pixel value they wish to keep.
type Sampler[T any] interface {
	Get() T
}

// Localizable reports the integer position of a traversal.
type Localizable interface {
	NumDims() int

	// Localize writes the current position into position, which must have NumDims elements.
	Localize(position []int64)

	IntPosition(d int) int
	LongPosition(d int) int64
}

// Positionable can be moved to arbitrary integer positions.
type Positionable interface {
	NumDims() int
	Fwd(d int)
	Bck(d int)
	Move(distance int64, d int)
	MoveBy(distance []int64)
	SetPosition(position []int64)
	SetPositionDim(position int64, d int)
}

// Iterator walks every element of a container exactly once in the container's
// iteration order.  A fresh or reset iterator is positioned before the first element.
type Iterator interface {
	JumpFwd(steps int64)
	Fwd()
	Reset()
	HasNext() bool
}

// Cursor is an Iterator that also samples and localizes the current element.
type Cursor[T any] interface {
	Iterator
	Sampler[T]
	Localizable

	// Next advances and returns the pixel at the new position.
	Next() T

	// Copy returns an independent cursor at the same position.
	Copy() Cursor[T]
}

// RandomAccess samples pixels at arbitrary positions.
type RandomAccess[T any] interface {
	Positionable
	Localizable
	Sampler[T]

	// Copy returns an independent random access at the same position.
	Copy() RandomAccess[T]
}

// IterableInterval is an Interval whose elements can be visited by cursors.
type IterableInterval[T any] interface {
	Interval

	// Size returns the number of pixels.
	Size() int64

	Cursor() Cursor[T]
	LocalizingCursor() Cursor[T]

	// FirstElement returns a pixel bound to the first element in iteration order.
	FirstElement() T

	// EqualIterationOrder returns true if cursors over the receiver and over f
	// visit corresponding positions in the same order.
	EqualIterationOrder(f Interval) bool
}

// Img is an in-memory image: an iterable interval with random access.
type Img[T any] interface {
	IterableInterval[T]
	RandomAccess() RandomAccess[T]

	// Factory returns a factory creating images of the same layout.
	Factory() ImgFactory[T]

	// Copy returns a deep copy of the image.
	Copy() Img[T]
}

// ImgFactory creates zero-filled images of a given shape for a prototype pixel.
type ImgFactory[T any] interface {
	Create(dim []int64, proto T) (Img[T], error)
}
