package ndimg

import "errors"

var (
	// ErrBadShape is returned when an image or interval is constructed with an
	// unusable shape: no dimensions, too many dimensions, a non-positive axis
	// length, or an element count that does not fit in 64 bits.
	ErrBadShape = errors.New("bad shape")

	// ErrPlaneSize is returned when a storage block offered to a container does
	// not match the size or primitive the container expects.
	ErrPlaneSize = errors.New("bad plane size")
)
