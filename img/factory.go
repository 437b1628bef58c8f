package img

import (
	"fmt"
	"strings"

	"github.com/janelia-flyem/ndimg/ndimg"
	"github.com/janelia-flyem/ndimg/pixel"
)

// ArrayImgFactory creates ArrayImg containers.
type ArrayImgFactory[T pixel.NativeType[T]] struct{}

func (f ArrayImgFactory[T]) Create(dim []int64, proto T) (ndimg.Img[T], error) {
	img, err := NewArrayImg(dim, proto)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// PlanarImgFactory creates PlanarImg containers.
type PlanarImgFactory[T pixel.NativeType[T]] struct{}

func (f PlanarImgFactory[T]) Create(dim []int64, proto T) (ndimg.Img[T], error) {
	img, err := NewPlanarImg(dim, proto)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// CellImgFactory creates CellImg containers with the given cell edge length, or
// DefaultCellSize if zero.
type CellImgFactory[T pixel.NativeType[T]] struct {
	CellSize int
}

func (f CellImgFactory[T]) Create(dim []int64, proto T) (ndimg.Img[T], error) {
	cellSize := f.CellSize
	if cellSize == 0 {
		cellSize = DefaultCellSize
	}
	img, err := NewCellImg(dim, cellSize, proto)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// NewFactory returns the factory for a layout name: "array", "planar" or "cell".
// The cell size is only used by the cell layout.
func NewFactory[T pixel.NativeType[T]](layout string, cellSize int) (ndimg.ImgFactory[T], error) {
	switch strings.ToLower(layout) {
	case "array":
		return ArrayImgFactory[T]{}, nil
	case "planar":
		return PlanarImgFactory[T]{}, nil
	case "cell":
		return CellImgFactory[T]{CellSize: cellSize}, nil
	default:
		return nil, fmt.Errorf("unknown image layout %q", layout)
	}
}

// Create returns a zeroed image of the prototype's type using factory f.
func Create[T pixel.NativeType[T]](f ndimg.ImgFactory[T], dim []int64, proto T) (ndimg.Img[T], error) {
	return proto.CreateSuitableContainer(f, dim)
}

var (
	_ ndimg.Img[*pixel.FloatType] = (*ArrayImg[*pixel.FloatType])(nil)
	_ ndimg.Img[*pixel.FloatType] = (*PlanarImg[*pixel.FloatType])(nil)
	_ ndimg.Img[*pixel.FloatType] = (*CellImg[*pixel.FloatType])(nil)
)
