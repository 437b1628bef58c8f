/*
	This file serializes planar images as a MessagePack map holding the shape,
	pixel type and one serialized block per plane.
*/

package img

import (
	"fmt"

	"github.com/tinylib/msgp/msgp"

	"github.com/janelia-flyem/ndimg/access"
	"github.com/janelia-flyem/ndimg/ndimg"
	"github.com/janelia-flyem/ndimg/pixel"
)

// EncodePlanes appends the encoding of a planar image to b.  Each plane is
// compressed and checksummed independently.
func EncodePlanes[T pixel.NativeType[T]](b []byte, img *PlanarImg[T], compress ndimg.Compression, checksum ndimg.Checksum) ([]byte, error) {
	b = msgp.AppendMapHeader(b, 4)
	b = msgp.AppendString(b, "type")
	b = msgp.AppendString(b, img.proto.DataType().String())
	b = msgp.AppendString(b, "entities")
	b = msgp.AppendInt(b, img.proto.EntitiesPerPixel())
	b = msgp.AppendString(b, "dims")
	b = msgp.AppendArrayHeader(b, uint32(len(img.dim)))
	for _, length := range img.dim {
		b = msgp.AppendInt64(b, length)
	}
	b = msgp.AppendString(b, "planes")
	b = msgp.AppendArrayHeader(b, uint32(len(img.slices)))
	for i, plane := range img.slices {
		raw, err := plane.MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("plane %d: %v", i, err)
		}
		s, err := ndimg.SerializeData(raw, compress, checksum)
		if err != nil {
			return nil, fmt.Errorf("plane %d: %v", i, err)
		}
		b = msgp.AppendBytes(b, s)
	}
	return b, nil
}

// DecodePlanes reads a planar image of the prototype's type from an encoding
// made by EncodePlanes.
func DecodePlanes[T pixel.NativeType[T]](b []byte, proto T) (*PlanarImg[T], error) {
	sz, b, err := msgp.ReadMapHeaderBytes(b)
	if err != nil {
		return nil, err
	}
	var (
		typeName string
		entities int
		dims     []int64
		planes   [][]byte
	)
	for i := uint32(0); i < sz; i++ {
		var key string
		if key, b, err = msgp.ReadStringBytes(b); err != nil {
			return nil, err
		}
		switch key {
		case "type":
			typeName, b, err = msgp.ReadStringBytes(b)
		case "entities":
			entities, b, err = msgp.ReadIntBytes(b)
		case "dims":
			var n uint32
			if n, b, err = msgp.ReadArrayHeaderBytes(b); err != nil {
				return nil, err
			}
			dims = make([]int64, n)
			for d := range dims {
				if dims[d], b, err = msgp.ReadInt64Bytes(b); err != nil {
					return nil, err
				}
			}
		case "planes":
			var n uint32
			if n, b, err = msgp.ReadArrayHeaderBytes(b); err != nil {
				return nil, err
			}
			planes = make([][]byte, n)
			for p := range planes {
				if planes[p], b, err = msgp.ReadBytesBytes(b, nil); err != nil {
					return nil, err
				}
			}
		default:
			b, err = msgp.Skip(b)
		}
		if err != nil {
			return nil, err
		}
	}

	if typeName != proto.DataType().String() || entities != proto.EntitiesPerPixel() {
		return nil, fmt.Errorf("encoded pixels are %s x %d, expected %s x %d",
			typeName, entities, proto.DataType(), proto.EntitiesPerPixel())
	}
	img, err := newPlanarImg(dims, proto)
	if err != nil {
		return nil, err
	}
	if len(planes) != img.NumSlices() {
		return nil, fmt.Errorf("%w: %d planes encoded for %d-plane image %v", ndimg.ErrPlaneSize, len(planes), img.NumSlices(), dims)
	}
	for i, s := range planes {
		raw, _, err := ndimg.DeserializeData(s, true)
		if err != nil {
			return nil, fmt.Errorf("plane %d: %v", i, err)
		}
		block, err := access.New(proto.Primitive(), 0)
		if err != nil {
			return nil, err
		}
		if err := block.UnmarshalBinary(raw); err != nil {
			return nil, fmt.Errorf("plane %d: %v", i, err)
		}
		if err := img.SetPlane(i, block); err != nil {
			return nil, err
		}
	}
	return img, nil
}
