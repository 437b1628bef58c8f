package img

import (
	"errors"
	"reflect"
	"testing"

	"github.com/janelia-flyem/ndimg/access"
	"github.com/janelia-flyem/ndimg/ndimg"
	"github.com/janelia-flyem/ndimg/pixel"
)

func TestPlanarFillAndSample(t *testing.T) {
	img, err := NewPlanarImg([]int64{3, 2, 2}, pixel.NewUnsignedByteType(0))
	if err != nil {
		t.Fatalf("unable to create planar image: %v", err)
	}
	if img.NumSlices() != 2 {
		t.Fatalf("expected 2 planes, got %d", img.NumSlices())
	}
	c := img.Cursor()
	var i uint8
	for c.HasNext() {
		c.Next().SetValue(i)
		i++
	}
	if i != 12 {
		t.Fatalf("cursor visited %d pixels, expected 12", i)
	}

	ra := img.RandomAccess()
	ra.SetPosition([]int64{2, 1, 1})
	if v := ra.Get().Get(); v != 11 {
		t.Errorf("expected 11 at (2,1,1), got %d", v)
	}
	ra.SetPosition([]int64{0, 0, 0})
	if v := ra.Get().Get(); v != 0 {
		t.Errorf("expected 0 at (0,0,0), got %d", v)
	}
	ra.SetPosition([]int64{1, 0, 1})
	if v := ra.Get().Get(); v != 7 {
		t.Errorf("expected 7 at (1,0,1), got %d", v)
	}
}

func TestPlanarLocalizingCursor2D(t *testing.T) {
	img, err := NewPlanarImg([]int64{4, 4}, pixel.NewFloatType(0))
	if err != nil {
		t.Fatalf("unable to create planar image: %v", err)
	}
	ra := img.RandomAccess()
	for j := int64(0); j < 4; j++ {
		for i := int64(0); i < 4; i++ {
			ra.SetPosition([]int64{i, j})
			ra.Get().SetValue(float32(i + 10*j))
		}
	}
	c := img.LocalizingCursor()
	for step := 0; step <= 7; step++ {
		c.Fwd()
	}
	pos := make([]int64, 2)
	c.Localize(pos)
	if !reflect.DeepEqual(pos, []int64{3, 1}) {
		t.Errorf("expected position [3 1] after 8 steps, got %v", pos)
	}
	if v := c.Get().Get(); v != 13 {
		t.Errorf("expected 13 at [3 1], got %v", v)
	}
}

func TestPlanarSetPlanes(t *testing.T) {
	img, err := NewPlanarImg([]int64{2, 2, 3}, pixel.NewIntType(0))
	if err != nil {
		t.Fatalf("unable to create planar image: %v", err)
	}
	planes := [][]int32{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}}
	for i, data := range planes {
		if err := img.SetPlane(i, access.Wrap(data)); err != nil {
			t.Fatalf("unable to set plane %d: %v", i, err)
		}
	}
	if img.Plane(1).(*access.IntArray).Value(2) != 7 {
		t.Errorf("plane 1 not installed")
	}
	var got []int32
	for c := img.Cursor(); c.HasNext(); {
		got = append(got, c.Next().Get())
	}
	want := []int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected cursor sequence %v, got %v", want, got)
	}

	err = img.SetPlane(0, access.Wrap([]int32{1, 2, 3}))
	if !errors.Is(err, ndimg.ErrPlaneSize) {
		t.Errorf("expected plane size error for short plane, got %v", err)
	}
	err = img.SetPlane(0, access.Wrap([]int16{1, 2, 3, 4}))
	if !errors.Is(err, ndimg.ErrPlaneSize) {
		t.Errorf("expected plane size error for wrong primitive, got %v", err)
	}
	if err = img.SetPlane(3, access.Wrap([]int32{1, 2, 3, 4})); err == nil {
		t.Errorf("expected error for out of range plane")
	}

	cimg, err := NewPlanarImg([]int64{3, 2}, pixel.NewComplexFloatType(0))
	if err != nil {
		t.Fatalf("unable to create complex image: %v", err)
	}
	if n := cimg.Plane(0).Len(); n != 12 {
		t.Errorf("expected complex plane of 12 floats, got %d", n)
	}
	if err := cimg.SetPlane(0, access.NewArray[float32](6)); !errors.Is(err, ndimg.ErrPlaneSize) {
		t.Errorf("expected plane size error for complex plane, got %v", err)
	}
}

func TestEqualIterationOrder(t *testing.T) {
	a, _ := NewPlanarImg([]int64{5, 3, 2}, pixel.NewShortType(0))
	b, _ := NewPlanarImg([]int64{5, 3, 2}, pixel.NewShortType(0))
	c, _ := NewPlanarImg([]int64{5, 3, 3}, pixel.NewShortType(0))
	d, _ := NewPlanarImg([]int64{5, 3, 2}, pixel.NewDoubleType(0))
	e, _ := NewArrayImg([]int64{5, 3, 2}, pixel.NewShortType(0))
	iv, _ := ndimg.IntervalFromDims([]int64{5, 3, 2})

	if !a.EqualIterationOrder(b) || !b.EqualIterationOrder(a) {
		t.Errorf("identical planar images should have equal iteration order")
	}
	if a.EqualIterationOrder(c) || c.EqualIterationOrder(a) {
		t.Errorf("planar images of different shape should not have equal iteration order")
	}
	if !a.EqualIterationOrder(d) {
		t.Errorf("iteration order should not depend on pixel type")
	}
	if a.EqualIterationOrder(e) || e.EqualIterationOrder(a) {
		t.Errorf("planar and array images should not have equal iteration order")
	}
	if a.EqualIterationOrder(iv) {
		t.Errorf("planar image and plain interval should not have equal iteration order")
	}

	ca := a.Cursor()
	cb := b.Cursor()
	pa := make([]int64, 3)
	pb := make([]int64, 3)
	for ca.HasNext() {
		if !cb.HasNext() {
			t.Fatalf("second cursor ended early")
		}
		ca.Fwd()
		cb.Fwd()
		ca.Localize(pa)
		cb.Localize(pb)
		if !reflect.DeepEqual(pa, pb) {
			t.Fatalf("cursors out of step: %v vs %v", pa, pb)
		}
	}
}

func TestPlanarRandomAccessMoves(t *testing.T) {
	img, err := NewPlanarImg([]int64{4, 4, 4}, pixel.NewUnsignedShortType(0))
	if err != nil {
		t.Fatalf("unable to create planar image: %v", err)
	}
	writer := img.RandomAccess()
	writer.SetPosition([]int64{2, 2, 2})
	writer.Get().SetValue(65000)

	ra := img.RandomAccess()
	ra.SetPosition([]int64{1, 2, 3})
	ra.Move(-1, 2)
	ra.Fwd(0)
	pos := make([]int64, 3)
	ra.Localize(pos)
	if !reflect.DeepEqual(pos, []int64{2, 2, 2}) {
		t.Fatalf("expected position [2 2 2], got %v", pos)
	}
	if v := ra.Get().Get(); v != 65000 {
		t.Errorf("expected 65000 at [2 2 2], got %d", v)
	}

	ra.MoveBy([]int64{-2, 1, -2})
	ra.SetPositionDim(3, 0)
	ra.Bck(1)
	ra.Fwd(2)
	other := img.RandomAccess()
	other.SetPosition([]int64{3, 2, 1})
	ra.Get().SetValue(17)
	if other.Get().Get() != 17 {
		t.Errorf("relative moves did not reach [3 2 1]")
	}
	if ra.LongPosition(2) != 1 || ra.IntPosition(0) != 3 {
		t.Errorf("bad position after moves: %d %d", ra.IntPosition(0), ra.LongPosition(2))
	}
}

func TestPlanarIndexing(t *testing.T) {
	img, err := NewPlanarImg([]int64{3, 2, 4, 2, 3}, pixel.NewByteType(0))
	if err != nil {
		t.Fatalf("unable to create planar image: %v", err)
	}
	if img.NumSlices() != 24 {
		t.Fatalf("expected 24 planes, got %d", img.NumSlices())
	}
	iv, _ := ndimg.IntervalFromDims(img.Dimensions())
	pos := make([]int64, 5)
	got := make([]int64, 5)
	for i := int64(0); i < img.Size(); i++ {
		ndimg.IndexToPosition(i, img.Dimensions(), pos)
		s, k := img.PositionToIndex(pos)
		if s < 0 || s >= img.NumSlices() || k < 0 || k >= 6 {
			t.Fatalf("position %v mapped outside image to (%d, %d)", pos, s, k)
		}
		img.IndexToGlobalPosition(s, k, got)
		if !reflect.DeepEqual(pos, got) {
			t.Fatalf("position %v -> (%d, %d) -> %v", pos, s, k, got)
		}
		for d := range pos {
			if v := img.IndexToGlobalPositionDim(s, k, d); v != pos[d] {
				t.Fatalf("axis %d of (%d, %d) is %d, expected %d", d, s, k, v, pos[d])
			}
		}
		if !ndimg.Contains(iv, got) {
			t.Fatalf("decoded position %v outside image", got)
		}
	}

	// Two axes have no plane index.
	img2, _ := NewPlanarImg([]int64{5, 3}, pixel.NewByteType(0))
	img2.IndexToGlobalPosition(0, 13, got[:2])
	if got[0] != 3 || got[1] != 2 {
		t.Errorf("expected [3 2] for index 13 of 5x3 plane, got %v", got[:2])
	}
}

func TestShapeErrors(t *testing.T) {
	proto := pixel.NewFloatType(0)
	for _, dim := range [][]int64{nil, {4, 0, 2}, {-3}, make([]int64, ndimg.MaxDimensions+1)} {
		if _, err := NewPlanarImg(dim, proto); !errors.Is(err, ndimg.ErrBadShape) {
			t.Errorf("planar %v: expected bad shape error, got %v", dim, err)
		}
		if _, err := NewArrayImg(dim, proto); !errors.Is(err, ndimg.ErrBadShape) {
			t.Errorf("array %v: expected bad shape error, got %v", dim, err)
		}
		if _, err := NewCellImg(dim, 4, proto); !errors.Is(err, ndimg.ErrBadShape) {
			t.Errorf("cell %v: expected bad shape error, got %v", dim, err)
		}
	}
	if _, err := NewCellImg([]int64{4, 4}, 0, proto); !errors.Is(err, ndimg.ErrBadShape) {
		t.Errorf("expected bad shape error for zero cell size, got %v", err)
	}
	if _, err := NewPlanarImg([]int64{1 << 32, 1 << 31, 4}, proto); !errors.Is(err, ndimg.ErrBadShape) {
		t.Errorf("expected bad shape error for overflowing element count, got %v", err)
	}
}
