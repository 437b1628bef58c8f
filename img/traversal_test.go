package img

import (
	"fmt"
	"math/rand"
	"reflect"
	"testing"

	"github.com/janelia-flyem/ndimg/ndimg"
	"github.com/janelia-flyem/ndimg/pixel"
)

var layouts = []string{"array", "planar", "cell"}

// randomShapes returns shapes of 1 to 5 axes with lengths 1 to 8.
func randomShapes(rng *rand.Rand, count int) [][]int64 {
	shapes := [][]int64{{1}, {8}, {1, 1}, {3, 1}, {1, 5}, {2, 2, 1}, {1, 1, 1, 1, 1}}
	for len(shapes) < count {
		dim := make([]int64, 1+rng.Intn(5))
		for d := range dim {
			dim[d] = 1 + rng.Int63n(8)
		}
		shapes = append(shapes, dim)
	}
	return shapes
}

func newLongImg(t *testing.T, layout string, dim []int64) ndimg.Img[*pixel.LongType] {
	f, err := NewFactory[*pixel.LongType](layout, 3)
	if err != nil {
		t.Fatalf("bad factory: %v", err)
	}
	img, err := pixel.NewLongType(0).CreateSuitableContainer(f, dim)
	if err != nil {
		t.Fatalf("unable to create %s image %v: %v", layout, dim, err)
	}
	return img
}

// fill stores the iteration step in every pixel and returns the positions in
// iteration order.
func fill(t *testing.T, img ndimg.Img[*pixel.LongType]) [][]int64 {
	var positions [][]int64
	seen := make(map[string]bool)
	c := img.Cursor()
	for step := int64(0); c.HasNext(); step++ {
		c.Next().SetValue(step)
		pos := make([]int64, img.NumDims())
		c.Localize(pos)
		key := fmt.Sprint(pos)
		if seen[key] {
			t.Fatalf("position %v visited twice", pos)
		}
		if !ndimg.Contains(img, pos) {
			t.Fatalf("position %v outside image %v", pos, ndimg.Dimensions(img))
		}
		seen[key] = true
		positions = append(positions, pos)
	}
	if int64(len(positions)) != img.Size() {
		t.Fatalf("cursor visited %d pixels of %d", len(positions), img.Size())
	}
	return positions
}

func TestTraversalProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, dim := range randomShapes(rng, 40) {
		for _, layout := range layouts {
			img := newLongImg(t, layout, dim)
			positions := fill(t, img)
			n := len(dim)

			// Array and planar images iterate with axis 0 fastest over the whole image.
			if layout != "cell" {
				want := make([]int64, n)
				for j, pos := range positions {
					ndimg.IndexToPosition(int64(j), dim, want)
					if !reflect.DeepEqual(pos, want) {
						t.Fatalf("%s %v: step %d at %v, expected %v", layout, dim, j, pos, want)
					}
				}
			}

			// Localizing cursor agrees with the plain cursor at each step.
			lc := img.LocalizingCursor()
			got := make([]int64, n)
			for j := 0; lc.HasNext(); j++ {
				v := lc.Next().Get()
				lc.Localize(got)
				if !reflect.DeepEqual(got, positions[j]) || v != int64(j) {
					t.Fatalf("%s %v: localizing step %d at %v value %d, expected %v", layout, dim, j, got, v, positions[j])
				}
				for d := range got {
					if lc.LongPosition(d) != got[d] {
						t.Fatalf("%s %v: LongPosition(%d) is %d, expected %d", layout, dim, d, lc.LongPosition(d), got[d])
					}
				}
			}

			// Random access agrees with the cursor for every position.
			ra := img.RandomAccess()
			for j, pos := range positions {
				ra.SetPosition(pos)
				if v := ra.Get().Get(); v != int64(j) {
					t.Fatalf("%s %v: random access at %v reads %d, expected %d", layout, dim, pos, v, j)
				}
			}

			// Jumping from the start lands on the same pixel as stepping.
			c := img.Cursor()
			for _, j := range []int{0, len(positions) / 3, len(positions) - 1} {
				c.Reset()
				c.JumpFwd(int64(j + 1))
				c.Localize(got)
				if !reflect.DeepEqual(got, positions[j]) || c.Get().Get() != int64(j) {
					t.Fatalf("%s %v: jump to %d reached %v", layout, dim, j, got)
				}
				for d := range got {
					if c.LongPosition(d) != got[d] {
						t.Fatalf("%s %v: cursor LongPosition(%d) is %d, expected %d", layout, dim, d, c.LongPosition(d), got[d])
					}
				}
				lc.Reset()
				lc.JumpFwd(int64(j + 1))
				lc.Localize(got)
				if !reflect.DeepEqual(got, positions[j]) {
					t.Fatalf("%s %v: localizing jump to %d reached %v", layout, dim, j, got)
				}
			}

			checkRandomWalk(t, rng, img, layout)
			checkCopy(t, img, layout)
		}
	}
}

// checkRandomWalk compares relative moves against absolute positioning.
func checkRandomWalk(t *testing.T, rng *rand.Rand, img ndimg.Img[*pixel.LongType], layout string) {
	n := img.NumDims()
	dim := ndimg.Dimensions(img)
	walker := img.RandomAccess()
	probe := img.RandomAccess()
	pos := make([]int64, n)
	got := make([]int64, n)
	for step := 0; step < 200; step++ {
		d := rng.Intn(n)
		target := rng.Int63n(dim[d])
		switch rng.Intn(4) {
		case 0:
			walker.Move(target-pos[d], d)
		case 1:
			walker.SetPositionDim(target, d)
		case 2:
			if pos[d] < dim[d]-1 {
				walker.Fwd(d)
				target = pos[d] + 1
			} else if pos[d] > 0 {
				walker.Bck(d)
				target = pos[d] - 1
			} else {
				walker.SetPositionDim(0, d)
				target = 0
			}
		case 3:
			delta := make([]int64, n)
			for dd := range delta {
				delta[dd] = rng.Int63n(dim[dd]) - pos[dd]
				pos[dd] += delta[dd]
			}
			walker.MoveBy(delta)
			target = pos[d]
		}
		pos[d] = target
		walker.Localize(got)
		if !reflect.DeepEqual(got, pos) {
			t.Fatalf("%s %v: walker at %v, expected %v", layout, dim, got, pos)
		}
		probe.SetPosition(pos)
		if walker.Get().Get() != probe.Get().Get() {
			t.Fatalf("%s %v: walker reads %d at %v, absolute access reads %d",
				layout, dim, walker.Get().Get(), pos, probe.Get().Get())
		}
	}

	cp := walker.Copy()
	cp.Localize(got)
	if !reflect.DeepEqual(got, pos) || cp.Get().Get() != walker.Get().Get() {
		t.Fatalf("%s %v: random access copy at %v, expected %v", layout, dim, got, pos)
	}
	if cp.Get() == walker.Get() {
		t.Fatalf("%s %v: random access copy shares its pixel", layout, dim)
	}
}

// checkCopy verifies a deep copy is equal and independent.
func checkCopy(t *testing.T, img ndimg.Img[*pixel.LongType], layout string) {
	cp := img.Copy()
	if !img.EqualIterationOrder(cp) {
		t.Fatalf("%s: copy has different iteration order", layout)
	}
	a := img.Cursor()
	b := cp.Cursor()
	for a.HasNext() {
		if a.Next().CompareTo(b.Next()) != 0 {
			t.Fatalf("%s: copy differs", layout)
		}
	}
	first := cp.FirstElement()
	first.SetValue(-99)
	if img.FirstElement().Get() != 0 {
		t.Fatalf("%s: writing the copy changed the original", layout)
	}
	orig := img.FirstElement()
	orig.SetValue(77)
	if v := cp.FirstElement().Get(); v != -99 {
		t.Fatalf("%s: writing the original changed the copy to %d", layout, v)
	}
	if v := img.Copy().FirstElement().Get(); v != 77 {
		t.Fatalf("%s: copy made after a write reads %d, expected 77", layout, v)
	}
	orig.SetValue(0)
	if reflect.TypeOf(cp.Factory()) != reflect.TypeOf(img.Factory()) {
		t.Fatalf("%s: copy has a different factory", layout)
	}

	// A cursor copy continues from the same position with its own pixel.
	c := img.Cursor()
	c.JumpFwd(img.Size())
	c2 := c.Copy()
	if c2.Get() == c.Get() || c2.Get().Get() != c.Get().Get() || c2.HasNext() {
		t.Fatalf("%s: bad cursor copy", layout)
	}
}

func TestCopyInto(t *testing.T) {
	dim := []int64{7, 5, 3}
	src := newLongImg(t, "planar", dim)
	fill(t, src)
	for _, layout := range layouts {
		dst := newLongImg(t, layout, dim)
		if err := CopyInto(dst, src); err != nil {
			t.Fatalf("copy into %s: %v", layout, err)
		}
		c := dst.LocalizingCursor()
		pos := make([]int64, 3)
		for c.HasNext() {
			v := c.Next().Get()
			c.Localize(pos)
			if want := ndimg.PositionToIndex(pos, dim); v != want {
				t.Fatalf("%s at %v holds %d, expected %d", layout, pos, v, want)
			}
		}
	}
	small := newLongImg(t, "cell", []int64{7, 5})
	if err := CopyInto(small, src); err == nil {
		t.Errorf("expected error copying between different shapes")
	}
}

func TestFactories(t *testing.T) {
	proto := pixel.NewRGBAType(0, 0, 0, 0)
	for _, tc := range []struct {
		layout string
		want   any
	}{
		{"array", &ArrayImg[*pixel.RGBAType]{}},
		{"Planar", &PlanarImg[*pixel.RGBAType]{}},
		{"cell", &CellImg[*pixel.RGBAType]{}},
	} {
		f, err := NewFactory[*pixel.RGBAType](tc.layout, 0)
		if err != nil {
			t.Fatalf("factory %q: %v", tc.layout, err)
		}
		img, err := Create(f, []int64{5, 4, 3}, proto)
		if err != nil {
			t.Fatalf("create %q: %v", tc.layout, err)
		}
		if reflect.TypeOf(img) != reflect.TypeOf(tc.want) {
			t.Errorf("%q factory made %T", tc.layout, img)
		}
		if img.Size() != 60 {
			t.Errorf("expected 60 pixels, got %d", img.Size())
		}
		first := img.FirstElement()
		if first.Packed() != 0 {
			t.Errorf("new image not zeroed")
		}
	}
	if _, err := NewFactory[*pixel.RGBAType]("hexagonal", 0); err == nil {
		t.Errorf("expected error for unknown layout")
	}

	cimg, err := NewCellImg([]int64{10, 7}, 4, pixel.NewIntType(0))
	if err != nil {
		t.Fatalf("unable to create cell image: %v", err)
	}
	if cimg.NumCells() != 6 || cimg.CellSize() != 4 {
		t.Errorf("expected 6 cells of size 4, got %d of size %d", cimg.NumCells(), cimg.CellSize())
	}
	if n := cimg.CellBlock(5).Len(); n != 6 {
		t.Errorf("expected border cell of 2x3 pixels, got %d", n)
	}
	iv := cimg.CellInterval(5)
	if !reflect.DeepEqual(iv.MinPoint(), ndimg.Point{8, 4}) || !reflect.DeepEqual(iv.MaxPoint(), ndimg.Point{9, 6}) {
		t.Errorf("bad interval for cell 5: %s", iv)
	}
	other, _ := NewCellImg([]int64{10, 7}, 5, pixel.NewIntType(0))
	if cimg.EqualIterationOrder(other) {
		t.Errorf("cell images of different cell size should not have equal iteration order")
	}
}
