package ndimg

import (
	"fmt"
	"math"
)

// Interval is an n-dimensional box of integer coordinates with inclusive bounds.
type Interval interface {
	// NumDims returns the dimensionality of the interval.
	NumDims() int

	// Min returns the minimum coordinate along dimension d.
	Min(d int) int64

	// Max returns the maximum coordinate along dimension d.
	Max(d int) int64

	// Dimension returns the number of coordinates along dimension d.
	Dimension(d int) int64
}

// FinalInterval is an immutable Interval holding its bounds.
type FinalInterval struct {
	min Point
	max Point
}

// NewFinalInterval returns an interval with the given inclusive bounds.
func NewFinalInterval(min, max []int64) (*FinalInterval, error) {
	if len(min) != len(max) {
		return nil, fmt.Errorf("Interval minimum has %d dimensions but maximum has %d", len(min), len(max))
	}
	if len(min) == 0 {
		return nil, fmt.Errorf("%w: interval has no dimensions", ErrBadShape)
	}
	return &FinalInterval{Point(min).Duplicate(), Point(max).Duplicate()}, nil
}

// IntervalFromDims returns the interval [0, dim[d]-1] along each axis.
func IntervalFromDims(dim []int64) (*FinalInterval, error) {
	if _, err := CheckShape(dim); err != nil {
		return nil, err
	}
	iv := &FinalInterval{make(Point, len(dim)), make(Point, len(dim))}
	for d, length := range dim {
		iv.max[d] = length - 1
	}
	return iv, nil
}

// IntervalOf returns a FinalInterval with the same bounds as any Interval.
func IntervalOf(iv Interval) *FinalInterval {
	n := iv.NumDims()
	fi := &FinalInterval{make(Point, n), make(Point, n)}
	for d := 0; d < n; d++ {
		fi.min[d] = iv.Min(d)
		fi.max[d] = iv.Max(d)
	}
	return fi
}

func (iv *FinalInterval) NumDims() int {
	return len(iv.min)
}

func (iv *FinalInterval) Min(d int) int64 {
	return iv.min[d]
}

func (iv *FinalInterval) Max(d int) int64 {
	return iv.max[d]
}

func (iv *FinalInterval) Dimension(d int) int64 {
	return iv.max[d] - iv.min[d] + 1
}

// MinPoint returns a copy of the minimum corner.
func (iv *FinalInterval) MinPoint() Point {
	return iv.min.Duplicate()
}

// MaxPoint returns a copy of the maximum corner.
func (iv *FinalInterval) MaxPoint() Point {
	return iv.max.Duplicate()
}

// IsEmpty returns true if any axis has collapsed, i.e. max < min.
func (iv *FinalInterval) IsEmpty() bool {
	return IsEmpty(iv)
}

// NumElements returns the number of coordinates within the interval, 0 if empty.
func (iv *FinalInterval) NumElements() int64 {
	return NumElements(iv)
}

func (iv *FinalInterval) String() string {
	return fmt.Sprintf("[%s -> %s]", iv.min, iv.max)
}

// Dimensions returns the per-axis lengths of an interval.
func Dimensions(iv Interval) []int64 {
	dim := make([]int64, iv.NumDims())
	for d := range dim {
		dim[d] = iv.Dimension(d)
	}
	return dim
}

// IsEmpty returns true if any axis of the interval has max < min.
func IsEmpty(iv Interval) bool {
	for d := 0; d < iv.NumDims(); d++ {
		if iv.Max(d) < iv.Min(d) {
			return true
		}
	}
	return false
}

// NumElements returns the number of coordinates within the interval, 0 if empty.
// Use CheckedNumElements for intervals whose count may not fit in an int64.
func NumElements(iv Interval) int64 {
	n, _ := CheckedNumElements(iv)
	return n
}

// CheckedNumElements is NumElements with an ErrBadShape error if the count
// overflows an int64.
func CheckedNumElements(iv Interval) (int64, error) {
	if IsEmpty(iv) {
		return 0, nil
	}
	n := int64(1)
	for d := 0; d < iv.NumDims(); d++ {
		length, err := checkedLength(iv.Min(d), iv.Max(d))
		if err != nil {
			return 0, err
		}
		if n, err = CheckedMul(n, length); err != nil {
			return 0, err
		}
	}
	return n, nil
}

// checkedLength returns max-min+1 for max >= min or an error if it exceeds int64.
func checkedLength(min, max int64) (int64, error) {
	var overflow bool
	if min >= 0 {
		overflow = max-min == math.MaxInt64
	} else {
		overflow = max > math.MaxInt64+min-1
	}
	if overflow {
		return 0, fmt.Errorf("%w: axis from %d to %d overflows 64 bits", ErrBadShape, min, max)
	}
	return max - min + 1, nil
}

// Intersect returns the intersection of two intervals.  The result may be empty.
func Intersect(a, b Interval) (*FinalInterval, error) {
	n := a.NumDims()
	if n != b.NumDims() {
		return nil, fmt.Errorf("Cannot intersect %d-d and %d-d intervals", n, b.NumDims())
	}
	iv := &FinalInterval{make(Point, n), make(Point, n)}
	for d := 0; d < n; d++ {
		iv.min[d] = max(a.Min(d), b.Min(d))
		iv.max[d] = min(a.Max(d), b.Max(d))
	}
	return iv, nil
}

// Translate returns the interval shifted by offset.
func Translate(iv Interval, offset []int64) *FinalInterval {
	n := iv.NumDims()
	t := &FinalInterval{make(Point, n), make(Point, n)}
	for d := 0; d < n; d++ {
		t.min[d] = iv.Min(d) + offset[d]
		t.max[d] = iv.Max(d) + offset[d]
	}
	return t
}

// Contains returns true if the position lies within the interval.
func Contains(iv Interval, position []int64) bool {
	if len(position) != iv.NumDims() {
		return false
	}
	for d, x := range position {
		if x < iv.Min(d) || x > iv.Max(d) {
			return false
		}
	}
	return true
}

// ContainsInterval returns true if inner lies completely within outer.
func ContainsInterval(outer, inner Interval) bool {
	if outer.NumDims() != inner.NumDims() {
		return false
	}
	for d := 0; d < outer.NumDims(); d++ {
		if inner.Min(d) < outer.Min(d) || inner.Max(d) > outer.Max(d) {
			return false
		}
	}
	return true
}

// EqualDimensions returns true if both intervals have identical per-axis lengths.
func EqualDimensions(a, b Interval) bool {
	if a.NumDims() != b.NumDims() {
		return false
	}
	for d := 0; d < a.NumDims(); d++ {
		if a.Dimension(d) != b.Dimension(d) {
			return false
		}
	}
	return true
}
