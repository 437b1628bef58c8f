package ndimg

import (
	"fmt"
	"strconv"
	"strings"
)

// Point is an n-dimensional integer position.  Unlike the fixed Point2d/Point3d of
// volume stores, images here have an arbitrary number of axes, so a single slice
// type serves every dimensionality.
type Point []int64

// NumDims returns the dimensionality of this point.
func (p Point) NumDims() int {
	return len(p)
}

// Value returns the point's value for the specified dimension without checking dim bounds.
func (p Point) Value(dim int) int64 {
	return p[dim]
}

// CheckedValue returns the point's value for the specified dimension and checks dim bounds.
func (p Point) CheckedValue(dim int) (int64, error) {
	if dim < 0 || dim >= len(p) {
		return 0, fmt.Errorf("Cannot return dimension %d of %d-d point!", dim, len(p))
	}
	return p[dim], nil
}

// Duplicate returns a copy of the point.
func (p Point) Duplicate() Point {
	dup := make(Point, len(p))
	copy(dup, p)
	return dup
}

// Add returns the addition of two points.
func (p Point) Add(x Point) Point {
	result := make(Point, len(p))
	for i := range p {
		result[i] = p[i] + x[i]
	}
	return result
}

// Sub returns the subtraction of the passed point from the receiver.
func (p Point) Sub(x Point) Point {
	result := make(Point, len(p))
	for i := range p {
		result[i] = p[i] - x[i]
	}
	return result
}

// AddScalar adds a scalar value to each component of this point.
func (p Point) AddScalar(value int64) Point {
	result := make(Point, len(p))
	for i := range p {
		result[i] = p[i] + value
	}
	return result
}

// Max returns a Point where each of its elements are the maximum of two points' elements.
func (p Point) Max(x Point) (Point, bool) {
	var changed bool
	result := p.Duplicate()
	for i := range p {
		if p[i] < x[i] {
			result[i] = x[i]
			changed = true
		}
	}
	return result, changed
}

// Min returns a Point where each of its elements are the minimum of two points' elements.
func (p Point) Min(x Point) (Point, bool) {
	var changed bool
	result := p.Duplicate()
	for i := range p {
		if p[i] > x[i] {
			result[i] = x[i]
			changed = true
		}
	}
	return result, changed
}

// Prod returns the product of the point elements.
func (p Point) Prod() int64 {
	if len(p) == 0 {
		return 0
	}
	prod := int64(1)
	for _, v := range p {
		prod *= v
	}
	return prod
}

// Equals returns true if the points have the same dimensionality and components.
func (p Point) Equals(x Point) bool {
	if len(p) != len(x) {
		return false
	}
	for i := range p {
		if p[i] != x[i] {
			return false
		}
	}
	return true
}

func (p Point) String() string {
	output := "("
	for _, val := range p {
		if len(output) > 1 {
			output += ","
		}
		output += strconv.FormatInt(val, 10)
	}
	output += ")"
	return output
}

// StringToPoint parses a string of format "%d<sep>%d<sep>%d,..." into a Point.
func StringToPoint(str, separator string) (Point, error) {
	elems := strings.Split(str, separator)
	p := make(Point, len(elems))
	for i, elem := range elems {
		v, err := strconv.ParseInt(strings.TrimSpace(elem), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("Cannot convert %q into a Point: %v", str, err)
		}
		p[i] = v
	}
	return p, nil
}

// IndexToPosition writes into position the coordinate of the given flat index
// within an array of shape dim iterated with axis 0 fastest.
func IndexToPosition(index int64, dim []int64, position []int64) {
	maxDim := len(dim) - 1
	for d := 0; d < maxDim; d++ {
		j := index / dim[d]
		position[d] = index - j*dim[d]
		index = j
	}
	position[maxDim] = index
}

// PositionToIndex returns the flat index of position within an array of shape
// dim iterated with axis 0 fastest.
func PositionToIndex(position []int64, dim []int64) int64 {
	maxDim := len(dim) - 1
	index := position[maxDim]
	for d := maxDim - 1; d >= 0; d-- {
		index = index*dim[d] + position[d]
	}
	return index
}

// Steps returns the flat index increment for a unit move along each axis.
func Steps(dim []int64) []int64 {
	steps := make([]int64, len(dim))
	if len(dim) == 0 {
		return steps
	}
	steps[0] = 1
	for d := 1; d < len(dim); d++ {
		steps[d] = steps[d-1] * dim[d-1]
	}
	return steps
}
