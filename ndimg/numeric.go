/*
	This file holds rounding, unsigned 64-bit and shape arithmetic shared by pixel
	types and containers.
*/

package ndimg

import (
	"fmt"
	"math"
)

// MaxDimensions is the largest number of axes supported by containers.
const MaxDimensions = 32

// Round rounds half away from zero and returns the nearest int32.
func Round(f float32) int32 {
	return int32(math.Round(float64(f)))
}

// RoundDouble rounds half away from zero and returns the nearest int64.
func RoundDouble(f float64) int64 {
	return int64(math.Round(f))
}

// RoundUnsigned rounds half away from zero into the unsigned 64-bit range,
// handling values at or above 2^63 that a signed conversion cannot hold.
// Results saturate at 0 and math.MaxUint64; NaN gives 0.
func RoundUnsigned(f float64) uint64 {
	r := math.Round(f)
	switch {
	case r >= 1<<64:
		return math.MaxUint64
	case r >= 1<<63:
		return uint64(int64(r-(1<<63))) + 1<<63
	case r > 0:
		return uint64(int64(r))
	default:
		return 0
	}
}

// CompareUnsigned compares two 64-bit values reinterpreted as unsigned integers
// and returns -1 if a < b, 0 if a == b, 1 if a > b.
func CompareUnsigned(a, b int64) int {
	if a == b {
		return 0
	}
	test := a < b
	if (a < 0) != (b < 0) {
		test = !test
	}
	if test {
		return -1
	}
	return 1
}

// DivideUnsigned returns the quotient of d1 and d2 reinterpreted as unsigned
// 64-bit integers.  See "Division by Invariant Integers using Multiplication",
// Granlund and Montgomery, 1994.  Division by zero panics.
func DivideUnsigned(d1, d2 int64) int64 {
	if d2 < 0 {
		// d2 is at least 2^63 so the quotient is 0 or 1.
		if CompareUnsigned(d1, d2) < 0 {
			return 0
		}
		return 1
	}
	if d1 >= 0 {
		return d1 / d2
	}
	// Halve the dividend so signed division applies.  The result is exact or
	// one less than the true quotient.
	quotient := (int64(uint64(d1)>>1) / d2) << 1
	remainder := d1 - quotient*d2
	if CompareUnsigned(remainder, d2) >= 0 {
		quotient++
	}
	return quotient
}

// CeilDiv returns a / b rounded toward positive infinity for positive b.
func CeilDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a > 0) == (b > 0) {
		q++
	}
	return q
}

// FloorMod returns the non-negative remainder of a / b for positive b.
func FloorMod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// CheckShape validates the per-axis lengths of an image and returns the total
// number of pixels.
func CheckShape(dim []int64) (int64, error) {
	if len(dim) == 0 {
		return 0, fmt.Errorf("%w: no dimensions given", ErrBadShape)
	}
	if len(dim) > MaxDimensions {
		return 0, fmt.Errorf("%w: %d dimensions exceeds maximum of %d", ErrBadShape, len(dim), MaxDimensions)
	}
	numPixels := int64(1)
	for d, length := range dim {
		if length < 1 {
			return 0, fmt.Errorf("%w: dimension %d has length %d", ErrBadShape, d, length)
		}
		if numPixels > math.MaxInt64/length {
			return 0, fmt.Errorf("%w: %v has more than 2^63 elements", ErrBadShape, dim)
		}
		numPixels *= length
	}
	return numPixels, nil
}

// CheckedMul returns a*b for non-negative arguments or an error on overflow.
func CheckedMul(a, b int64) (int64, error) {
	if a != 0 && b > math.MaxInt64/a {
		return 0, fmt.Errorf("%w: %d x %d overflows 64 bits", ErrBadShape, a, b)
	}
	return a * b, nil
}
