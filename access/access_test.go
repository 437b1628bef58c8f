package access

import (
	"errors"
	"math"
	"testing"

	"github.com/janelia-flyem/ndimg/ndimg"
)

func TestNewBlocks(t *testing.T) {
	tests := []struct {
		dt      ndimg.DataType
		storage ndimg.DataType
	}{
		{ndimg.T_uint8, ndimg.T_int8},
		{ndimg.T_int8, ndimg.T_int8},
		{ndimg.T_uint16, ndimg.T_int16},
		{ndimg.T_int32, ndimg.T_int32},
		{ndimg.T_uint64, ndimg.T_int64},
		{ndimg.T_float32, ndimg.T_float32},
		{ndimg.T_float64, ndimg.T_float64},
	}
	for _, tc := range tests {
		b, err := New(tc.dt, 7)
		if err != nil {
			t.Fatalf("unable to create block for %s: %v", tc.dt, err)
		}
		if b.DataType() != tc.storage {
			t.Errorf("expected %s storage for %s, got %s", tc.storage, tc.dt, b.DataType())
		}
		if b.Len() != 7 {
			t.Errorf("expected length 7, got %d", b.Len())
		}
	}
	if _, err := New(ndimg.T_int16, -1); !errors.Is(err, ndimg.ErrBadShape) {
		t.Errorf("expected bad shape error for negative length, got %v", err)
	}
	if _, err := New(ndimg.DataType(99), 1); err == nil {
		t.Errorf("expected error for unknown data type")
	}
}

func TestArrayValues(t *testing.T) {
	a := NewArray[int16](5)
	for i := 0; i < a.Len(); i++ {
		if a.Value(i) != 0 {
			t.Fatalf("new block not zeroed at %d", i)
		}
		a.SetValue(i, int16(i*1000))
	}
	if a.Value(4) != 4000 {
		t.Errorf("expected 4000, got %d", a.Value(4))
	}

	c := a.Clone().(*ShortArray)
	c.SetValue(0, -1)
	if a.Value(0) != 0 {
		t.Errorf("clone shares storage with original")
	}

	n := a.CreateBlock(3)
	if n.Len() != 3 || n.DataType() != ndimg.T_int16 {
		t.Errorf("bad created block: %d elements of %s", n.Len(), n.DataType())
	}

	data := []float32{1.5, -2}
	w := Wrap(data)
	w.SetValue(1, 3)
	if data[1] != 3 {
		t.Errorf("wrapped block does not write through")
	}
}

func TestArrayBinary(t *testing.T) {
	a := Wrap([]float64{0, -1.25, math.MaxFloat64, math.Inf(-1)})
	b, err := a.MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if len(b) != 32 {
		t.Fatalf("expected 32 bytes, got %d", len(b))
	}
	var got DoubleArray
	if err := got.UnmarshalBinary(b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for i, v := range a.Data() {
		if got.Value(i) != v {
			t.Errorf("element %d: expected %v, got %v", i, v, got.Value(i))
		}
	}

	l := Wrap([]int32{1, -2, 3})
	b, _ = l.MarshalBinary()
	if b[4] != 0xfe || b[7] != 0xff {
		t.Errorf("expected little-endian encoding, got % x", b)
	}
	var short IntArray
	if err := short.UnmarshalBinary(b[:5]); err == nil {
		t.Errorf("expected error on truncated data")
	}
}

type fixedSampler int

func (s fixedSampler) StorageIndex() int { return int(s) }

func TestVariable(t *testing.T) {
	b := NewArray[int8](1)
	owner := Variable(b)
	if owner.Update(fixedSampler(3)) != Block(b) {
		t.Errorf("variable owner did not return its block")
	}
}
