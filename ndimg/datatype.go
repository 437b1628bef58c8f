/*
   This file describes the primitive element types used to hold pixel values.
*/

package ndimg

import (
	"encoding/json"
	"fmt"
)

// DataType is a unique ID for each type of element value, e.g., a uint8 or a float32.
// Storage blocks only ever hold the signed integer and float types; unsigned
// values are kept in the signed type of equal width and reinterpreted on read.
type DataType uint8

const (
	T_uint8 DataType = iota
	T_int8
	T_uint16
	T_int16
	T_uint32
	T_int32
	T_uint64
	T_int64
	T_float32
	T_float64
)

var typeBytes = map[DataType]int{
	T_uint8:   1,
	T_int8:    1,
	T_uint16:  2,
	T_int16:   2,
	T_uint32:  4,
	T_int32:   4,
	T_uint64:  8,
	T_int64:   8,
	T_float32: 4,
	T_float64: 8,
}

var typeNames = map[DataType]string{
	T_uint8:   "uint8",
	T_int8:    "int8",
	T_uint16:  "uint16",
	T_int16:   "int16",
	T_uint32:  "uint32",
	T_int32:   "int32",
	T_uint64:  "uint64",
	T_int64:   "int64",
	T_float32: "float32",
	T_float64: "float64",
}

// DataTypeBytes returns the # of bytes for a given type.  For example, T_uint16 is
// 2 bytes.  Unknown types return 0.
func DataTypeBytes(t DataType) int {
	return typeBytes[t]
}

// ParseDataType returns the DataType with the given name, e.g., "uint16".
func ParseDataType(name string) (DataType, error) {
	for t, s := range typeNames {
		if s == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("Unknown data type %q", name)
}

func (t DataType) String() string {
	if s, found := typeNames[t]; found {
		return s
	}
	return fmt.Sprintf("unknown data type %d", uint8(t))
}

// Bits returns the number of bits in a value of the type.
func (t DataType) Bits() int {
	return 8 * typeBytes[t]
}

// Storage returns the primitive that holds values of this type within a storage block.
// Unsigned types map to the signed type of the same width.
func (t DataType) Storage() DataType {
	switch t {
	case T_uint8:
		return T_int8
	case T_uint16:
		return T_int16
	case T_uint32:
		return T_int32
	case T_uint64:
		return T_int64
	default:
		return t
	}
}

// IsStorage returns true if the type can be used directly for a storage block.
func (t DataType) IsStorage() bool {
	switch t {
	case T_int8, T_int16, T_int32, T_int64, T_float32, T_float64:
		return true
	default:
		return false
	}
}

// MarshalJSON implements the json.Marshaler interface.
func (t DataType) MarshalJSON() ([]byte, error) {
	if _, found := typeNames[t]; !found {
		return nil, fmt.Errorf("Cannot marshal unknown data type %d", uint8(t))
	}
	return []byte(fmt.Sprintf("%q", t.String())), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (t *DataType) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	parsed, err := ParseDataType(name)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
