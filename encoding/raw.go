package encoding

import (
	"math"
	"slices"

	"github.com/arloliu/matfile/endian"
	"github.com/arloliu/matfile/format"
)

// Numeric is the closed set of Go types that map one-to-one onto MAT numeric
// data types. Only these types can back a data buffer, so every encoding
// switch below is exhaustive by construction.
type Numeric interface {
	int8 | uint8 | int16 | uint16 | int32 | uint32 | int64 | uint64 | float32 | float64
}

// TypeOf returns the MAT data type that stores values of T.
func TypeOf[T Numeric]() format.DataType {
	var zero T
	switch any(zero).(type) {
	case int8:
		return format.TypeInt8
	case uint8:
		return format.TypeUint8
	case int16:
		return format.TypeInt16
	case uint16:
		return format.TypeUint16
	case int32:
		return format.TypeInt32
	case uint32:
		return format.TypeUint32
	case int64:
		return format.TypeInt64
	case uint64:
		return format.TypeUint64
	case float32:
		return format.TypeSingle
	case float64:
		return format.TypeDouble
	}

	panic("encoding: type outside the Numeric constraint")
}

// AppendRaw appends values to dst in engine byte order, one fixed-width
// record per value, and returns the extended slice.
//
// Floating point values are written as their IEEE 754 bit patterns.
func AppendRaw[T Numeric](dst []byte, engine endian.EndianEngine, values []T) []byte {
	if len(values) == 0 {
		return dst
	}

	dst = slices.Grow(dst, len(values)*TypeOf[T]().Width())

	switch v := any(values).(type) {
	case []int8:
		for _, x := range v {
			dst = append(dst, byte(x))
		}
	case []uint8:
		dst = append(dst, v...)
	case []int16:
		for _, x := range v {
			dst = engine.AppendUint16(dst, uint16(x))
		}
	case []uint16:
		for _, x := range v {
			dst = engine.AppendUint16(dst, x)
		}
	case []int32:
		for _, x := range v {
			dst = engine.AppendUint32(dst, uint32(x))
		}
	case []uint32:
		for _, x := range v {
			dst = engine.AppendUint32(dst, x)
		}
	case []int64:
		for _, x := range v {
			dst = engine.AppendUint64(dst, uint64(x))
		}
	case []uint64:
		for _, x := range v {
			dst = engine.AppendUint64(dst, x)
		}
	case []float32:
		for _, x := range v {
			dst = engine.AppendUint32(dst, math.Float32bits(x))
		}
	case []float64:
		for _, x := range v {
			dst = engine.AppendUint64(dst, math.Float64bits(x))
		}
	}

	return dst
}
