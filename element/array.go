package element

import (
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/matfile/encoding"
	"github.com/arloliu/matfile/errs"
	"github.com/arloliu/matfile/format"
)

// Array is an unnamed, dimensioned array: class, dimensions and one data
// buffer. It becomes a named element through NewMatrix.
//
// Arrays are immutable values and can be bound to several names. The zero
// Array holds no data and is rejected by NewMatrix.
type Array struct {
	class format.ArrayClass
	flags format.ArrayFlags
	dims  []int32
	data  dataElement
	err   error // deferred construction error, reported by NewMatrix
}

// ClassOf returns the array class of a numeric array backed by values of T.
func ClassOf[T encoding.Numeric]() format.ArrayClass {
	var zero T
	switch any(zero).(type) {
	case int8:
		return format.ClassInt8
	case uint8:
		return format.ClassUint8
	case int16:
		return format.ClassInt16
	case uint16:
		return format.ClassUint16
	case int32:
		return format.ClassInt32
	case uint32:
		return format.ClassUint32
	case int64:
		return format.ClassInt64
	case uint64:
		return format.ClassUint64
	case float32:
		return format.ClassSingle
	case float64:
		return format.ClassDouble
	}

	panic("element: type outside the Numeric constraint")
}

// NewNumericArray creates a numeric array over values, stored in column-major
// order as MATLAB expects.
//
// Parameters:
//   - values: Array elements in column-major order; the slice is not copied
//   - dims: Dimensions, at least two; defaults to a 1×len(values) row vector
//
// Returns:
//   - Array: The array
//   - error: ErrInvalidDimensions if dims do not describe len(values) elements,
//     ErrElementTooLarge if the data exceeds 4GiB
func NewNumericArray[T encoding.Numeric](values []T, dims ...int) (Array, error) {
	shape, err := validateDims(dims, len(values))
	if err != nil {
		return Array{}, err
	}

	data, err := NewDataBuffer(values)
	if err != nil {
		return Array{}, err
	}

	return Array{class: ClassOf[T](), dims: shape, data: data}, nil
}

// NewScalar creates a 1×1 numeric array.
func NewScalar[T encoding.Numeric](v T) Array {
	// one value is at most 8 bytes, far below the 4GiB limit
	data, _ := NewDataBuffer([]T{v})
	return Array{class: ClassOf[T](), dims: []int32{1, 1}, data: data}
}

// NewString creates a 1×N character array holding text, where N is the
// number of UTF-16 code units of text. Empty text yields a 1×0 array.
//
// Text too large for a single element is reported when the array is bound
// to a name.
func NewString(text string) Array {
	arr, err := NewCharArray(text)
	if err != nil {
		return Array{err: err}
	}

	return arr
}

// NewCharArray creates a character array with explicit dimensions, e.g.
// NewCharArray("abc", 3, 1) for a column. Without dims the array is 1×N.
//
// Returns:
//   - Array: The character array
//   - error: ErrInvalidDimensions or ErrElementTooLarge
func NewCharArray(text string, dims ...int) (Array, error) {
	units := encoding.UTF16Units(text)

	shape, err := validateDims(dims, len(units))
	if err != nil {
		return Array{}, err
	}

	data, err := NewDataBuffer(units)
	if err != nil {
		return Array{}, err
	}

	return Array{class: format.ClassChar, dims: shape, data: data}, nil
}

// Class returns the array class.
func (a Array) Class() format.ArrayClass {
	return a.class
}

// Flags returns the array flags. Arrays built by this package carry none.
func (a Array) Flags() format.ArrayFlags {
	return a.flags
}

// Dims returns a copy of the dimensions.
func (a Array) Dims() []int {
	out := make([]int, len(a.dims))
	for i, d := range a.dims {
		out[i] = int(d)
	}

	return out
}

// Len returns the number of stored values (UTF-16 code units for character arrays).
func (a Array) Len() int {
	if a.data == nil {
		return 0
	}

	return a.data.Len()
}

// DataType returns the data type of the data sub-element.
func (a Array) DataType() format.DataType {
	if a.data == nil {
		return 0
	}

	return a.data.DataType()
}

func (a Array) valid() error {
	if a.err != nil {
		return a.err
	}
	if a.data == nil {
		return fmt.Errorf("%w: array has no data", errs.ErrInvalidDataType)
	}

	return nil
}

// validateDims checks dims against the number of values and converts them
// to the int32 representation of the dimensions sub-element.
func validateDims(dims []int, count int) ([]int32, error) {
	if len(dims) == 0 {
		if count > math.MaxInt32 {
			return nil, fmt.Errorf("%w: %d values exceed a single dimension", errs.ErrInvalidDimensions, count)
		}

		return []int32{1, int32(count)}, nil
	}

	if len(dims) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 dimensions, got %d", errs.ErrInvalidDimensions, len(dims))
	}

	for _, d := range dims {
		if d < 0 || d > math.MaxInt32 {
			return nil, fmt.Errorf("%w: dimension %d out of range", errs.ErrInvalidDimensions, d)
		}
	}

	if !holds(dims, count) {
		return nil, fmt.Errorf("%w: %v does not hold %d values", errs.ErrInvalidDimensions, dims, count)
	}

	shape := make([]int32, len(dims))
	for i, d := range dims {
		shape[i] = int32(d)
	}

	return shape, nil
}

// holds reports whether the product of dims equals count, without overflowing.
func holds(dims []int, count int) bool {
	if slices.Contains(dims, 0) {
		return count == 0
	}

	product := 1
	for _, d := range dims {
		if product > count/d {
			return false
		}
		product *= d
	}

	return product == count
}
