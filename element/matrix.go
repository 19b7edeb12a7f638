package element

import (
	"fmt"
	"slices"

	"github.com/arloliu/matfile/endian"
	"github.com/arloliu/matfile/errs"
	"github.com/arloliu/matfile/format"
	"github.com/arloliu/matfile/section"
)

// Matrix is a named array, the miMATRIX element. Its payload is four
// sub-elements in fixed order:
//
//	array flags  miUINT32 [class | flags<<8, nzmax]
//	dimensions   miINT32  [d0, d1, ...]
//	name         miINT8   bytes of the name, unchanged
//	data         one DataBuffer
//
// The name is bound at construction and never changes. It is written byte
// for byte; MATLAB only loads names that are valid ASCII identifiers, but
// that is not enforced here.
type Matrix struct {
	name  string
	arr   Array
	flags *DataBuffer[uint32]
	dims  *DataBuffer[int32]
	label *DataBuffer[uint8]
	tag   section.Tag
}

var _ Element = (*Matrix)(nil)

// NewMatrix binds name to arr.
//
// Returns:
//   - *Matrix: The named array element
//   - error: ErrInvalidName if name is empty, ErrInvalidDataType for a zero
//     Array, ErrElementTooLarge if the element exceeds 4GiB
func NewMatrix(name string, arr Array) (*Matrix, error) {
	if name == "" {
		return nil, errs.ErrInvalidName
	}
	if err := arr.valid(); err != nil {
		return nil, err
	}

	// word 1 is nzmax, only meaningful for sparse arrays
	flags, err := NewDataBuffer([]uint32{flagsWord(arr.class, arr.flags), 0})
	if err != nil {
		return nil, err
	}

	dims, err := NewDataBuffer(arr.dims)
	if err != nil {
		return nil, err
	}

	label, err := newDataBufferAs([]uint8(name), format.TypeInt8)
	if err != nil {
		return nil, err
	}

	m := &Matrix{
		name:  name,
		arr:   arr,
		flags: flags,
		dims:  dims,
		label: label,
	}

	payload := flags.Size() + dims.Size() + label.Size() + arr.data.Size()
	m.tag, err = section.NewTag(format.TypeMatrix, payload)
	if err != nil {
		return nil, fmt.Errorf("matrix %q: %w", name, err)
	}

	return m, nil
}

// flagsWord packs the class into bits 0-7 and the flags into bits 8-15.
func flagsWord(class format.ArrayClass, flags format.ArrayFlags) uint32 {
	return uint32(class) | uint32(flags)<<8
}

// Name returns the variable name.
func (m *Matrix) Name() string {
	return m.name
}

// Array returns the array bound to the name.
func (m *Matrix) Array() Array {
	return m.arr
}

// Class returns the array class.
func (m *Matrix) Class() format.ArrayClass {
	return m.arr.class
}

// Dims returns a copy of the array dimensions.
func (m *Matrix) Dims() []int {
	return m.arr.Dims()
}

// Size implements Element.
func (m *Matrix) Size() int {
	return m.tag.ElementSize()
}

// AppendTo implements Element.
func (m *Matrix) AppendTo(dst []byte, engine endian.EndianEngine) ([]byte, error) {
	dst = slices.Grow(dst, m.Size())
	dst = m.tag.AppendTo(dst, engine)

	for _, child := range []Element{m.flags, m.dims, m.label, m.arr.data} {
		var err error
		if dst, err = child.AppendTo(dst, engine); err != nil {
			return nil, fmt.Errorf("matrix %q: %w", m.name, err)
		}
	}

	return dst, nil
}
