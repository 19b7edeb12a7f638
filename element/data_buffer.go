package element

import (
	"fmt"

	"github.com/arloliu/matfile/encoding"
	"github.com/arloliu/matfile/endian"
	"github.com/arloliu/matfile/errs"
	"github.com/arloliu/matfile/format"
	"github.com/arloliu/matfile/section"
)

// DataBuffer is a data element holding a run of values of one numeric type.
//
// The buffer keeps a view of the slice it was created from; the caller must not
// modify the values until the buffer has been written.
type DataBuffer[T encoding.Numeric] struct {
	values []T
	tag    section.Tag
}

var _ Element = (*DataBuffer[float64])(nil)

// dataElement is the type-erased view of a DataBuffer used by Array.
type dataElement interface {
	Element
	Len() int
	DataType() format.DataType
}

// NewDataBuffer creates a data element for values, tagged with the MAT data
// type matching T (float64 → miDOUBLE, int32 → miINT32, ...).
//
// Returns:
//   - *DataBuffer[T]: The data element
//   - error: ErrElementTooLarge if the payload exceeds 4GiB
func NewDataBuffer[T encoding.Numeric](values []T) (*DataBuffer[T], error) {
	return newDataBufferAs(values, encoding.TypeOf[T]())
}

// newDataBufferAs tags values with dataType instead of the natural type of T.
// dataType must have the same width as T.
func newDataBufferAs[T encoding.Numeric](values []T, dataType format.DataType) (*DataBuffer[T], error) {
	width := encoding.TypeOf[T]().Width()
	if dataType.Width() != width {
		return nil, fmt.Errorf("%w: cannot store %d-byte values as %s", errs.ErrInvalidDataType, width, dataType)
	}

	tag, err := section.NewTag(dataType, len(values)*width)
	if err != nil {
		return nil, err
	}

	return &DataBuffer[T]{values: values, tag: tag}, nil
}

// Len returns the number of values.
func (b *DataBuffer[T]) Len() int {
	return len(b.values)
}

// DataType returns the data type written in the tag.
func (b *DataBuffer[T]) DataType() format.DataType {
	return b.tag.Type
}

// ByteLen returns the payload size in bytes, excluding tag and padding.
func (b *DataBuffer[T]) ByteLen() int {
	return int(b.tag.Length)
}

// Size implements Element.
func (b *DataBuffer[T]) Size() int {
	return b.tag.ElementSize()
}

// AppendTo implements Element.
func (b *DataBuffer[T]) AppendTo(dst []byte, engine endian.EndianEngine) ([]byte, error) {
	dst = b.tag.AppendTo(dst, engine)
	dst = encoding.AppendRaw(dst, engine, b.values)
	dst = section.AppendPadding(dst, int(b.tag.Length))

	return dst, nil
}
