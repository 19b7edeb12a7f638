package section

import (
	"fmt"

	"github.com/arloliu/matfile/endian"
	"github.com/arloliu/matfile/errs"
	"github.com/arloliu/matfile/format"
)

// Tag is the 8-byte prefix of every data element.
type Tag struct {
	// Type is the data type of the payload.
	Type format.DataType
	// Length is the payload byte count, excluding tag and padding.
	Length uint32
}

// NewTag creates a tag for a payload of length bytes.
//
// Returns:
//   - Tag: The element tag
//   - error: ErrElementTooLarge if length does not fit in 32 bits
func NewTag(dataType format.DataType, length int) (Tag, error) {
	if length < 0 || uint64(length) > MaxPayloadSize {
		return Tag{}, fmt.Errorf("%w: %s payload of %d bytes", errs.ErrElementTooLarge, dataType, length)
	}

	return Tag{Type: dataType, Length: uint32(length)}, nil
}

// AppendTo appends the 8 tag bytes to dst.
func (t Tag) AppendTo(dst []byte, engine endian.EndianEngine) []byte {
	dst = engine.AppendUint32(dst, uint32(t.Type))
	return engine.AppendUint32(dst, t.Length)
}

// ElementSize returns the total size of the element the tag starts:
// tag, payload and padding.
func (t Tag) ElementSize() int {
	return TagSize + Align8(int(t.Length))
}

// ParseTag decodes a tag from the first TagSize bytes of data.
func ParseTag(data []byte, engine endian.EndianEngine) (Tag, error) {
	if len(data) < TagSize {
		return Tag{}, fmt.Errorf("%w: tag needs %d bytes, got %d", errs.ErrInvalidHeaderSize, TagSize, len(data))
	}

	return Tag{
		Type:   format.DataType(engine.Uint32(data[0:4])),
		Length: engine.Uint32(data[4:8]),
	}, nil
}

// Align8 rounds n up to the next multiple of 8.
func Align8(n int) int {
	return (n + Alignment - 1) &^ (Alignment - 1)
}

// PaddingLen returns the number of zero bytes that follow a payload of n bytes.
func PaddingLen(n int) int {
	return Align8(n) - n
}

// AppendPadding appends the zero padding for a payload of n bytes.
func AppendPadding(dst []byte, n int) []byte {
	var zeros [Alignment]byte
	return append(dst, zeros[:PaddingLen(n)]...)
}
