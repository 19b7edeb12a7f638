package element

import (
	"fmt"
	"io"

	"github.com/arloliu/matfile/endian"
	"github.com/arloliu/matfile/errs"
	"github.com/arloliu/matfile/internal/pool"
)

// Element is a self-sized, tagged unit of a MAT-file body.
//
// For every element, the slice returned by AppendTo grows dst by exactly
// Size() bytes.
type Element interface {
	// Size returns the encoded size in bytes: tag, payload and padding.
	Size() int
	// AppendTo appends the encoded element to dst in engine byte order.
	AppendTo(dst []byte, engine endian.EndianEngine) ([]byte, error)
}

// Write encodes e into a pooled buffer and writes it to w with a single call.
//
// Returns:
//   - int: Number of bytes accepted by w
//   - error: Encoding error, or the write error wrapped with errs.ErrIOFailure
func Write(w io.Writer, e Element, engine endian.EndianEngine) (int, error) {
	bb := pool.GetElementBuffer()
	defer pool.PutElementBuffer(bb)

	bb.Grow(e.Size())

	var err error
	bb.B, err = e.AppendTo(bb.B, engine)
	if err != nil {
		return 0, err
	}

	n, err := bb.WriteTo(w)
	if err != nil {
		return int(n), fmt.Errorf("%w: %w", errs.ErrIOFailure, err)
	}

	return int(n), nil
}
