package hash

import (
	"io"

	"github.com/cespare/xxhash/v2"
)

// Sum64 computes the xxHash64 of data.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Writer forwards writes to an underlying io.Writer while keeping a running
// xxHash64 and byte count of everything that was accepted by it.
//
// Only the bytes the underlying writer reports as written are hashed, so after
// a short write the checksum still describes what actually reached the sink.
type Writer struct {
	w      io.Writer
	digest *xxhash.Digest
	n      int64
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:      w,
		digest: xxhash.New(),
	}
}

// Write implements io.Writer.
func (hw *Writer) Write(p []byte) (int, error) {
	n, err := hw.w.Write(p)
	if n > 0 {
		_, _ = hw.digest.Write(p[:n])
		hw.n += int64(n)
	}

	return n, err
}

// Sum64 returns the xxHash64 of the bytes written so far.
func (hw *Writer) Sum64() uint64 {
	return hw.digest.Sum64()
}

// Count returns the number of bytes written so far.
func (hw *Writer) Count() int64 {
	return hw.n
}
