package compress

import (
	"io"

	"github.com/arloliu/matfile/format"
)

// NoOpCompressor passes the MAT bytes through untouched. It is the default
// transport.
type NoOpCompressor struct{}

var _ StreamCodec = NoOpCompressor{}

// NewNoOpCompressor creates a pass-through codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Type implements StreamCodec.
func (c NoOpCompressor) Type() format.CompressionType {
	return format.CompressionNone
}

// NewWriter returns w itself behind a Close that does nothing.
func (c NoOpCompressor) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return nopWriteCloser{Writer: w}, nil
}

// NewReader returns r behind a Close that does nothing.
func (c NoOpCompressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(r), nil
}
