package compress

import (
	"io"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/matfile/format"
)

type S2Compressor struct{}

var _ StreamCodec = S2Compressor{}

// NewS2Compressor creates a new S2 stream codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Type implements StreamCodec.
func (c S2Compressor) Type() format.CompressionType {
	return format.CompressionS2
}

// NewWriter implements StreamCodec using the S2 stream format.
func (c S2Compressor) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return s2.NewWriter(w), nil
}

// NewReader implements StreamCodec.
func (c S2Compressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(s2.NewReader(r)), nil
}
