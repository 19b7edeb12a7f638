package compress

import (
	"io"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/matfile/format"
)

type LZ4Compressor struct{}

var _ StreamCodec = LZ4Compressor{}

// NewLZ4Compressor creates a new LZ4 stream codec.
//
// Returns:
//   - LZ4Compressor: New LZ4 compressor instance
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Type implements StreamCodec.
func (c LZ4Compressor) Type() format.CompressionType {
	return format.CompressionLZ4
}

// NewWriter implements StreamCodec. The output is a standard LZ4 frame, readable
// by the `lz4` command line tool.
func (c LZ4Compressor) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return lz4.NewWriter(w), nil
}

// NewReader implements StreamCodec.
func (c LZ4Compressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(lz4.NewReader(r)), nil
}
