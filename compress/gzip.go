package compress

import (
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/arloliu/matfile/format"
)

// GzipCompressor wraps a destination in a gzip stream, producing files that
// `gunzip` turns back into plain MAT-files.
type GzipCompressor struct {
	level int
}

var _ StreamCodec = GzipCompressor{}

// NewGzipCompressor creates a gzip stream codec. Invalid levels fall back to
// DefaultLevel.
func NewGzipCompressor(level int) GzipCompressor {
	if ValidateLevel(level) != nil {
		level = DefaultLevel
	}

	return GzipCompressor{level: level}
}

// Type implements StreamCodec.
func (c GzipCompressor) Type() format.CompressionType {
	return format.CompressionGzip
}

// NewWriter implements StreamCodec.
func (c GzipCompressor) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return gzip.NewWriterLevel(w, c.level)
}

// NewReader implements StreamCodec.
func (c GzipCompressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}
