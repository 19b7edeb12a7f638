package compress

import "github.com/arloliu/matfile/format"

// ZstdCompressor wraps a destination in a Zstandard stream.
//
// The pure Go implementation from klauspost/compress is used by default;
// building with `-tags gozstd` (and cgo enabled) switches to the libzstd
// bindings from valyala/gozstd. Both produce standard zstd frames.
type ZstdCompressor struct{}

var _ StreamCodec = ZstdCompressor{}

// NewZstdCompressor creates a new Zstd stream codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// Type implements StreamCodec.
func (c ZstdCompressor) Type() format.CompressionType {
	return format.CompressionZstd
}
