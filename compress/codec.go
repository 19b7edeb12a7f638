package compress

import (
	"fmt"
	"io"

	"github.com/arloliu/matfile/errs"
	"github.com/arloliu/matfile/format"
)

// Compressor compresses a complete payload in one call.
//
// The returned slice is newly allocated and owned by the caller; the input is
// not modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// StreamCodec wraps byte streams, used to compress a whole MAT-file on its
// way to the destination.
//
// Data written to the returned writer is only complete once Close has
// returned; Close never closes the underlying writer.
type StreamCodec interface {
	Type() format.CompressionType
	NewWriter(w io.Writer) (io.WriteCloser, error)
	NewReader(r io.Reader) (io.ReadCloser, error)
}

// CompressionStats describes the effect of one compression call.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used.
	Algorithm format.CompressionType
	// OriginalSize is the size of input data before compression.
	OriginalSize int64
	// CompressedSize is the size of data after compression.
	CompressedSize int64
}

// CompressionRatio returns compressed size / original size, or 0 when nothing
// was compressed. Values below 1.0 mean the data shrank.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space saved as a percentage (0-100).
func (s CompressionStats) SpaceSavings() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateStreamCodec returns the stream codec for a transport compression type.
//
// CompressionZlib is rejected: zlib is reserved for miCOMPRESSED payloads
// inside the file and is not a transport format.
func CreateStreamCodec(compressionType format.CompressionType) (StreamCodec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionGzip:
		return NewGzipCompressor(DefaultLevel), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: transport %s", errs.ErrInvalidCompression, compressionType)
	}
}

// nopWriteCloser adds a Close that does nothing, leaving the wrapped writer open.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
