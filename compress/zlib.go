package compress

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zlib"

	"github.com/arloliu/matfile/errs"
	"github.com/arloliu/matfile/format"
)

// Compression levels accepted by NewZlibCompressor and NewGzipCompressor.
const (
	HuffmanOnly         = zlib.HuffmanOnly
	DefaultLevel        = zlib.DefaultCompression
	NoCompression       = zlib.NoCompression
	BestSpeed           = zlib.BestSpeed
	BestCompression     = zlib.BestCompression
	minCompressionLevel = HuffmanOnly
)

// ZlibCompressor produces the zlib (RFC 1950) streams stored in miCOMPRESSED
// elements: a 2-byte header, a deflate body and an Adler-32 trailer, which is
// what MATLAB, scipy and other MAT readers inflate.
//
// Writers are pooled per compressor, so a single ZlibCompressor should be
// reused across writes. It is safe for concurrent use.
type ZlibCompressor struct {
	level int
	pool  sync.Pool
}

var (
	_ Codec       = (*ZlibCompressor)(nil)
	_ StreamCodec = (*ZlibCompressor)(nil)
)

// NewZlibCompressor creates a zlib codec using the given compression level.
func NewZlibCompressor(level int) (*ZlibCompressor, error) {
	if err := ValidateLevel(level); err != nil {
		return nil, err
	}

	return &ZlibCompressor{level: level}, nil
}

// ValidateLevel reports whether level is a valid deflate compression level.
func ValidateLevel(level int) error {
	if level < minCompressionLevel || level > BestCompression {
		return fmt.Errorf("%w: deflate level %d", errs.ErrInvalidCompression, level)
	}

	return nil
}

// Level returns the configured compression level.
func (c *ZlibCompressor) Level() int {
	return c.level
}

// Type implements StreamCodec.
func (c *ZlibCompressor) Type() format.CompressionType {
	return format.CompressionZlib
}

// Compress returns the complete zlib stream for data. Empty input still
// yields a valid (non-empty) stream.
func (c *ZlibCompressor) Compress(data []byte) ([]byte, error) {
	var out bytes.Buffer
	out.Grow(len(data)/2 + 64)

	zw, err := c.writer(&out)
	if err != nil {
		return nil, err
	}
	defer c.pool.Put(zw)

	if _, err := zw.Write(data); err != nil {
		return nil, fmt.Errorf("zlib compression failed: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zlib compression failed: %w", err)
	}

	return out.Bytes(), nil
}

func (c *ZlibCompressor) writer(w io.Writer) (*zlib.Writer, error) {
	if zw, ok := c.pool.Get().(*zlib.Writer); ok {
		zw.Reset(w)
		return zw, nil
	}

	return zlib.NewWriterLevel(w, c.level)
}

// Decompress inflates a zlib stream.
func (c *ZlibCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("zlib reader: %w", err)
	}
	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("zlib decompression failed: %w", err)
	}

	return out, nil
}

// NewWriter implements StreamCodec.
func (c *ZlibCompressor) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return zlib.NewWriterLevel(w, c.level)
}

// NewReader implements StreamCodec.
func (c *ZlibCompressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	return zlib.NewReader(r)
}
