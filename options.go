package matfile

import (
	"errors"
	"log/slog"
	"time"

	"github.com/arloliu/matfile/compress"
	"github.com/arloliu/matfile/endian"
	"github.com/arloliu/matfile/format"
	"github.com/arloliu/matfile/internal/options"
)

// Option configures a File.
type Option = options.Option[*File]

// WithLittleEndian writes the file in little-endian byte order. This is the default.
func WithLittleEndian() Option {
	return options.NoError(func(f *File) {
		f.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian writes the file in big-endian byte order.
func WithBigEndian() Option {
	return options.NoError(func(f *File) {
		f.engine = endian.GetBigEndianEngine()
	})
}

// WithNativeEndian writes the file in the byte order of the host, as MATLAB does.
func WithNativeEndian() Option {
	return options.NoError(func(f *File) {
		f.engine = endian.GetNativeEngine()
	})
}

// WithDescription replaces the descriptive header text. Text longer than 116
// bytes is truncated; non-ASCII characters are replaced by '?'.
func WithDescription(text string) Option {
	return options.NoError(func(f *File) {
		f.description = text
	})
}

// WithClock sets the time source for the "Created on" part of the default
// header text.
func WithClock(now func() time.Time) Option {
	return options.New(func(f *File) error {
		if now == nil {
			return errors.New("clock function is nil")
		}
		f.clock = now

		return nil
	})
}

// WithLogger sets the structured logger used by WriteToDisk. A nil logger
// discards all output, which is also the default.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(f *File) {
		f.logger = newLogger(logger)
	})
}

// WriteOption configures a single Encode or WriteToDisk call.
type WriteOption = options.Option[*writeConfig]

type writeConfig struct {
	compressed bool
	level      int
	transport  format.CompressionType
}

func defaultWriteConfig() *writeConfig {
	return &writeConfig{
		compressed: false,
		level:      compress.DefaultLevel,
		transport:  format.CompressionNone,
	}
}

// WithCompression stores all named arrays in one miCOMPRESSED element.
func WithCompression(enabled bool) WriteOption {
	return options.NoError(func(c *writeConfig) {
		c.compressed = enabled
	})
}

// WithCompressionLevel sets the zlib level used by WithCompression(true),
// from compress.HuffmanOnly to compress.BestCompression.
func WithCompressionLevel(level int) WriteOption {
	return options.New(func(c *writeConfig) error {
		if err := compress.ValidateLevel(level); err != nil {
			return err
		}
		c.level = level

		return nil
	})
}

// WithTransport wraps the whole output in a gzip, zstd, S2 or LZ4 stream.
// The result is no longer a plain MAT-file: readers must decompress it first.
func WithTransport(transport format.CompressionType) WriteOption {
	return options.New(func(c *writeConfig) error {
		if _, err := compress.CreateStreamCodec(transport); err != nil {
			return err
		}
		c.transport = transport

		return nil
	})
}
