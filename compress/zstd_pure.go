//go:build !cgo || !gozstd

package compress

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// NewWriter implements StreamCodec.
func (c ZstdCompressor) NewWriter(w io.Writer) (io.WriteCloser, error) {
	encoder, err := zstd.NewWriter(w,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
		zstd.WithEncoderConcurrency(1),
	)
	if err != nil {
		return nil, fmt.Errorf("zstd writer: %w", err)
	}

	return encoder, nil
}

// NewReader implements StreamCodec.
func (c ZstdCompressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	decoder, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, fmt.Errorf("zstd reader: %w", err)
	}

	return decoder.IOReadCloser(), nil
}
