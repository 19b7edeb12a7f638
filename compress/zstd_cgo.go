//go:build cgo && gozstd

package compress

import (
	"io"

	"github.com/valyala/gozstd"
)

const gozstdLevel = 3

// NewWriter implements StreamCodec using libzstd.
func (c ZstdCompressor) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return &gozstdWriter{Writer: gozstd.NewWriterLevel(w, gozstdLevel)}, nil
}

// NewReader implements StreamCodec using libzstd.
func (c ZstdCompressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	return &gozstdReader{Reader: gozstd.NewReader(r)}, nil
}

// gozstdWriter releases the C resources once the stream is closed.
type gozstdWriter struct {
	*gozstd.Writer
}

func (w *gozstdWriter) Close() error {
	err := w.Writer.Close()
	w.Writer.Release()

	return err
}

type gozstdReader struct {
	*gozstd.Reader
}

func (r *gozstdReader) Close() error {
	r.Reader.Release()
	return nil
}
