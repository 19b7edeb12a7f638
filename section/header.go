package section

import (
	"bytes"
	"fmt"
	"runtime"
	"time"

	"github.com/arloliu/matfile/endian"
	"github.com/arloliu/matfile/errs"
)

// FileHeader is the 128-byte header at the start of every MAT-file.
type FileHeader struct {
	// Text is the human readable description stored in bytes 0..115.
	// It is written as ASCII, truncated or space padded to HeaderTextSize.
	Text string
	// Version is the file format version, always HeaderVersion when writing.
	Version uint16

	engine endian.EndianEngine
}

// NewFileHeader creates a header for a file written in engine byte order.
//
// Parameters:
//   - engine: Byte order of the whole file
//   - text: Descriptive text; see DefaultText for the conventional value
func NewFileHeader(engine endian.EndianEngine, text string) *FileHeader {
	return &FileHeader{
		Text:    text,
		Version: HeaderVersion,
		engine:  engine,
	}
}

// DefaultText returns the descriptive text MATLAB writes, e.g.
//
//	MATLAB 5.0 MAT-file, Platform: linux-amd64, Created on: Mon Jan  2 15:04:05 2006
func DefaultText(createdAt time.Time) string {
	return fmt.Sprintf("MATLAB 5.0 MAT-file, Platform: %s-%s, Created on: %s",
		runtime.GOOS, runtime.GOARCH, createdAt.Format(time.ANSIC))
}

// Engine returns the byte order announced by the header.
func (h *FileHeader) Engine() endian.EndianEngine {
	return h.engine
}

// Bytes serializes the header into a new HeaderSize byte slice.
func (h *FileHeader) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends exactly HeaderSize bytes to dst and returns the extended slice.
func (h *FileHeader) AppendTo(dst []byte) []byte {
	start := len(dst)
	dst = append(dst, asciiText(h.Text)...)
	for len(dst)-start < HeaderTextSize {
		dst = append(dst, ' ')
	}

	// subsystem data offset: unused
	dst = append(dst, 0, 0, 0, 0, 0, 0, 0, 0)
	dst = h.engine.AppendUint16(dst, h.Version)
	indicator := endian.IndicatorBytes(h.engine)
	dst = append(dst, indicator[:]...)

	return dst
}

// asciiText returns at most HeaderTextSize bytes of text with every byte
// outside printable ASCII replaced by '?'.
func asciiText(text string) []byte {
	out := make([]byte, 0, HeaderTextSize)
	for _, r := range text {
		if len(out) == HeaderTextSize {
			break
		}
		if r < 0x20 || r > 0x7e {
			r = '?'
		}
		out = append(out, byte(r))
	}

	return out
}

// ParseFileHeader validates the first HeaderSize bytes of data and decodes
// the header, detecting the byte order from the endian indicator.
//
// Returns:
//   - FileHeader: Decoded header; Text has trailing padding removed
//   - error: ErrInvalidHeaderSize, ErrInvalidEndianIndicator or ErrInvalidVersion
func ParseFileHeader(data []byte) (FileHeader, error) {
	if len(data) < HeaderSize {
		return FileHeader{}, fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	engine, ok := endian.DetectEngine(data[EndianIndicatorOffset:HeaderSize])
	if !ok {
		return FileHeader{}, fmt.Errorf("%w: %q", errs.ErrInvalidEndianIndicator, data[EndianIndicatorOffset:HeaderSize])
	}

	version := engine.Uint16(data[VersionOffset:EndianIndicatorOffset])
	if version != HeaderVersion {
		return FileHeader{}, fmt.Errorf("%w: 0x%04x", errs.ErrInvalidVersion, version)
	}

	text := bytes.TrimRight(data[:HeaderTextSize], " \x00")

	return FileHeader{
		Text:    string(text),
		Version: version,
		engine:  engine,
	}, nil
}
