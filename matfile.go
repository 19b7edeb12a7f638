// Package matfile writes Level 5 MAT-files, the binary format MATLAB, Octave
// and scipy.io use to store named arrays.
//
// A File is an ordered table of named arrays. Writing it produces the 128-byte
// header followed by one miMATRIX element per name, in insertion order, or a
// single miCOMPRESSED element holding all of them.
//
// # Basic Usage
//
//	f, _ := matfile.New()
//
//	_ = f.Set("greeting", element.NewString("Hello, World!"))
//
//	a, _ := element.NewNumericArray([]float64{1, 3, 2, 4}, 2, 2) // column-major
//	_ = f.Set("A", a)
//	_ = f.Set("n", element.NewScalar(int32(42)))
//
//	// plain file
//	_, _ = f.WriteToDisk("out.mat")
//
//	// zlib-compressed elements, readable by MATLAB 7 and later
//	_, _ = f.WriteToDisk("out_compressed.mat", matfile.WithCompression(true))
//
// # Names
//
// Set inserts or replaces: replacing keeps the name's original write
// position and does not check that the new array matches the old one in type
// or shape. SetIfAbsent never replaces, and Add fails with errs.ErrDuplicateName
// when the name is taken.
//
// # Transport Compression
//
// WithTransport wraps the finished file in a gzip, zstd, S2 or LZ4 stream,
// for archives or pipelines that expect e.g. "results.mat.gz". This is
// independent of WithCompression, which compresses inside the MAT format.
//
// # Thread Safety
//
// A File is not safe for concurrent use. The table must not be modified while
// a write is in progress. A File can be written any number of times.
package matfile

import (
	"fmt"
	"io"
	"iter"
	"os"
	"time"

	"github.com/arloliu/matfile/compress"
	"github.com/arloliu/matfile/element"
	"github.com/arloliu/matfile/endian"
	"github.com/arloliu/matfile/errs"
	"github.com/arloliu/matfile/format"
	"github.com/arloliu/matfile/internal/hash"
	"github.com/arloliu/matfile/internal/options"
	"github.com/arloliu/matfile/internal/registry"
	"github.com/arloliu/matfile/section"
)

// File assembles named arrays into a MAT-file.
type File struct {
	entries     *registry.Registry[*element.Matrix]
	engine      endian.EndianEngine
	description string
	clock       func() time.Time
	logger      *logger
}

// WriteResult describes one completed write.
type WriteResult struct {
	// Bytes is the number of bytes that reached the destination.
	Bytes int64
	// Checksum is the xxHash64 of exactly those bytes.
	Checksum uint64
	// Compressed reports whether the arrays were stored in a miCOMPRESSED element.
	Compressed bool
	// Transport is the stream compression wrapped around the output.
	Transport format.CompressionType
}

var defaultFileOptions = []Option{
	WithLittleEndian(),
	WithClock(time.Now),
	WithLogger(nil),
}

// New creates an empty File.
func New(opts ...Option) (*File, error) {
	f := &File{
		entries: registry.New[*element.Matrix](),
	}

	if err := options.ApplyWithDefaults(f, defaultFileOptions, opts...); err != nil {
		return nil, err
	}

	return f, nil
}

// Set binds arr to name, replacing any array already stored under name.
// A replaced name keeps its position in the file.
//
// Returns:
//   - error: ErrInvalidName if name is empty, or an error from element.NewMatrix
func (f *File) Set(name string, arr element.Array) error {
	m, err := element.NewMatrix(name, arr)
	if err != nil {
		return err
	}

	_, err = f.entries.Set(name, m)

	return err
}

// SetIfAbsent binds arr to name only if name is not in use yet.
//
// Returns:
//   - bool: true if arr was inserted, false if name already exists
//   - error: ErrInvalidName if name is empty, or an error from element.NewMatrix
func (f *File) SetIfAbsent(name string, arr element.Array) (bool, error) {
	if name == "" {
		return false, errs.ErrInvalidName
	}
	if f.entries.Contains(name) {
		return false, nil
	}

	m, err := element.NewMatrix(name, arr)
	if err != nil {
		return false, err
	}

	return f.entries.SetIfAbsent(name, m)
}

// Add binds arr to a new name and fails with ErrDuplicateName if name is in use.
func (f *File) Add(name string, arr element.Array) error {
	inserted, err := f.SetIfAbsent(name, arr)
	if err != nil {
		return err
	}
	if !inserted {
		return fmt.Errorf("%w: %q", errs.ErrDuplicateName, name)
	}

	return nil
}

// Get returns the named array stored under name.
//
// Returns:
//   - *element.Matrix: The named array
//   - error: ErrInvalidName if name is empty, ErrNotFound if name is absent
func (f *File) Get(name string) (*element.Matrix, error) {
	if name == "" {
		return nil, errs.ErrInvalidName
	}

	m, ok := f.entries.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrNotFound, name)
	}

	return m, nil
}

// Delete removes name and reports whether it was present.
func (f *File) Delete(name string) bool {
	return f.entries.Delete(name)
}

// Len returns the number of named arrays.
func (f *File) Len() int {
	return f.entries.Len()
}

// Names returns the names in write order.
func (f *File) Names() []string {
	return f.entries.Names()
}

// All iterates over the named arrays in write order.
func (f *File) All() iter.Seq2[string, *element.Matrix] {
	return f.entries.All()
}

// Reset removes every named array, keeping the file options.
func (f *File) Reset() {
	f.entries.Reset()
}

// Engine returns the byte order the file is written in.
func (f *File) Engine() endian.EndianEngine {
	return f.engine
}

// Header builds the file header for a write happening now.
func (f *File) Header() *section.FileHeader {
	text := f.description
	if text == "" {
		text = section.DefaultText(f.clock())
	}

	return section.NewFileHeader(f.engine, text)
}

// Size returns the size of the file written without compression.
func (f *File) Size() int {
	size := section.HeaderSize
	for _, m := range f.entries.All() {
		size += m.Size()
	}

	return size
}

// Encode writes the complete file to w.
//
// Returns:
//   - WriteResult: Bytes written to w and their checksum; valid even on error
//   - error: Option errors, or ErrIOFailure wrapping the error returned by w
func (f *File) Encode(w io.Writer, opts ...WriteOption) (WriteResult, error) {
	cfg := defaultWriteConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return WriteResult{}, err
	}

	return f.encode(w, cfg)
}

// WriteToDisk creates or truncates the file at path and writes to it.
//
// The destination is closed on every path. A failed write can leave a
// truncated file behind.
//
// Returns:
//   - WriteResult: Bytes written and their checksum; valid even on error
//   - error: ErrInvalidDestination if path is empty, option errors, or
//     ErrIOFailure wrapping the underlying *fs.PathError or write error
func (f *File) WriteToDisk(path string, opts ...WriteOption) (WriteResult, error) {
	if path == "" {
		return WriteResult{}, fmt.Errorf("%w: empty path", errs.ErrInvalidDestination)
	}

	cfg := defaultWriteConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return WriteResult{}, err
	}

	file, err := os.Create(path)
	if err != nil {
		err = fmt.Errorf("%w: %w", errs.ErrIOFailure, err)
		f.logger.logWrite(path, cfg, WriteResult{}, err)

		return WriteResult{}, err
	}

	result, err := f.encode(file, cfg)
	if closeErr := file.Close(); closeErr != nil && err == nil {
		err = fmt.Errorf("%w: %w", errs.ErrIOFailure, closeErr)
	}

	f.logger.logWrite(path, cfg, result, err)

	return result, err
}

func (f *File) encode(w io.Writer, cfg *writeConfig) (WriteResult, error) {
	codec, err := compress.CreateStreamCodec(cfg.transport)
	if err != nil {
		return WriteResult{}, err
	}

	hw := hash.NewWriter(w)
	result := func() WriteResult {
		return WriteResult{
			Bytes:      hw.Count(),
			Checksum:   hw.Sum64(),
			Compressed: cfg.compressed,
			Transport:  cfg.transport,
		}
	}

	sink, err := codec.NewWriter(hw)
	if err != nil {
		return result(), err
	}

	err = f.writeBody(sink, cfg)
	if closeErr := sink.Close(); closeErr != nil && err == nil {
		err = fmt.Errorf("%w: %w", errs.ErrIOFailure, closeErr)
	}

	return result(), err
}

func (f *File) writeBody(w io.Writer, cfg *writeConfig) error {
	if _, err := w.Write(f.Header().Bytes()); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrIOFailure, err)
	}

	matrices := f.entries.Values()

	if !cfg.compressed {
		for _, m := range matrices {
			if _, err := element.Write(w, m, f.engine); err != nil {
				return fmt.Errorf("write %q: %w", m.Name(), err)
			}
		}

		return nil
	}

	members := make([]element.Element, len(matrices))
	for i, m := range matrices {
		members[i] = m
	}

	container, err := element.NewCompressed(members,
		element.WithCompressionLevel(cfg.level),
		element.WithEngine(f.engine),
	)
	if err != nil {
		return err
	}

	if _, err := element.Write(w, container, f.engine); err != nil {
		return fmt.Errorf("write compressed container: %w", err)
	}

	stats := container.Stats()
	f.logger.Debug("compressed mat-file elements",
		"elements", container.Len(),
		"original_bytes", stats.OriginalSize,
		"compressed_bytes", stats.CompressedSize,
		"ratio", stats.CompressionRatio(),
	)

	return nil
}
