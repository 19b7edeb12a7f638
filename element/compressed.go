package element

import (
	"fmt"
	"sync"

	"github.com/arloliu/matfile/compress"
	"github.com/arloliu/matfile/endian"
	"github.com/arloliu/matfile/format"
	"github.com/arloliu/matfile/internal/options"
	"github.com/arloliu/matfile/internal/pool"
	"github.com/arloliu/matfile/section"
)

// Compressed is the miCOMPRESSED element: a zlib stream of its members,
// serialized exactly as they would be written uncompressed.
//
// The compressed size is only known after compressing, so the encoded element
// is built on the first call to Size or AppendTo and cached for that byte
// order. Size reports the size for the byte order of the latest encoding,
// or for the configured engine before the first AppendTo.
//
// Compressed is not safe for concurrent use.
type Compressed struct {
	members []Element
	level   int
	engine  endian.EndianEngine

	encoded []byte
	stats   compress.CompressionStats
	err     error
}

var _ Element = (*Compressed)(nil)

// CompressedOption configures a Compressed element.
type CompressedOption = options.Option[*Compressed]

// WithCompressionLevel sets the zlib level, from compress.HuffmanOnly to
// compress.BestCompression. The default is compress.DefaultLevel.
func WithCompressionLevel(level int) CompressedOption {
	return options.New(func(c *Compressed) error {
		if err := compress.ValidateLevel(level); err != nil {
			return err
		}
		c.level = level

		return nil
	})
}

// WithEngine sets the byte order Size assumes before the element is first
// appended. The default is little-endian.
func WithEngine(engine endian.EndianEngine) CompressedOption {
	return options.NoError(func(c *Compressed) {
		c.engine = engine
	})
}

// NewCompressed creates a compressed container for members. The member slice
// is copied; the members themselves are encoded lazily.
//
// Zero members is legal and produces the zlib stream of an empty input.
func NewCompressed(members []Element, opts ...CompressedOption) (*Compressed, error) {
	c := &Compressed{
		members: append([]Element(nil), members...),
		level:   compress.DefaultLevel,
		engine:  endian.GetLittleEndianEngine(),
	}

	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// Len returns the number of members.
func (c *Compressed) Len() int {
	return len(c.members)
}

// Size implements Element. It compresses the members on first use; a
// compression failure yields 0 and is returned by the next AppendTo.
func (c *Compressed) Size() int {
	if err := c.encode(c.engine); err != nil {
		return 0
	}

	return len(c.encoded)
}

// AppendTo implements Element.
func (c *Compressed) AppendTo(dst []byte, engine endian.EndianEngine) ([]byte, error) {
	if err := c.encode(engine); err != nil {
		return nil, err
	}

	return append(dst, c.encoded...), nil
}

// Stats reports the uncompressed and compressed payload sizes of the latest
// encoding. It is zero before the element has been sized or appended.
func (c *Compressed) Stats() compress.CompressionStats {
	return c.stats
}

func (c *Compressed) encode(engine endian.EndianEngine) error {
	if c.encoded != nil && c.engine == engine {
		return nil
	}
	if c.err != nil && c.engine == engine {
		return c.err
	}

	c.engine = engine
	c.encoded, c.err = c.build(engine)
	if c.err != nil {
		c.encoded = nil
	}

	return c.err
}

func (c *Compressed) build(engine endian.EndianEngine) ([]byte, error) {
	bb := pool.GetContainerBuffer()
	defer pool.PutContainerBuffer(bb)

	for _, m := range c.members {
		bb.Grow(m.Size())

		var err error
		if bb.B, err = m.AppendTo(bb.B, engine); err != nil {
			return nil, err
		}
	}

	codec, err := zlibCodec(c.level)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Compress(bb.B)
	if err != nil {
		return nil, err
	}

	tag, err := section.NewTag(format.TypeCompressed, len(payload))
	if err != nil {
		return nil, fmt.Errorf("compressed container: %w", err)
	}

	out := make([]byte, 0, tag.ElementSize())
	out = tag.AppendTo(out, engine)
	out = append(out, payload...)
	out = section.AppendPadding(out, len(payload))

	c.stats = compress.CompressionStats{
		Algorithm:      format.CompressionZlib,
		OriginalSize:   int64(bb.Len()),
		CompressedSize: int64(len(payload)),
	}

	return out, nil
}

// Inflate decompresses the payload of a miCOMPRESSED element (the bytes after
// its tag, with or without the trailing padding) back into the serialized
// member elements.
func Inflate(payload []byte) ([]byte, error) {
	codec, err := zlibCodec(compress.DefaultLevel)
	if err != nil {
		return nil, err
	}

	return codec.Decompress(payload)
}

// zlib codecs are shared per level so their writer pools are reused across files.
var zlibCodecs sync.Map // level -> *compress.ZlibCompressor

func zlibCodec(level int) (*compress.ZlibCompressor, error) {
	if codec, ok := zlibCodecs.Load(level); ok {
		return codec.(*compress.ZlibCompressor), nil
	}

	codec, err := compress.NewZlibCompressor(level)
	if err != nil {
		return nil, err
	}
	actual, _ := zlibCodecs.LoadOrStore(level, codec)

	return actual.(*compress.ZlibCompressor), nil
}
