package element

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/matfile/compress"
	"github.com/arloliu/matfile/endian"
	"github.com/arloliu/matfile/errs"
	"github.com/arloliu/matfile/format"
	"github.com/arloliu/matfile/section"
)

func sampleMembers(t *testing.T) []Element {
	t.Helper()

	greeting, err := NewMatrix("greeting", NewString("Hello, World!"))
	require.NoError(t, err)

	arr, err := NewNumericArray([]float64{1, 3, 2, 4}, 2, 2)
	require.NoError(t, err)
	matrix, err := NewMatrix("A", arr)
	require.NoError(t, err)

	return []Element{greeting, matrix}
}

func concatMembers(t *testing.T, members []Element, engine endian.EndianEngine) []byte {
	t.Helper()

	var out []byte
	for _, m := range members {
		var err error
		out, err = m.AppendTo(out, engine)
		require.NoError(t, err)
	}

	return out
}

// splitCompressed checks the element framing and returns the zlib payload.
func splitCompressed(t *testing.T, data []byte, engine endian.EndianEngine) []byte {
	t.Helper()

	tag, err := section.ParseTag(data, engine)
	require.NoError(t, err)
	require.Equal(t, format.TypeCompressed, tag.Type)
	require.Len(t, data, tag.ElementSize())

	payload := data[section.TagSize : section.TagSize+int(tag.Length)]
	require.Equal(t, make([]byte, section.PaddingLen(len(payload))), data[section.TagSize+int(tag.Length):])

	return payload
}

func TestCompressed_RoundTrip(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	members := sampleMembers(t)

	c, err := NewCompressed(members)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	size := c.Size()
	got, err := c.AppendTo(nil, engine)
	require.NoError(t, err)
	require.Equal(t, size, len(got))
	require.Zero(t, len(got)%8)

	inflated, err := Inflate(splitCompressed(t, got, engine))
	require.NoError(t, err)
	require.Equal(t, concatMembers(t, members, engine), inflated)
}

func TestCompressed_NoMembers(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	c, err := NewCompressed(nil)
	require.NoError(t, err)

	got, err := c.AppendTo(nil, engine)
	require.NoError(t, err)
	require.Equal(t, c.Size(), len(got))

	payload := splitCompressed(t, got, engine)
	require.NotEmpty(t, payload)

	inflated, err := Inflate(payload)
	require.NoError(t, err)
	require.Empty(t, inflated)
}

func TestCompressed_BigEndian(t *testing.T) {
	engine := endian.GetBigEndianEngine()
	members := sampleMembers(t)

	c, err := NewCompressed(members, WithEngine(engine))
	require.NoError(t, err)

	size := c.Size()
	got, err := c.AppendTo(nil, engine)
	require.NoError(t, err)
	require.Equal(t, size, len(got))

	inflated, err := Inflate(splitCompressed(t, got, engine))
	require.NoError(t, err)
	require.Equal(t, concatMembers(t, members, engine), inflated)
}

func TestCompressed_EngineSwitch(t *testing.T) {
	members := sampleMembers(t)

	c, err := NewCompressed(members)
	require.NoError(t, err)
	_ = c.Size()

	// appending in another byte order re-encodes, and Size follows
	got, err := c.AppendTo(nil, endian.GetBigEndianEngine())
	require.NoError(t, err)
	require.Equal(t, c.Size(), len(got))

	inflated, err := Inflate(splitCompressed(t, got, endian.GetBigEndianEngine()))
	require.NoError(t, err)
	require.Equal(t, concatMembers(t, members, endian.GetBigEndianEngine()), inflated)
}

func TestCompressed_Stable(t *testing.T) {
	c, err := NewCompressed(sampleMembers(t))
	require.NoError(t, err)

	first, err := c.AppendTo(nil, endian.GetLittleEndianEngine())
	require.NoError(t, err)
	second, err := c.AppendTo(nil, endian.GetLittleEndianEngine())
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestCompressed_Levels(t *testing.T) {
	members := sampleMembers(t)
	engine := endian.GetLittleEndianEngine()
	want := concatMembers(t, members, engine)

	for _, level := range []int{compress.NoCompression, compress.BestSpeed, compress.BestCompression, compress.HuffmanOnly} {
		c, err := NewCompressed(members, WithCompressionLevel(level))
		require.NoError(t, err)

		got, err := c.AppendTo(nil, engine)
		require.NoError(t, err)

		inflated, err := Inflate(splitCompressed(t, got, engine))
		require.NoError(t, err)
		require.Equal(t, want, inflated, "level %d", level)
	}

	_, err := NewCompressed(members, WithCompressionLevel(42))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestCompressed_Stats(t *testing.T) {
	members := sampleMembers(t)
	engine := endian.GetLittleEndianEngine()

	c, err := NewCompressed(members)
	require.NoError(t, err)
	require.Zero(t, c.Stats().OriginalSize)

	got, err := c.AppendTo(nil, engine)
	require.NoError(t, err)

	stats := c.Stats()
	require.Equal(t, format.CompressionZlib, stats.Algorithm)
	require.Equal(t, int64(len(concatMembers(t, members, engine))), stats.OriginalSize)
	require.Equal(t, int64(len(splitCompressed(t, got, engine))), stats.CompressedSize)
}

func TestCompressed_MembersSnapshot(t *testing.T) {
	members := sampleMembers(t)
	c, err := NewCompressed(members)
	require.NoError(t, err)

	members[0] = nil
	_, err = c.AppendTo(nil, endian.GetLittleEndianEngine())
	require.NoError(t, err)
}
