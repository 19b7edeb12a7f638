package compress

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/matfile/errs"
	"github.com/arloliu/matfile/format"
)

func samplePayload() []byte {
	// element-like data: repeated tags with small payloads
	var buf bytes.Buffer
	for i := range 256 {
		buf.Write([]byte{0x0e, 0, 0, 0, byte(i), 0, 0, 0})
		buf.WriteString("Hello, World!\x00\x00\x00")
	}

	return buf.Bytes()
}

func TestCompressionStats(t *testing.T) {
	stats := CompressionStats{
		Algorithm:      format.CompressionZlib,
		OriginalSize:   1000,
		CompressedSize: 250,
	}
	require.InDelta(t, 0.25, stats.CompressionRatio(), 1e-9)
	require.InDelta(t, 75.0, stats.SpaceSavings(), 1e-9)

	empty := CompressionStats{}
	require.Equal(t, 0.0, empty.CompressionRatio())
	require.Equal(t, 0.0, empty.SpaceSavings())
}

func TestCreateStreamCodec(t *testing.T) {
	tests := []struct {
		name  string
		cType format.CompressionType
	}{
		{"none", format.CompressionNone},
		{"gzip", format.CompressionGzip},
		{"zstd", format.CompressionZstd},
		{"s2", format.CompressionS2},
		{"lz4", format.CompressionLZ4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec, err := CreateStreamCodec(tt.cType)
			require.NoError(t, err)
			require.Equal(t, tt.cType, codec.Type())
		})
	}

	t.Run("zlib is not a transport", func(t *testing.T) {
		_, err := CreateStreamCodec(format.CompressionZlib)
		require.ErrorIs(t, err, errs.ErrInvalidCompression)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := CreateStreamCodec(format.CompressionType(0xFF))
		require.ErrorIs(t, err, errs.ErrInvalidCompression)
	})
}

func TestStreamCodec_RoundTrip(t *testing.T) {
	payload := samplePayload()

	for _, cType := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionGzip,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(cType.String(), func(t *testing.T) {
			codec, err := CreateStreamCodec(cType)
			require.NoError(t, err)

			var sink bytes.Buffer
			w, err := codec.NewWriter(&sink)
			require.NoError(t, err)

			// write in two chunks to exercise streaming
			_, err = w.Write(payload[:100])
			require.NoError(t, err)
			_, err = w.Write(payload[100:])
			require.NoError(t, err)
			require.NoError(t, w.Close())

			if cType != format.CompressionNone {
				require.Less(t, sink.Len(), len(payload))
			}

			r, err := codec.NewReader(bytes.NewReader(sink.Bytes()))
			require.NoError(t, err)
			defer r.Close()

			out, err := io.ReadAll(r)
			require.NoError(t, err)
			require.Equal(t, payload, out)
		})
	}
}

func TestNoOpCompressor_CloseKeepsSinkOpen(t *testing.T) {
	var sink bytes.Buffer
	w, err := NewNoOpCompressor().NewWriter(&sink)
	require.NoError(t, err)

	_, err = w.Write([]byte("MATLAB"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.Equal(t, "MATLAB", sink.String())
}

func TestGzipCompressor_InvalidLevelFallsBack(t *testing.T) {
	codec := NewGzipCompressor(42)
	require.Equal(t, DefaultLevel, codec.level)
}
