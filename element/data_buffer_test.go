package element

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/matfile/encoding"
	"github.com/arloliu/matfile/endian"
	"github.com/arloliu/matfile/errs"
	"github.com/arloliu/matfile/format"
)

type typedBuffer interface {
	DataType() format.DataType
	ByteLen() int
	Len() int
}

func TestNewDataBuffer_TypeMapping(t *testing.T) {
	check := func(t *testing.T, buf typedBuffer, want format.DataType, byteLen int) {
		t.Helper()
		require.Equal(t, want, buf.DataType())
		require.Equal(t, byteLen, buf.ByteLen())
		require.Equal(t, 3, buf.Len())
	}

	i8, err := NewDataBuffer([]int8{1, 2, 3})
	require.NoError(t, err)
	check(t, i8, format.TypeInt8, 3)

	u16, err := NewDataBuffer([]uint16{1, 2, 3})
	require.NoError(t, err)
	check(t, u16, format.TypeUint16, 6)

	i32, err := NewDataBuffer([]int32{1, 2, 3})
	require.NoError(t, err)
	check(t, i32, format.TypeInt32, 12)

	f32, err := NewDataBuffer([]float32{1, 2, 3})
	require.NoError(t, err)
	check(t, f32, format.TypeSingle, 12)

	u64, err := NewDataBuffer([]uint64{1, 2, 3})
	require.NoError(t, err)
	check(t, u64, format.TypeUint64, 24)

	f64, err := NewDataBuffer([]float64{1, 2, 3})
	require.NoError(t, err)
	check(t, f64, format.TypeDouble, 24)
}

func TestDataBuffer_AppendTo(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	tests := []struct {
		name string
		buf  Element
		want []byte
	}{
		{
			name: "Doubles need no padding",
			buf:  mustBuffer(t, []float64{1, 2}),
			want: le{}.u32(uint32(format.TypeDouble), 16).f64(1, 2),
		},
		{
			name: "Int8 padded to 8",
			buf:  mustBuffer(t, []int8{1, 2, 3}),
			want: le{}.u32(uint32(format.TypeInt8), 3).raw(1, 2, 3).zeros(5),
		},
		{
			name: "Uint16 padded to 8",
			buf:  mustBuffer(t, []uint16{0x48, 0x69}),
			want: le{}.u32(uint32(format.TypeUint16), 4).u16(0x48, 0x69).zeros(4),
		},
		{
			name: "Empty buffer is a bare tag",
			buf:  mustBuffer(t, []uint16{}),
			want: le{}.u32(uint32(format.TypeUint16), 0),
		},
		{
			name: "Nil slice is a bare tag",
			buf:  mustBuffer[float64](t, nil),
			want: le{}.u32(uint32(format.TypeDouble), 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.buf.AppendTo(nil, engine)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.buf.Size(), len(got))
			require.Zero(t, len(got)%8)
		})
	}
}

func TestDataBuffer_BigEndian(t *testing.T) {
	buf := mustBuffer(t, []int16{0x0102, -1})
	got, err := buf.AppendTo(nil, endian.GetBigEndianEngine())
	require.NoError(t, err)
	require.Equal(t, []byte{
		0, 0, 0, 3, 0, 0, 0, 4,
		0x01, 0x02, 0xFF, 0xFF, 0, 0, 0, 0,
	}, got)
}

func TestDataBuffer_AppendToKeepsPrefix(t *testing.T) {
	buf := mustBuffer(t, []uint8{7})
	got, err := buf.AppendTo([]byte{0xAB}, endian.GetLittleEndianEngine())
	require.NoError(t, err)
	require.Len(t, got, 1+buf.Size())
	require.Equal(t, byte(0xAB), got[0])
}

func TestNewDataBufferAs(t *testing.T) {
	buf, err := newDataBufferAs([]uint8("name"), format.TypeInt8)
	require.NoError(t, err)
	require.Equal(t, format.TypeInt8, buf.DataType())

	_, err = newDataBufferAs([]uint8("name"), format.TypeDouble)
	require.ErrorIs(t, err, errs.ErrInvalidDataType)
}

func mustBuffer[T encoding.Numeric](t *testing.T, values []T) *DataBuffer[T] {
	t.Helper()

	buf, err := NewDataBuffer(values)
	require.NoError(t, err)

	return buf
}
