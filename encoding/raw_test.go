package encoding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/matfile/endian"
	"github.com/arloliu/matfile/format"
)

func TestTypeOf(t *testing.T) {
	require.Equal(t, format.TypeInt8, TypeOf[int8]())
	require.Equal(t, format.TypeUint8, TypeOf[uint8]())
	require.Equal(t, format.TypeInt16, TypeOf[int16]())
	require.Equal(t, format.TypeUint16, TypeOf[uint16]())
	require.Equal(t, format.TypeInt32, TypeOf[int32]())
	require.Equal(t, format.TypeUint32, TypeOf[uint32]())
	require.Equal(t, format.TypeInt64, TypeOf[int64]())
	require.Equal(t, format.TypeUint64, TypeOf[uint64]())
	require.Equal(t, format.TypeSingle, TypeOf[float32]())
	require.Equal(t, format.TypeDouble, TypeOf[float64]())
}

func TestAppendRaw_LittleEndian(t *testing.T) {
	le := endian.GetLittleEndianEngine()

	require.Equal(t, []byte{0xff, 0x01}, AppendRaw(nil, le, []int8{-1, 1}))
	require.Equal(t, []byte{0x01, 0x02}, AppendRaw(nil, le, []uint8{1, 2}))
	require.Equal(t, []byte{0xfe, 0xff}, AppendRaw(nil, le, []int16{-2}))
	require.Equal(t, []byte{0x48, 0x00, 0x69, 0x00}, AppendRaw(nil, le, []uint16{'H', 'i'}))
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, AppendRaw(nil, le, []int32{0x01020304}))
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, AppendRaw(nil, le, []uint32{0x01020304}))
	require.Equal(t, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, AppendRaw(nil, le, []int64{-1}))
	require.Equal(t, []byte{8, 7, 6, 5, 4, 3, 2, 1}, AppendRaw(nil, le, []uint64{0x0102030405060708}))
	require.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f}, AppendRaw(nil, le, []float32{1}))
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0xf0, 0x3f}, AppendRaw(nil, le, []float64{1}))
}

func TestAppendRaw_BigEndian(t *testing.T) {
	be := endian.GetBigEndianEngine()

	require.Equal(t, []byte{0x00, 0x48, 0x00, 0x69}, AppendRaw(nil, be, []uint16{'H', 'i'}))
	require.Equal(t, []byte{0x3f, 0xf0, 0, 0, 0, 0, 0, 0}, AppendRaw(nil, be, []float64{1}))
	require.Equal(t, []byte{0x3f, 0x80, 0x00, 0x00}, AppendRaw(nil, be, []float32{1}))
}

func TestAppendRaw_AppendsToExisting(t *testing.T) {
	le := endian.GetLittleEndianEngine()

	dst := []byte{0xaa}
	dst = AppendRaw(dst, le, []uint16{1})
	require.Equal(t, []byte{0xaa, 0x01, 0x00}, dst)

	dst = AppendRaw(dst, le, []float64{})
	require.Len(t, dst, 3)
}

func TestAppendRaw_FloatSpecials(t *testing.T) {
	le := endian.GetLittleEndianEngine()
	values := []float64{math.Inf(1), math.Inf(-1), 0, math.Copysign(0, -1)}

	out := AppendRaw(nil, le, values)
	require.Len(t, out, len(values)*8)

	for i, v := range values {
		require.Equal(t, math.Float64bits(v), le.Uint64(out[i*8:]))
	}

	nan := AppendRaw(nil, le, []float64{math.NaN()})
	require.True(t, math.IsNaN(math.Float64frombits(le.Uint64(nan))))
}

func TestAppendRaw_SizeMatchesWidth(t *testing.T) {
	le := endian.GetLittleEndianEngine()

	require.Len(t, AppendRaw(nil, le, make([]int8, 5)), 5*TypeOf[int8]().Width())
	require.Len(t, AppendRaw(nil, le, make([]int16, 5)), 5*TypeOf[int16]().Width())
	require.Len(t, AppendRaw(nil, le, make([]uint32, 5)), 5*TypeOf[uint32]().Width())
	require.Len(t, AppendRaw(nil, le, make([]float32, 5)), 5*TypeOf[float32]().Width())
	require.Len(t, AppendRaw(nil, le, make([]int64, 5)), 5*TypeOf[int64]().Width())
}
