// Package endian provides the byte order used to lay out a MAT-file.
//
// A MAT-file is written entirely in one byte order. Readers discover it from
// the two-byte endian indicator at the end of the 128-byte header: the
// characters 'M' and 'I' packed into a uint16 and written in the file's own
// order, so a little-endian file carries "IM" and a big-endian file "MI".
//
// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder so the
// element encoders can append directly into pooled buffers:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint32(buf, uint32(format.TypeDouble))
//
// All functions in this package are safe for concurrent use.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// Indicator is the endian marker value: 'M' in the high byte, 'I' in the low byte.
const Indicator uint16 = 'M'<<8 | 'I'

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 stores 0x01 first only on big-endian hosts.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetNativeEngine returns the engine matching the host byte order, which is
// what MATLAB itself uses when saving.
func GetNativeEngine() EndianEngine {
	if IsNativeBigEndian() {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IndicatorBytes returns the two header bytes that announce engine's byte order.
func IndicatorBytes(engine EndianEngine) [2]byte {
	var b [2]byte
	engine.PutUint16(b[:], Indicator)

	return b
}

// DetectEngine returns the engine announced by a two-byte endian indicator,
// and false when the bytes are neither "IM" nor "MI".
func DetectEngine(indicator []byte) (EndianEngine, bool) {
	if len(indicator) != 2 {
		return nil, false
	}

	switch {
	case indicator[0] == 'I' && indicator[1] == 'M':
		return binary.LittleEndian, true
	case indicator[0] == 'M' && indicator[1] == 'I':
		return binary.BigEndian, true
	default:
		return nil, false
	}
}
