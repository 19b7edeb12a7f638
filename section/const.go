package section

import "math"

// offsets and sizes in the file header
const (
	HeaderSize            = 128 // fixed header size in bytes
	HeaderTextSize        = 116 // descriptive text field, bytes 0..115
	SubsystemOffsetOffset = 116 // subsystem data offset, bytes 116..123
	VersionOffset         = 124 // version, bytes 124..125
	EndianIndicatorOffset = 126 // endian indicator, bytes 126..127

	// HeaderVersion is the only MAT-file version defined for Level 5 files.
	HeaderVersion uint16 = 0x0100
)

// element tag layout
const (
	TagSize        = 8              // data type (4 bytes) + byte count (4 bytes)
	Alignment      = 8              // payloads are padded to a multiple of this
	MaxPayloadSize = math.MaxUint32 // largest byte count a tag can carry
)
