// Package section implements the fixed-layout pieces of a Level 5 MAT-file:
// the 128-byte file header and the 8-byte tag that starts every data element.
//
// # File Layout
//
//	┌────────────────────────────────────────────────────────────┐
//	│ Header (128 bytes)                                         │
//	│   0..115   descriptive text, space padded                  │
//	│ 116..123   subsystem data offset (zero)                    │
//	│ 124..125   version 0x0100                                  │
//	│ 126..127   endian indicator ("IM" little, "MI" big)        │
//	├────────────────────────────────────────────────────────────┤
//	│ Element                                                    │
//	│   Tag (8 bytes): data type u32, byte count u32             │
//	│   Payload (byte count bytes)                               │
//	│   Zero padding to the next 8-byte boundary                 │
//	├────────────────────────────────────────────────────────────┤
//	│ Element ...                                                │
//	└────────────────────────────────────────────────────────────┘
//
// All multi-byte values, including the header version and tag fields, use
// the byte order announced by the endian indicator.
package section
