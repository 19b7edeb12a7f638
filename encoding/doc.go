// Package encoding turns Go values into the raw bytes carried by MAT-file
// data elements.
//
// AppendRaw writes numeric slices in a chosen byte order, one fixed-width
// record per value:
//
//	buf = encoding.AppendRaw(buf, endian.GetLittleEndianEngine(), []float64{1, 2, 3})
//
// UTF16Units converts Go strings to the UTF-16 code units that character
// arrays store.
//
// The functions here are pure: they never pad, frame or tag their output.
// Framing is the job of the element package.
package encoding
