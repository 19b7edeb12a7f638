// Package element builds the data elements that make up the body of a
// Level 5 MAT-file.
//
// Every element is framed the same way: an 8-byte tag (data type, payload
// byte count), the payload, and zero padding up to the next multiple of 8.
// The package provides three kinds of elements:
//
//   - DataBuffer[T]: a typed run of numeric values (miINT8 ... miDOUBLE).
//   - Matrix: a named array (miMATRIX) holding array flags, dimensions, name
//     and data sub-elements, in that order.
//   - Compressed: a miCOMPRESSED element whose payload is the zlib stream of
//     other elements serialized back to back.
//
// Arrays are described by the unnamed Array value and become a Matrix only
// once a name is bound to them:
//
//	arr, err := element.NewNumericArray([]float64{1, 3, 2, 4}, 2, 2)
//	m, err := element.NewMatrix("A", arr)
//	buf, err := m.AppendTo(nil, endian.GetLittleEndianEngine())
//
// Every Element reports its exact encoded size without encoding it, except
// Compressed, which must compress its members once to learn its size and then
// caches the result.
package element
