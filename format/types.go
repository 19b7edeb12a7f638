package format

type (
	// DataType is the 4-byte type code carried in every element tag (mi*).
	DataType uint32
	// ArrayClass identifies the kind of array held by a miMATRIX element (mx*).
	ArrayClass uint8
	// ArrayFlags is the flag byte stored next to the class in the array-flags sub-element.
	ArrayFlags uint8
	// CompressionType selects the codec wrapped around the written file.
	CompressionType uint8
)

const (
	TypeInt8       DataType = 1  // TypeInt8 is miINT8.
	TypeUint8      DataType = 2  // TypeUint8 is miUINT8.
	TypeInt16      DataType = 3  // TypeInt16 is miINT16.
	TypeUint16     DataType = 4  // TypeUint16 is miUINT16.
	TypeInt32      DataType = 5  // TypeInt32 is miINT32.
	TypeUint32     DataType = 6  // TypeUint32 is miUINT32.
	TypeSingle     DataType = 7  // TypeSingle is miSINGLE (IEEE 754 float32).
	TypeDouble     DataType = 9  // TypeDouble is miDOUBLE (IEEE 754 float64).
	TypeInt64      DataType = 12 // TypeInt64 is miINT64.
	TypeUint64     DataType = 13 // TypeUint64 is miUINT64.
	TypeMatrix     DataType = 14 // TypeMatrix is miMATRIX, a named array.
	TypeCompressed DataType = 15 // TypeCompressed is miCOMPRESSED, a zlib stream of elements.
	TypeUTF8       DataType = 16 // TypeUTF8 is miUTF8.
	TypeUTF16      DataType = 17 // TypeUTF16 is miUTF16.
	TypeUTF32      DataType = 18 // TypeUTF32 is miUTF32.
)

const (
	ClassCell   ArrayClass = 1  // ClassCell is mxCELL_CLASS.
	ClassStruct ArrayClass = 2  // ClassStruct is mxSTRUCT_CLASS.
	ClassObject ArrayClass = 3  // ClassObject is mxOBJECT_CLASS.
	ClassChar   ArrayClass = 4  // ClassChar is mxCHAR_CLASS.
	ClassSparse ArrayClass = 5  // ClassSparse is mxSPARSE_CLASS.
	ClassDouble ArrayClass = 6  // ClassDouble is mxDOUBLE_CLASS.
	ClassSingle ArrayClass = 7  // ClassSingle is mxSINGLE_CLASS.
	ClassInt8   ArrayClass = 8  // ClassInt8 is mxINT8_CLASS.
	ClassUint8  ArrayClass = 9  // ClassUint8 is mxUINT8_CLASS.
	ClassInt16  ArrayClass = 10 // ClassInt16 is mxINT16_CLASS.
	ClassUint16 ArrayClass = 11 // ClassUint16 is mxUINT16_CLASS.
	ClassInt32  ArrayClass = 12 // ClassInt32 is mxINT32_CLASS.
	ClassUint32 ArrayClass = 13 // ClassUint32 is mxUINT32_CLASS.
	ClassInt64  ArrayClass = 14 // ClassInt64 is mxINT64_CLASS.
	ClassUint64 ArrayClass = 15 // ClassUint64 is mxUINT64_CLASS.
)

const (
	FlagLogical ArrayFlags = 0x02
	FlagGlobal  ArrayFlags = 0x04
	FlagComplex ArrayFlags = 0x08
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone writes the MAT bytes as-is.
	CompressionGzip CompressionType = 0x2 // CompressionGzip wraps the file in a gzip stream.
	CompressionZstd CompressionType = 0x3 // CompressionZstd wraps the file in a Zstandard stream.
	CompressionS2   CompressionType = 0x4 // CompressionS2 wraps the file in an S2 stream.
	CompressionLZ4  CompressionType = 0x5 // CompressionLZ4 wraps the file in an LZ4 frame.
	CompressionZlib CompressionType = 0x6 // CompressionZlib is the codec of miCOMPRESSED payloads.
)

// Width returns the byte width of one value of a numeric or character data type,
// or 0 for the composite types (miMATRIX, miCOMPRESSED) and miUTF8.
func (t DataType) Width() int {
	switch t {
	case TypeInt8, TypeUint8, TypeUTF8:
		return 1
	case TypeInt16, TypeUint16, TypeUTF16:
		return 2
	case TypeInt32, TypeUint32, TypeSingle, TypeUTF32:
		return 4
	case TypeInt64, TypeUint64, TypeDouble:
		return 8
	default:
		return 0
	}
}

func (t DataType) String() string {
	switch t {
	case TypeInt8:
		return "miINT8"
	case TypeUint8:
		return "miUINT8"
	case TypeInt16:
		return "miINT16"
	case TypeUint16:
		return "miUINT16"
	case TypeInt32:
		return "miINT32"
	case TypeUint32:
		return "miUINT32"
	case TypeSingle:
		return "miSINGLE"
	case TypeDouble:
		return "miDOUBLE"
	case TypeInt64:
		return "miINT64"
	case TypeUint64:
		return "miUINT64"
	case TypeMatrix:
		return "miMATRIX"
	case TypeCompressed:
		return "miCOMPRESSED"
	case TypeUTF8:
		return "miUTF8"
	case TypeUTF16:
		return "miUTF16"
	case TypeUTF32:
		return "miUTF32"
	default:
		return "Unknown"
	}
}

func (c ArrayClass) String() string {
	switch c {
	case ClassCell:
		return "mxCELL"
	case ClassStruct:
		return "mxSTRUCT"
	case ClassObject:
		return "mxOBJECT"
	case ClassChar:
		return "mxCHAR"
	case ClassSparse:
		return "mxSPARSE"
	case ClassDouble:
		return "mxDOUBLE"
	case ClassSingle:
		return "mxSINGLE"
	case ClassInt8:
		return "mxINT8"
	case ClassUint8:
		return "mxUINT8"
	case ClassInt16:
		return "mxINT16"
	case ClassUint16:
		return "mxUINT16"
	case ClassInt32:
		return "mxINT32"
	case ClassUint32:
		return "mxUINT32"
	case ClassInt64:
		return "mxINT64"
	case ClassUint64:
		return "mxUINT64"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionGzip:
		return "Gzip"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionZlib:
		return "Zlib"
	default:
		return "Unknown"
	}
}

// Extension returns the conventional file suffix for a transport compression,
// e.g. ".gz"; it is empty for CompressionNone and CompressionZlib.
func (c CompressionType) Extension() string {
	switch c {
	case CompressionGzip:
		return ".gz"
	case CompressionZstd:
		return ".zst"
	case CompressionS2:
		return ".s2"
	case CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}
