package element

import (
	"encoding/binary"
	"math"
)

// le builds little-endian test fixtures word by word.
type le []byte

func (b le) u32(vs ...uint32) le {
	for _, v := range vs {
		b = binary.LittleEndian.AppendUint32(b, v)
	}

	return b
}

func (b le) u16(vs ...uint16) le {
	for _, v := range vs {
		b = binary.LittleEndian.AppendUint16(b, v)
	}

	return b
}

func (b le) f64(vs ...float64) le {
	for _, v := range vs {
		b = binary.LittleEndian.AppendUint64(b, math.Float64bits(v))
	}

	return b
}

func (b le) raw(data ...byte) le {
	return append(b, data...)
}

func (b le) zeros(n int) le {
	return append(b, make([]byte, n)...)
}
