package encoding

import (
	"unicode/utf16"

	"golang.org/x/text/encoding/unicode"
)

// UTF16Units converts text to the UTF-16 code units stored in a MAT character
// array. Characters outside the Basic Multilingual Plane become surrogate
// pairs, so the result may be longer than the number of runes.
//
// Invalid UTF-8 sequences are replaced with U+FFFD.
func UTF16Units(text string) []uint16 {
	if text == "" {
		return []uint16{}
	}

	encoder := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder()
	raw, err := encoder.String(text)
	if err != nil {
		return utf16.Encode([]rune(text))
	}

	units := make([]uint16, len(raw)/2)
	for i := range units {
		units[i] = uint16(raw[2*i])<<8 | uint16(raw[2*i+1])
	}

	return units
}
