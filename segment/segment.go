// Package segment maps displayable characters to MAX7219 segment bitmasks and
// packs per-segment booleans into the wire byte format.
//
// Bit layout of a no-decode digit byte: DP A B C D E F G (DP = bit 7, G = bit 0).
package segment

import "fmt"

// DP is the decimal-point bit. OR it onto a digit's bitmask to light the dot
// next to that digit.
const DP byte = 0x80

// Blank is the all-off pattern. Lookup returns it for any character that has
// no entry in the font.
const Blank byte = 0x00

// font maps displayable characters to segment bitmasks. Characters with no
// natural 7-segment shape are omitted; Lookup blanks them.
//
// '!' and '.' are the two entries that carry DP inside their table value: '.'
// is nothing but the dot, and '!' needs the dot for its point. Every other
// character leaves DP to the caller.
var font = map[rune]byte{
	' ': 0x00,
	'0': 0x7E,
	'1': 0x30,
	'2': 0x6D,
	'3': 0x79,
	'4': 0x33,
	'5': 0x5B,
	'6': 0x5F,
	'7': 0x70,
	'8': 0x7F,
	'9': 0x7B,
	'A': 0x77,
	'B': 0x1F,
	'C': 0x4E,
	'D': 0x3D,
	'E': 0x4F,
	'F': 0x47,
	'G': 0x5E,
	'H': 0x37,
	'I': 0x30,
	'J': 0x38,
	'L': 0x0E,
	'N': 0x76,
	'O': 0x7E,
	'P': 0x67,
	'S': 0x5B,
	'U': 0x3E,
	'Y': 0x3B,
	'a': 0x7D,
	'b': 0x1F,
	'c': 0x0D,
	'd': 0x3D,
	'e': 0x6F,
	'f': 0x47,
	'h': 0x17,
	'i': 0x10,
	'l': 0x06,
	'n': 0x15,
	'o': 0x1D,
	'p': 0x67,
	'q': 0x73,
	'r': 0x05,
	't': 0x0F,
	'u': 0x1C,
	'y': 0x3B,

	'-':  0x01,
	'_':  0x08,
	'(':  0x4E,
	'[':  0x4E,
	')':  0x78,
	']':  0x78,
	'°':  0x63,
	'\'': 0x02,
	'!':  0xB0, // BC + DP
	'.':  0x80, // DP only
}

// Lookup returns the segment bitmask for r. Characters not in the font map to
// Blank; Lookup never fails, so callers need no special case for unknown
// input.
func Lookup(r rune) byte {
	return font[r]
}

// PackBits packs 8 ordered booleans into a byte. Element 0 occupies bit 0
// (segment G), element 7 occupies bit 7 (DP). It returns an error for any
// other input length; there is no short-form encoding.
func PackBits(bits []bool) (byte, error) {
	if len(bits) != 8 {
		return 0, fmt.Errorf("segment: need exactly 8 bits, got %d", len(bits))
	}
	var b byte
	for i, set := range bits {
		if set {
			b |= 1 << uint(i)
		}
	}
	return b, nil
}
