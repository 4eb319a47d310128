// Package segment provides the segment-pattern data format used by the MAX7219 driver.
//
// In no-decode mode the MAX7219 lights a digit from a raw bitmask where each
// bit drives one LED segment:
//
//	Bit:     7   6   5   4   3   2   1   0
//	Segment: DP  A   B   C   D   E   F   G
//
//	  AAA
//	 F   B
//	  GGG
//	 E   C
//	  DDD   DP
//
// This package provides:
//
// - PackBits: packs 8 ordered booleans into a byte (element 0 = bit 0)
// - Lookup: maps a displayable character to its segment bitmask
// - DP: the decimal-point bit, OR'd onto a digit's bitmask to light the dot
//
// Example usage:
//
//	// Segment pattern for '3' with the decimal point lit.
//	b := segment.Lookup('3') | segment.DP
//
//	// Same pattern built segment by segment (order [G F E D C B A DP]).
//	b, err := segment.PackBits([]bool{true, false, false, true, true, true, true, true})
package segment
