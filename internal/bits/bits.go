// Package bits provides small, total bit-manipulation primitives shared by
// the register file and addressing-mode layers. Every function here is pure
// and inlineable; none of them validate their bit position argument — an
// out-of-range position is a programming error, not a runtime condition.
package bits

import "golang.org/x/exp/constraints"

// SetBit returns value with the bit at pos set.
func SetBit[T constraints.Unsigned](value T, pos uint8) T {
	return value | (1 << pos)
}

// ClearBit returns value with the bit at pos cleared.
func ClearBit[T constraints.Unsigned](value T, pos uint8) T {
	return value &^ (1 << pos)
}

// IsBitSet reports whether the bit at pos is set in value.
func IsBitSet[T constraints.Unsigned](value T, pos uint8) bool {
	return value&(1<<pos) != 0
}

// ToggleBit returns value with the bit at pos flipped.
func ToggleBit[T constraints.Unsigned](value T, pos uint8) T {
	return value ^ (1 << pos)
}

// ConditionalBitToggle returns value with the bit at pos set if cond is
// true, or cleared if cond is false.
func ConditionalBitToggle[T constraints.Unsigned](value T, pos uint8, cond bool) T {
	if cond {
		return SetBit(value, pos)
	}
	return ClearBit(value, pos)
}

// FromPair concatenates high and low into a 16-bit value with high
// occupying the upper byte, matching the SM83's big-endian register-pair
// convention (AF, BC, DE, HL all store their first-named register high).
func FromPair(high, low uint8) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// FromHigh projects the high (most significant) byte out of a 16-bit value.
func FromHigh(w uint16) uint8 {
	return uint8(w >> 8)
}

// FromLow projects the low (least significant) byte out of a 16-bit value.
func FromLow(w uint16) uint8 {
	return uint8(w)
}
