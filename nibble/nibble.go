// Package nibble provides a typed 4-bit unsigned integer along with the
// operations needed to pull nibbles out of byte-oriented data and to
// reassemble bytes from pairs of nibbles.
//
// Arithmetic is only available in explicitly named forms: Wrapping
// methods reduce modulo 16, Checked methods return mo.Option and
// Saturating methods clamp to the nibble bounds. There is no unchecked
// machine-width arithmetic on a Nibble.
package nibble

import (
	"math/bits"
	"strconv"
)

// Nibble is an unsigned integer in [0, 15]. Every construction path
// either validates or masks its input, so a Nibble never holds a value
// outside that range.
type Nibble uint8

const (
	MinNibble Nibble = 0x0
	MaxNibble Nibble = 0xF
)

// Integer matches any built-in integer type wide enough to hold a nibble.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// New returns v as a Nibble, or a *RangeError if v is outside [0, 15].
func New[T Integer](v T) (Nibble, error) {
	if v < 0 || uint64(v) > uint64(MaxNibble) {
		return 0, &RangeError{Value: int64(v)}
	}
	return Nibble(v), nil
}

// Masked returns the low 4 bits of v, discarding the rest. Unlike New
// it always succeeds; use it only where truncation is intended.
func Masked[T Integer](v T) Nibble {
	return Nibble(v) & MaxNibble
}

// FromHigh constructs a Nibble from the high-order bits of b.
func FromHigh(b byte) Nibble {
	return Nibble(b >> 4)
}

// FromLow constructs a Nibble from the low-order bits of b.
func FromLow(b byte) Nibble {
	return Nibble(b & 0x0F)
}

// To converts n into any integer width. Widening never loses information.
func To[T Integer](n Nibble) T {
	return T(n)
}

// Uint8 returns the nibble value in the low bits of a byte.
func (n Nibble) Uint8() uint8 {
	return uint8(n)
}

// High returns a byte with the nibble in its high-order bits and zero
// low-order bits.
func (n Nibble) High() byte {
	return byte(n) << 4
}

// Low returns a byte with the nibble in its low-order bits and zero
// high-order bits.
func (n Nibble) Low() byte {
	return byte(n)
}

// String renders the nibble in decimal.
func (n Nibble) String() string {
	return strconv.Itoa(int(n))
}

func (n Nibble) OnesCount() int {
	return bits.OnesCount8(uint8(n))
}

func (n Nibble) LeadingZeros() int {
	return bits.LeadingZeros8(uint8(n)) - 4
}

func (n Nibble) TrailingZeros() int {
	return min(bits.TrailingZeros8(uint8(n)), 4)
}
