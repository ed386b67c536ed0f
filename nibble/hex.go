package nibble

import (
	"github.com/clarcharr/nibble-go/internal/assert"
)

// ParseHexDigit converts a single hex digit ('0'-'9', 'a'-'f', 'A'-'F')
// into a Nibble. Any other byte returns a *ParseError.
func ParseHexDigit(c byte) (Nibble, error) {
	switch {
	case c >= '0' && c <= '9':
		return Nibble(c - '0'), nil
	case c >= 'a' && c <= 'f':
		return Nibble(c-'a') + 0xA, nil
	case c >= 'A' && c <= 'F':
		return Nibble(c-'A') + 0xA, nil
	default:
		return 0, &ParseError{Input: string(c), reason: ErrBadFormat}
	}
}

// HexDigit renders the nibble as a lower-case hex digit. It is the
// inverse of ParseHexDigit for the canonical lower-case alphabet.
func (n Nibble) HexDigit() byte {
	if n < 0xA {
		return '0' + byte(n)
	}
	return 'a' + byte(n) - 0xA
}

// UpperHexDigit renders the nibble as an upper-case hex digit.
func (n Nibble) UpperHexDigit() byte {
	if n < 0xA {
		return '0' + byte(n)
	}
	return 'A' + byte(n) - 0xA
}

// Binary renders the nibble as four binary digits, most significant first.
func (n Nibble) Binary() string {
	var b [4]byte
	for i := range b {
		b[i] = '0' + byte(n>>(3-i))&1
	}
	return string(b[:])
}

// Parse converts a string in the given radix into a Nibble. radix must
// be in [2, 36]; digits beyond 9 use the ASCII letters in either case.
// Returns a *ParseError whose reason is ErrEmpty for empty input,
// ErrBadFormat for a character outside the radix, or ErrTooLarge when
// the value exceeds 15.
func Parse(s string, radix int) (Nibble, error) {
	assert.True(radix >= 2 && radix <= 36, "radix %d out of range [2, 36]", radix)
	if len(s) == 0 {
		return 0, &ParseError{Input: s, reason: ErrEmpty}
	}
	var v uint
	for i := 0; i < len(s); i++ {
		d, ok := digit(s[i], radix)
		if !ok {
			return 0, &ParseError{Input: s, reason: ErrBadFormat}
		}
		v = v*uint(radix) + uint(d)
		if v > uint(MaxNibble) {
			return 0, &ParseError{Input: s, reason: ErrTooLarge}
		}
	}
	return Nibble(v), nil
}

func digit(c byte, radix int) (byte, bool) {
	var d byte
	switch {
	case c >= '0' && c <= '9':
		d = c - '0'
	case c >= 'a' && c <= 'z':
		d = c - 'a' + 10
	case c >= 'A' && c <= 'Z':
		d = c - 'A' + 10
	default:
		return 0, false
	}
	if int(d) >= radix {
		return 0, false
	}
	return d, true
}
