package nibble

// Pair is a byte split into its two component nibbles. It round-trips
// exactly to the byte it came from.
type Pair struct {
	High Nibble
	Low  Nibble
}

// Split decomposes b into its high and low nibbles. Masking guarantees
// both halves are valid, so Split never fails.
func Split(b byte) Pair {
	return Pair{High: FromHigh(b), Low: FromLow(b)}
}

// Combine packs two nibbles back into a byte, high nibble in bits 4-7.
// Combine(Split(b).High, Split(b).Low) == b for every byte b.
func Combine(high, low Nibble) byte {
	return high.High() | low.Low()
}

// Byte returns the pair packed into a single byte.
func (p Pair) Byte() byte {
	return Combine(p.High, p.Low)
}

// Swapped returns the pair with its nibbles exchanged.
func (p Pair) Swapped() Pair {
	return Pair{High: p.Low, Low: p.High}
}

// WithHigh returns a copy of the pair with its high nibble replaced.
func (p Pair) WithHigh(n Nibble) Pair {
	return Pair{High: n, Low: p.Low}
}

// WithLow returns a copy of the pair with its low nibble replaced.
func (p Pair) WithLow(n Nibble) Pair {
	return Pair{High: p.High, Low: n}
}

// HexDigits renders the pair as two lower-case hex digits, high first.
func (p Pair) HexDigits() (hi, lo byte) {
	return p.High.HexDigit(), p.Low.HexDigit()
}

// String renders the pair the way the byte it packs into reads in hex.
func (p Pair) String() string {
	hi, lo := p.HexDigits()
	return "0x" + string([]byte{hi, lo})
}

// ParseHexPair builds a pair from two hex digits, high digit first.
func ParseHexPair(hi, lo byte) (Pair, error) {
	h, err := ParseHexDigit(hi)
	if err != nil {
		return Pair{}, err
	}
	l, err := ParseHexDigit(lo)
	if err != nil {
		return Pair{}, err
	}
	return Pair{High: h, Low: l}, nil
}
