package nibble

import (
	"github.com/samber/mo"
)

// WrappingAdd returns n+o reduced modulo 16.
func (n Nibble) WrappingAdd(o Nibble) Nibble {
	return (n + o) & MaxNibble
}

// WrappingSub returns n-o reduced modulo 16.
func (n Nibble) WrappingSub(o Nibble) Nibble {
	return (n - o) & MaxNibble
}

// WrappingMul returns n*o reduced modulo 16.
func (n Nibble) WrappingMul(o Nibble) Nibble {
	return (n * o) & MaxNibble
}

// CheckedAdd returns n+o, or None if the sum does not fit in a nibble.
func (n Nibble) CheckedAdd(o Nibble) mo.Option[Nibble] {
	sum := n + o
	if sum > MaxNibble {
		return mo.None[Nibble]()
	}
	return mo.Some(sum)
}

// CheckedSub returns n-o, or None if o is greater than n.
func (n Nibble) CheckedSub(o Nibble) mo.Option[Nibble] {
	if o > n {
		return mo.None[Nibble]()
	}
	return mo.Some(n - o)
}

// CheckedMul returns n*o, or None if the product does not fit in a nibble.
func (n Nibble) CheckedMul(o Nibble) mo.Option[Nibble] {
	product := n * o // at most 225, no byte overflow
	if product > MaxNibble {
		return mo.None[Nibble]()
	}
	return mo.Some(product)
}

// CheckedDiv returns n/o, or None if o is zero.
func (n Nibble) CheckedDiv(o Nibble) mo.Option[Nibble] {
	if o == 0 {
		return mo.None[Nibble]()
	}
	return mo.Some(n / o)
}

// SaturatingAdd returns n+o clamped to MaxNibble.
func (n Nibble) SaturatingAdd(o Nibble) Nibble {
	return n.CheckedAdd(o).OrElse(MaxNibble)
}

// SaturatingSub returns n-o clamped to MinNibble.
func (n Nibble) SaturatingSub(o Nibble) Nibble {
	return n.CheckedSub(o).OrElse(MinNibble)
}

// Bitwise operations are closed over [0, 15] and never fail.

func (n Nibble) And(o Nibble) Nibble {
	return n & o
}

func (n Nibble) Or(o Nibble) Nibble {
	return n | o
}

func (n Nibble) Xor(o Nibble) Nibble {
	return n ^ o
}

// Not complements the nibble's four bits.
func (n Nibble) Not() Nibble {
	return ^n & MaxNibble
}
