package nibble_test

import (
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"

	"github.com/clarcharr/nibble-go/nibble"
)

func TestWrapping(t *testing.T) {
	assert.Equal(t, nibble.Nibble(0), nibble.Nibble(15).WrappingAdd(1))
	assert.Equal(t, nibble.Nibble(4), nibble.Nibble(12).WrappingAdd(8))
	assert.Equal(t, nibble.Nibble(15), nibble.Nibble(0).WrappingSub(1))
	assert.Equal(t, nibble.Nibble(14), nibble.Nibble(3).WrappingMul(10))

	// wrapping results always stay in range
	for a := nibble.MinNibble; a <= nibble.MaxNibble; a++ {
		for b := nibble.MinNibble; b <= nibble.MaxNibble; b++ {
			assert.LessOrEqual(t, a.WrappingAdd(b), nibble.MaxNibble)
			assert.LessOrEqual(t, a.WrappingSub(b), nibble.MaxNibble)
			assert.LessOrEqual(t, a.WrappingMul(b), nibble.MaxNibble)
		}
	}
}

func TestChecked(t *testing.T) {
	assert.Equal(t, mo.Some(nibble.Nibble(15)), nibble.Nibble(8).CheckedAdd(7))
	assert.Equal(t, mo.None[nibble.Nibble](), nibble.Nibble(8).CheckedAdd(8))

	assert.Equal(t, mo.Some(nibble.Nibble(2)), nibble.Nibble(5).CheckedSub(3))
	assert.Equal(t, mo.None[nibble.Nibble](), nibble.Nibble(3).CheckedSub(5))

	assert.Equal(t, mo.Some(nibble.Nibble(12)), nibble.Nibble(3).CheckedMul(4))
	assert.Equal(t, mo.None[nibble.Nibble](), nibble.Nibble(4).CheckedMul(4))

	assert.Equal(t, mo.Some(nibble.Nibble(5)), nibble.Nibble(15).CheckedDiv(3))
	assert.Equal(t, mo.None[nibble.Nibble](), nibble.Nibble(1).CheckedDiv(0))
}

func TestSaturating(t *testing.T) {
	assert.Equal(t, nibble.MaxNibble, nibble.Nibble(12).SaturatingAdd(8))
	assert.Equal(t, nibble.Nibble(14), nibble.Nibble(12).SaturatingAdd(2))
	assert.Equal(t, nibble.MinNibble, nibble.Nibble(3).SaturatingSub(5))
	assert.Equal(t, nibble.Nibble(2), nibble.Nibble(5).SaturatingSub(3))
}

func TestBitwise(t *testing.T) {
	a, b := nibble.Nibble(0b1100), nibble.Nibble(0b1010)
	assert.Equal(t, nibble.Nibble(0b1000), a.And(b))
	assert.Equal(t, nibble.Nibble(0b1110), a.Or(b))
	assert.Equal(t, nibble.Nibble(0b0110), a.Xor(b))
	assert.Equal(t, nibble.Nibble(0b0011), a.Not())
	assert.Equal(t, nibble.MaxNibble, nibble.MinNibble.Not())
}
