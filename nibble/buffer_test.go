package nibble_test

import (
	"testing"

	"github.com/samber/mo"
	assert2 "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clarcharr/nibble-go/internal/assert"
	"github.com/clarcharr/nibble-go/nibble"
)

func TestBufferPushPop(t *testing.T) {
	buf := nibble.NewBuffer()
	assert2.Equal(t, 0, buf.Len())
	assert2.Equal(t, mo.None[nibble.Nibble](), buf.Pop())

	buf.Push(0x4)
	buf.Push(0xB)
	buf.Push(0xF)
	assert2.Equal(t, 3, buf.Len())

	assert2.Equal(t, mo.Some(nibble.Nibble(0xF)), buf.Pop())
	assert2.Equal(t, mo.Some(nibble.Nibble(0xB)), buf.Pop())
	assert2.Equal(t, mo.Some(nibble.Nibble(0x4)), buf.Pop())
	assert2.Equal(t, mo.None[nibble.Nibble](), buf.Pop())
	assert2.Equal(t, 0, buf.Len())
}

func TestBufferPacking(t *testing.T) {
	buf := nibble.NewBuffer()
	buf.Push(0x4)
	buf.Push(0xB)
	buf.Push(0xF)

	// odd length leaves the trailing low half zero
	packed, odd := buf.Bytes()
	assert2.Equal(t, []byte{0x4B, 0xF0}, packed)
	assert2.True(t, odd)

	buf.Push(0x0)
	packed, odd = buf.Bytes()
	assert2.Equal(t, []byte{0x4B, 0xF0}, packed)
	assert2.False(t, odd)
}

func TestBufferFromBytes(t *testing.T) {
	src := []byte{0x4B, 0xF0}
	buf := nibble.BufferFromBytes(src)

	assert2.Equal(t, 4, buf.Len())
	assert2.Equal(t, nibble.Nibble(0x4), buf.Get(0))
	assert2.Equal(t, nibble.Nibble(0xB), buf.Get(1))
	assert2.Equal(t, nibble.Nibble(0xF), buf.Get(2))
	assert2.Equal(t, nibble.Nibble(0x0), buf.Get(3))

	// the buffer owns a copy, mutating it leaves src alone
	buf.Set(0, 0xF)
	assert2.Equal(t, []byte{0x4B, 0xF0}, src)
}

func TestBufferFromHex(t *testing.T) {
	buf, err := nibble.BufferFromHex("4bF")
	require.NoError(t, err)
	assert2.Equal(t, 3, buf.Len())
	assert2.Equal(t, "4bf", buf.Hex())

	_, err = nibble.BufferFromHex("4g")
	assert2.ErrorIs(t, err, nibble.ErrBadFormat)

	empty, err := nibble.BufferFromHex("")
	require.NoError(t, err)
	assert2.Equal(t, 0, empty.Len())
}

func TestBufferGetSet(t *testing.T) {
	buf := nibble.BufferFromBytes([]byte{0x12, 0x34})

	buf.Set(1, 0xF)
	buf.Set(2, 0x0)
	assert2.Equal(t, "1f04", buf.Hex())

	packed, odd := buf.Bytes()
	assert2.Equal(t, []byte{0x1F, 0x04}, packed)
	assert2.False(t, odd)
}

func TestBufferIndexPanics(t *testing.T) {
	buf := nibble.BufferFromBytes([]byte{0x12})
	assert2.Panics(t, func() { buf.Get(2) })
	assert2.Panics(t, func() { buf.Get(-1) })
	assert2.Panics(t, func() { buf.Set(2, 0) })
}

func TestBufferClear(t *testing.T) {
	buf, err := nibble.BufferFromHex("4bf")
	require.NoError(t, err)

	buf.Clear()
	assert2.Equal(t, 0, buf.Len())

	buf.Push(0x7)
	assert2.Equal(t, "7", buf.Hex())
}

func TestBufferIterator(t *testing.T) {
	buf, err := nibble.BufferFromHex("4bf")
	require.NoError(t, err)

	it := buf.Iterator()
	assert.Next(t, it.Next, nibble.Nibble(0x4))
	assert.Next(t, it.Next, nibble.Nibble(0xB))
	assert.Next(t, it.Next, nibble.Nibble(0xF))
	assert.Exhausted(t, it.Next)
}

func TestBufferHexRoundTrip(t *testing.T) {
	const s = "0123456789abcdef"
	buf, err := nibble.BufferFromHex(s)
	require.NoError(t, err)
	assert2.Equal(t, s, buf.Hex())
}
