package nibble

import (
	"github.com/samber/mo"

	"github.com/clarcharr/nibble-go/internal/assert"
)

// Buffer is a growable sequence of nibbles packed two per byte. Even
// positions occupy the high half of their byte, so a Buffer built from
// a byte slice reads back in HighFirst order.
type Buffer struct {
	data []byte
	odd  bool // last byte holds only its high nibble
}

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// BufferFromBytes copies b into a Buffer of 2*len(b) nibbles.
func BufferFromBytes(b []byte) *Buffer {
	data := make([]byte, len(b))
	copy(data, b)
	return &Buffer{data: data}
}

// BufferFromHex parses one nibble per hex digit.
func BufferFromHex(s string) (*Buffer, error) {
	buf := NewBuffer()
	for i := 0; i < len(s); i++ {
		n, err := ParseHexDigit(s[i])
		if err != nil {
			return nil, err
		}
		buf.Push(n)
	}
	return buf, nil
}

// Len is the number of nibbles in the buffer.
func (b *Buffer) Len() int {
	l := len(b.data) * 2
	if b.odd {
		l--
	}
	return l
}

// Cap is the number of nibbles the buffer can hold without growing.
func (b *Buffer) Cap() int {
	return cap(b.data) * 2
}

// Push appends a nibble to the buffer.
func (b *Buffer) Push(n Nibble) {
	if b.odd {
		b.data[len(b.data)-1] |= n.Low()
		b.odd = false
		return
	}
	b.data = append(b.data, n.High())
	b.odd = true
}

// Pop removes and returns the last nibble, or None if the buffer is empty.
func (b *Buffer) Pop() mo.Option[Nibble] {
	if len(b.data) == 0 {
		return mo.None[Nibble]()
	}
	last := len(b.data) - 1
	if b.odd {
		n := FromHigh(b.data[last])
		b.data = b.data[:last]
		b.odd = false
		return mo.Some(n)
	}
	n := FromLow(b.data[last])
	b.data[last] &= 0xF0
	b.odd = true
	return mo.Some(n)
}

// Get returns the nibble at position i. Panics if i is out of range.
func (b *Buffer) Get(i int) Nibble {
	assert.True(i >= 0 && i < b.Len(), "nibble index %d out of range [0, %d)", i, b.Len())
	if i%2 == 0 {
		return FromHigh(b.data[i/2])
	}
	return FromLow(b.data[i/2])
}

// Set overwrites the nibble at position i. Panics if i is out of range.
func (b *Buffer) Set(i int, n Nibble) {
	assert.True(i >= 0 && i < b.Len(), "nibble index %d out of range [0, %d)", i, b.Len())
	if i%2 == 0 {
		b.data[i/2] = b.data[i/2]&0x0F | n.High()
	} else {
		b.data[i/2] = b.data[i/2]&0xF0 | n.Low()
	}
}

// Clear removes all nibbles, keeping the allocated capacity.
func (b *Buffer) Clear() {
	b.data = b.data[:0]
	b.odd = false
}

// Bytes returns a copy of the packed bytes and whether the last byte
// holds only its high nibble (odd nibble count). The low half of a
// trailing half-byte is always zero.
func (b *Buffer) Bytes() ([]byte, bool) {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out, b.odd
}

// Hex renders the buffer as one lower-case hex digit per nibble.
func (b *Buffer) Hex() string {
	out := make([]byte, 0, b.Len())
	for i := 0; i < b.Len(); i++ {
		out = append(out, b.Get(i).HexDigit())
	}
	return string(out)
}

// Iterator returns a cursor over the buffer's nibbles in position order.
// Mutating the buffer while a cursor is live is not supported.
func (b *Buffer) Iterator() *BufferIterator {
	return &BufferIterator{buf: b}
}

// BufferIterator iterates through the nibbles stored in a Buffer.
type BufferIterator struct {
	buf   *Buffer
	index int
}

// Next returns the next nibble, or false once the buffer is exhausted.
func (it *BufferIterator) Next() (Nibble, bool) {
	if it.index >= it.buf.Len() {
		return 0, false
	}
	n := it.buf.Get(it.index)
	it.index++
	return n, true
}
