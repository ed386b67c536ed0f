package nibble

import (
	"github.com/kapetan-io/tackle/set"
)

// Order selects which half of each source byte an Iterator yields first.
// The zero value is treated as unset and defaults to HighFirst.
type Order int8

const (
	// HighFirst yields the high-order nibble of each byte before the
	// low-order nibble, matching the order hex notation reads in.
	HighFirst Order = iota + 1
	// LowFirst yields the low-order nibble of each byte first.
	LowFirst
)

// String converts Order to string
func (o Order) String() string {
	switch o {
	case HighFirst:
		return "HighFirst"
	case LowFirst:
		return "LowFirst"
	default:
		return "Unknown"
	}
}

// Config modifies how an Iterator walks its source.
type Config struct {
	// Order of the two nibbles within each source byte.
	// Defaults to HighFirst.
	Order Order
}

// Iterator walks a byte slice one nibble at a time, yielding exactly
// two nibbles per source byte. The source is read-only; any number of
// iterators may walk the same slice concurrently.
type Iterator struct {
	src   []byte
	order Order
	index int  // position of the current source byte
	half  int  // 0 = first nibble of the byte, 1 = second
}

// NewIterator constructs an Iterator positioned at the first nibble of src.
func NewIterator(src []byte, conf ...Config) *Iterator {
	var c Config
	if len(conf) > 0 {
		c = conf[0]
	}
	set.Default(&c.Order, HighFirst)
	return &Iterator{src: src, order: c.Order}
}

// Next returns the next nibble in the stream. Advancing past the end is
// not an error; ok is false once the source is exhausted.
func (it *Iterator) Next() (Nibble, bool) {
	if it.index >= len(it.src) {
		return 0, false
	}
	pair := Split(it.src[it.index])
	first, second := pair.High, pair.Low
	if it.order == LowFirst {
		first, second = second, first
	}
	if it.half == 0 {
		it.half = 1
		return first, true
	}
	it.half = 0
	it.index++
	return second, true
}

// Len reports how many nibbles remain.
func (it *Iterator) Len() int {
	return 2*(len(it.src)-it.index) - it.half
}

// Order reports the within-byte order the iterator yields in.
func (it *Iterator) Order() Order {
	return it.order
}
