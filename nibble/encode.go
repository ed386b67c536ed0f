package nibble

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"

	"github.com/clarcharr/nibble-go/internal/compress"
)

var (
	ErrBadMagic         = errors.New("not an encoded nibble buffer")
	ErrChecksumMismatch = errors.New("checksum mismatch")
	ErrTruncated        = errors.New("encoded nibble buffer truncated")
	ErrCountMismatch    = errors.New("payload does not match nibble count")
)

var magic = [4]byte{'n', 'i', 'b', '1'}

const headerSize = 4 + 1 + 4 + 4 // magic + codec + nibble count + crc32

// Encode packs buf into a self-describing byte slice:
//
//	|--------------------------------------------------------|
//	| [4]byte | uint8 | uint32      | uint32 | []byte         |
//	|---------|-------|-------------|--------|----------------|
//	| magic   | codec | nibble count| crc32  | payload        |
//	|--------------------------------------------------------|
//
// Integers are big endian. The payload is the buffer's packed bytes
// compressed with codec; the checksum covers the compressed payload.
func Encode(buf *Buffer, codec compress.Codec) ([]byte, error) {
	packed, _ := buf.Bytes()
	payload, err := compress.Encode(packed, codec)
	if err != nil {
		return nil, err
	}
	out := make([]byte, headerSize, headerSize+len(payload))
	copy(out, magic[:])
	out[4] = byte(codec)
	binary.BigEndian.PutUint32(out[5:], uint32(buf.Len()))
	binary.BigEndian.PutUint32(out[9:], crc32.ChecksumIEEE(payload))
	return append(out, payload...), nil
}

// Decode reverses Encode. The returned Buffer owns its own storage and
// does not alias data.
func Decode(data []byte) (*Buffer, error) {
	if len(data) < headerSize {
		return nil, ErrTruncated
	}
	if !bytes.Equal(data[:4], magic[:]) {
		return nil, ErrBadMagic
	}
	codec := compress.Codec(data[4])
	count := binary.BigEndian.Uint32(data[5:])
	sum := binary.BigEndian.Uint32(data[9:])
	payload := data[headerSize:]
	if crc32.ChecksumIEEE(payload) != sum {
		return nil, ErrChecksumMismatch
	}
	packed, err := compress.Decode(payload, codec)
	if err != nil {
		return nil, err
	}
	if (int(count)+1)/2 != len(packed) {
		return nil, ErrCountMismatch
	}
	buf := BufferFromBytes(packed)
	if count%2 == 1 {
		buf.odd = true
		// a trailing half-byte carries no low nibble
		buf.data[len(buf.data)-1] &= 0xF0
	}
	return buf, nil
}
