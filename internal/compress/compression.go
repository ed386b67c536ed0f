// Package compress holds the codecs available for packed nibble
// payloads produced by nibble.Encode.
package compress

import (
	"bytes"
	"compress/zlib"
	"errors"
	"io"
	"strings"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

const (
	CodecNone Codec = iota
	CodecSnappy
	CodecZlib
	CodecLz4
	CodecZstd
)

type Codec int8

var ErrInvalidCodec = errors.New("invalid compression codec")

// String converts Codec to string
func (c Codec) String() string {
	switch c {
	case CodecNone:
		return "None"
	case CodecSnappy:
		return "Snappy"
	case CodecZlib:
		return "Zlib"
	case CodecLz4:
		return "LZ4"
	case CodecZstd:
		return "Zstd"
	default:
		return "Unknown"
	}
}

// ParseCodec is the inverse of String, ignoring case.
func ParseCodec(s string) (Codec, error) {
	switch strings.ToLower(s) {
	case "none":
		return CodecNone, nil
	case "snappy":
		return CodecSnappy, nil
	case "zlib":
		return CodecZlib, nil
	case "lz4":
		return CodecLz4, nil
	case "zstd":
		return CodecZstd, nil
	default:
		return CodecNone, ErrInvalidCodec
	}
}

// Encode compresses a packed nibble payload with the given codec.
func Encode(payload []byte, codec Codec) ([]byte, error) {
	switch codec {
	case CodecNone:
		return payload, nil

	case CodecSnappy:
		return snappy.Encode(nil, payload), nil

	case CodecZlib:
		var b bytes.Buffer
		w := zlib.NewWriter(&b)
		_, err := w.Write(payload)
		_ = w.Close()
		if err != nil {
			return nil, err
		}
		return b.Bytes(), nil

	case CodecLz4:
		var b bytes.Buffer
		w := lz4.NewWriter(&b)
		_, err := w.Write(payload)
		_ = w.Close()
		if err != nil {
			return nil, err
		}
		return b.Bytes(), nil

	case CodecZstd:
		var b bytes.Buffer
		w, err := zstd.NewWriter(&b)
		if err != nil {
			return nil, err
		}
		_, err = w.Write(payload)
		_ = w.Close()
		if err != nil {
			return nil, err
		}
		return b.Bytes(), nil

	default:
		return nil, ErrInvalidCodec
	}
}

// Decode decompresses a packed nibble payload with the given codec.
func Decode(payload []byte, codec Codec) ([]byte, error) {
	switch codec {
	case CodecNone:
		return payload, nil

	case CodecSnappy:
		return snappy.Decode(nil, payload)

	case CodecZlib:
		r, err := zlib.NewReader(bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		defer func() { _ = r.Close() }()
		return io.ReadAll(r)

	case CodecLz4:
		r := lz4.NewReader(bytes.NewReader(payload))
		return io.ReadAll(r)

	case CodecZstd:
		r, err := zstd.NewReader(bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return io.ReadAll(r)

	default:
		return nil, ErrInvalidCodec
	}
}
