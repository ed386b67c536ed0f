package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/clarcharr/nibble-go/internal/compress"
	"github.com/clarcharr/nibble-go/nibble"
)

func main() {
	input := "4bf0"
	codecName := "snappy"
	if len(os.Args) > 1 {
		input = os.Args[1]
	}
	if len(os.Args) > 2 {
		codecName = os.Args[2]
	}

	codec, err := compress.ParseCodec(codecName)
	if err != nil {
		slog.Error("unknown codec", "codec", codecName, "error", err)
		os.Exit(1)
	}

	buf, err := nibble.BufferFromHex(input)
	if err != nil {
		slog.Error("unable to parse hex input", "input", input, "error", err)
		os.Exit(1)
	}

	packed, odd := buf.Bytes()
	fmt.Printf("Input: %q -> %d nibbles, packed % x (trailing half-byte: %v)\n",
		input, buf.Len(), packed, odd)

	it := nibble.NewIterator(packed, nibble.Config{Order: nibble.HighFirst})
	for {
		n, ok := it.Next()
		if !ok {
			break
		}
		fmt.Printf("Nibble: %2s (hex %c, bits %s)\n", n, n.HexDigit(), n.Binary())
	}

	encoded, err := nibble.Encode(buf, codec)
	if err != nil {
		slog.Error("unable to encode buffer", "codec", codec, "error", err)
		os.Exit(1)
	}
	fmt.Printf("Encoded: %d bytes with %s\n", len(encoded), codec)

	decoded, err := nibble.Decode(encoded)
	if err != nil {
		slog.Error("unable to decode buffer", "error", err)
		os.Exit(1)
	}
	fmt.Printf("Decoded: %q\n", decoded.Hex())
}
