package lz4

import (
	"encoding/binary"

	"github.com/go-faster/errors"
	pierrec "github.com/pierrec/lz4/v4"
)

const (
	flagStored = 0x00
	flagBlock  = 0x01
	prefixSize = 1 + 8

	// maxLevel is the highest HC level pierrec/lz4 accepts.
	maxLevel = 12

	// maxRawSize bounds the decode allocation for a single block.
	maxRawSize = 1 << 30
)

var bin = binary.LittleEndian

// Coder compresses with the LZ4 block format. Level 0 uses the fast
// compressor; levels 1-12 use the HC variant.
type Coder struct {
	fast *pierrec.Compressor
	hc   *pierrec.CompressorHC
}

func New(level int) (*Coder, error) {
	if level < 0 || level > maxLevel {
		return nil, errors.Errorf("level %d out of range [0, %d]", level, maxLevel)
	}
	if level == 0 {
		return &Coder{fast: &pierrec.Compressor{}}, nil
	}
	return &Coder{
		hc: &pierrec.CompressorHC{Level: pierrec.CompressionLevel(1 << (8 + level))},
	}, nil
}

func (c *Coder) Name() string { return "lz4" }

// Encode appends a flag byte, the little-endian raw size, and either the
// LZ4 block or the input verbatim when compression gains nothing.
func (c *Coder) Encode(dst, src []byte) ([]byte, error) {
	start := len(dst)
	dst = append(dst, make([]byte, prefixSize)...)
	bin.PutUint64(dst[start+1:], uint64(len(src)))

	if len(src) == 0 {
		dst[start] = flagStored
		return dst, nil
	}

	buf := make([]byte, pierrec.CompressBlockBound(len(src)))
	var (
		n   int
		err error
	)
	if c.hc != nil {
		n, err = c.hc.CompressBlock(src, buf)
	} else {
		n, err = c.fast.CompressBlock(src, buf)
	}
	if err != nil {
		return nil, errors.Wrap(err, "compress block")
	}
	// CompressBlock reports 0 for incompressible input.
	if n == 0 || n >= len(src) {
		dst[start] = flagStored
		return append(dst, src...), nil
	}
	dst[start] = flagBlock
	return append(dst, buf[:n]...), nil
}

// Decode appends the decompressed block to dst.
func (c *Coder) Decode(dst, src []byte) ([]byte, error) {
	if len(src) < prefixSize {
		return nil, errors.Errorf("prefix truncated: %d bytes", len(src))
	}
	rawSize := bin.Uint64(src[1:prefixSize])
	if rawSize > maxRawSize {
		return nil, errors.Errorf("raw size %d exceeds %d", rawSize, maxRawSize)
	}
	payload := src[prefixSize:]

	switch flag := src[0]; flag {
	case flagStored:
		if uint64(len(payload)) != rawSize {
			return nil, errors.Errorf("stored block size %d, want %d", len(payload), rawSize)
		}
		return append(dst, payload...), nil
	case flagBlock:
		buf := make([]byte, rawSize)
		n, err := pierrec.UncompressBlock(payload, buf)
		if err != nil {
			return nil, errors.Wrap(err, "uncompress block")
		}
		if uint64(n) != rawSize {
			return nil, errors.Errorf("decompressed to %d bytes, want %d", n, rawSize)
		}
		return append(dst, buf[:n]...), nil
	default:
		return nil, errors.Errorf("unknown block flag 0x%02x", flag)
	}
}
