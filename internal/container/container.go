package container

import (
	"encoding/binary"

	"squash/internal/codec"
	"squash/internal/digest"
)

// Method identifies the algorithm a file was encoded with.
type Method byte

const (
	Raw      Method = 0x00
	PhasedIn Method = 0x01
	RLE      Method = 0x02
	Huffman  Method = 0x03
	LZ4      Method = 0x04
	ZSTD     Method = 0x05
)

// Version is the current container format version.
const Version = 1

const (
	magic0 = 'S'
	magic1 = 'Q'
	magic2 = 'Z'
	magic3 = '1'

	// Header layout: magic (4) | version (1) | method (1) |
	// param uint32 | rawSize uint64 | digest (32).
	headerSize = 4 + 1 + 1 + 4 + 8 + digest.Size

	hVersion = 4
	hMethod  = 5
	hParam   = 6
	hRawSize = 10
	hDigest  = 18

	// Block layout: checksum (16, over the rest) | dataSize uint32 |
	// rawSize uint32 | payload.
	blockHeaderSize = checksumSize + 4 + 4
	checksumSize    = 16

	bDataSize = 16
	bRawSize  = 20

	// maxRawBlock is how much raw input a single block covers.
	maxRawBlock = 1 << 20
	// maxDataSize bounds a block's encoded payload; phased-in worst
	// case grows input by 9/8 plus framing, everything else stays
	// closer to 1x.
	maxDataSize = 2 * maxRawBlock
)

var bin = binary.LittleEndian

var methodNames = map[Method]string{
	Raw:      "raw",
	PhasedIn: "phasedin",
	RLE:      "rle",
	Huffman:  "huffman",
	LZ4:      "lz4",
	ZSTD:     "zstd",
}

// String implements fmt.Stringer.
func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return "unknown"
}

// CodecName returns the registry name for m, or "" if m is unknown.
func (m Method) CodecName() string { return methodNames[m] }

// MethodForName maps a registry name back to its method byte.
func MethodForName(name string) (Method, bool) {
	for m, n := range methodNames {
		if n == name {
			return m, true
		}
	}
	return 0, false
}

// Params translates a header's method and parameter into codec Params.
func (h Header) Params() codec.Params {
	switch h.Method {
	case PhasedIn:
		return codec.Params{Symbols: int(h.Param)}
	case LZ4, ZSTD:
		return codec.Params{Level: int(h.Param)}
	default:
		return codec.Params{}
	}
}

// Header describes a container file.
type Header struct {
	Version byte
	Method  Method
	Param   uint32
	RawSize uint64
	Digest  [digest.Size]byte
}

// Stats summarises a container's block structure.
type Stats struct {
	Blocks     int
	Compressed int64 // encoded payload bytes, excluding framing
}
