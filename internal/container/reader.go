package container

import (
	"io"

	"github.com/go-faster/city"
	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"squash/internal/codec"
	"squash/internal/digest"
)

// ReadHeader reads and validates a container header from r.
func ReadHeader(r io.Reader) (Header, error) {
	var raw [headerSize]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return Header{}, errors.Wrap(err, "read header")
	}
	if raw[0] != magic0 || raw[1] != magic1 || raw[2] != magic2 || raw[3] != magic3 {
		return Header{}, errors.New("bad magic")
	}
	if raw[hVersion] != Version {
		return Header{}, errors.Errorf("unsupported version %d", raw[hVersion])
	}

	hdr := Header{
		Version: raw[hVersion],
		Method:  Method(raw[hMethod]),
		Param:   bin.Uint32(raw[hParam:]),
		RawSize: bin.Uint64(raw[hRawSize:]),
	}
	copy(hdr.Digest[:], raw[hDigest:])
	return hdr, nil
}

// readBlock reads one block from r, verifying its checksum. It returns
// the encoded payload (aliasing buf, which is recycled across calls)
// and the block's raw size, or io.EOF at a clean stream boundary.
func readBlock(r io.Reader, buf []byte) (payload []byte, rawSize int, bufOut []byte, err error) {
	var head [blockHeaderSize]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, 0, buf, io.EOF
		}
		return nil, 0, buf, errors.Wrap(err, "read block header")
	}

	dataSize := int(bin.Uint32(head[bDataSize:]))
	rawSize = int(bin.Uint32(head[bRawSize:]))
	if dataSize < 0 || dataSize > maxDataSize {
		return nil, 0, buf, errors.Errorf("data size should be %d < %d < %d", 0, dataSize, maxDataSize)
	}
	if rawSize <= 0 || rawSize > maxRawBlock {
		return nil, 0, buf, errors.Errorf("raw size should be %d < %d <= %d", 0, rawSize, maxRawBlock)
	}

	buf = append(buf[:0], head[checksumSize:]...)
	buf = append(buf, make([]byte, dataSize)...)
	if _, err := io.ReadFull(r, buf[blockHeaderSize-checksumSize:]); err != nil {
		return nil, 0, buf, errors.Wrap(err, "read block payload")
	}

	want := city.U128{Low: bin.Uint64(head[0:8]), High: bin.Uint64(head[8:16])}
	if got := city.CH128(buf); got != want {
		return nil, 0, buf, errors.New("block checksum mismatch")
	}
	return buf[blockHeaderSize-checksumSize:], rawSize, buf, nil
}

// Reader decodes container streams, resolving codecs by name.
type Reader struct {
	Codecs *codec.Registry
	Log    *zap.Logger // optional
}

func (r *Reader) lg() *zap.Logger {
	if r.Log == nil {
		return zap.NewNop()
	}
	return r.Log
}

// Decompress reads a full container stream from src, verifying every
// block checksum and the final digest, and returns the raw data.
func (r *Reader) Decompress(src io.Reader) ([]byte, Header, error) {
	hdr, err := ReadHeader(src)
	if err != nil {
		return nil, Header{}, err
	}

	name := hdr.Method.CodecName()
	if name == "" {
		return nil, hdr, errors.Errorf("method 0x%02x not implemented", byte(hdr.Method))
	}
	c, err := r.Codecs.New(name, hdr.Params())
	if err != nil {
		return nil, hdr, errors.Wrap(err, "resolve codec")
	}

	capHint := hdr.RawSize
	if capHint > maxRawBlock {
		capHint = maxRawBlock
	}
	out := make([]byte, 0, capHint)

	var (
		buf    []byte
		blocks int
	)
	for {
		var (
			payload []byte
			rawSize int
		)
		payload, rawSize, buf, err = readBlock(src, buf)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, hdr, errors.Wrapf(err, "block %d", blocks)
		}

		before := len(out)
		out, err = c.Decode(out, payload)
		if err != nil {
			return nil, hdr, errors.Wrapf(err, "decode block %d", blocks)
		}
		if len(out)-before != rawSize {
			return nil, hdr, errors.Errorf("block %d decoded to %d bytes, header says %d", blocks, len(out)-before, rawSize)
		}
		blocks++
	}

	if uint64(len(out)) != hdr.RawSize {
		return nil, hdr, errors.Errorf("decoded %d bytes, header says %d", len(out), hdr.RawSize)
	}
	if digest.Sum(out) != hdr.Digest {
		return nil, hdr, errors.New("content digest mismatch")
	}

	r.lg().Debug("Decompressed",
		zap.Stringer("method", hdr.Method),
		zap.Int("raw_bytes", len(out)),
		zap.Int("blocks", blocks),
	)
	return out, hdr, nil
}

// Stat reads a container stream without decoding payloads, verifying
// block checksums and returning block-level totals.
func Stat(src io.Reader) (Header, Stats, error) {
	hdr, err := ReadHeader(src)
	if err != nil {
		return Header{}, Stats{}, err
	}

	var (
		stats Stats
		buf   []byte
		raw   uint64
	)
	for {
		var payload []byte
		var rawSize int
		payload, rawSize, buf, err = readBlock(src, buf)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return hdr, stats, errors.Wrapf(err, "block %d", stats.Blocks)
		}
		stats.Blocks++
		stats.Compressed += int64(len(payload))
		raw += uint64(rawSize)
	}

	if raw != hdr.RawSize {
		return hdr, stats, errors.Errorf("blocks cover %d bytes, header says %d", raw, hdr.RawSize)
	}
	return hdr, stats, nil
}
