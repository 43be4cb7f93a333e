package container

import (
	"io"

	"github.com/go-faster/city"
	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"squash/internal/codec"
	"squash/internal/digest"
)

// Writer frames codec output into a container stream.
type Writer struct {
	Codec  codec.Codec
	Method Method
	Param  uint32
	Log    *zap.Logger // optional
}

func (w *Writer) lg() *zap.Logger {
	if w.Log == nil {
		return zap.NewNop()
	}
	return w.Log
}

// Compress encodes src with the configured codec and writes the full
// container stream to dst.
func (w *Writer) Compress(dst io.Writer, src []byte) error {
	if w.Codec == nil {
		return errors.New("no codec configured")
	}

	var hdr [headerSize]byte
	hdr[0], hdr[1], hdr[2], hdr[3] = magic0, magic1, magic2, magic3
	hdr[hVersion] = Version
	hdr[hMethod] = byte(w.Method)
	bin.PutUint32(hdr[hParam:], w.Param)
	bin.PutUint64(hdr[hRawSize:], uint64(len(src)))
	sum := digest.Sum(src)
	copy(hdr[hDigest:], sum[:])
	if _, err := dst.Write(hdr[:]); err != nil {
		return errors.Wrap(err, "write header")
	}

	var (
		scratch []byte
		block   []byte
		blocks  int
		written int64
	)
	for off := 0; off < len(src); {
		n := len(src) - off
		if n > maxRawBlock {
			n = maxRawBlock
		}

		enc, err := w.Codec.Encode(scratch[:0], src[off:off+n])
		if err != nil {
			return errors.Wrapf(err, "encode block %d", blocks)
		}
		scratch = enc
		if len(enc) > maxDataSize {
			return errors.Errorf("block %d encoded to %d bytes, limit %d", blocks, len(enc), maxDataSize)
		}

		block = append(block[:0], make([]byte, blockHeaderSize)...)
		bin.PutUint32(block[bDataSize:], uint32(len(enc)))
		bin.PutUint32(block[bRawSize:], uint32(n))
		block = append(block, enc...)
		h := city.CH128(block[checksumSize:])
		bin.PutUint64(block[0:8], h.Low)
		bin.PutUint64(block[8:16], h.High)

		if _, err := dst.Write(block); err != nil {
			return errors.Wrapf(err, "write block %d", blocks)
		}

		off += n
		blocks++
		written += int64(len(block))
	}

	w.lg().Debug("Compressed",
		zap.Stringer("method", w.Method),
		zap.Int("raw_bytes", len(src)),
		zap.Int64("written_bytes", written+headerSize),
		zap.Int("blocks", blocks),
	)
	return nil
}
