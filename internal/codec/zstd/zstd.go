package zstd

import (
	"github.com/go-faster/errors"
	kzstd "github.com/klauspost/compress/zstd"
)

// Coder compresses with zstd frames. Level 0 means SpeedDefault; other
// levels map through the standard zstd level scale.
type Coder struct {
	enc *kzstd.Encoder
	dec *kzstd.Decoder
}

func New(level int) (*Coder, error) {
	lvl := kzstd.SpeedDefault
	if level > 0 {
		lvl = kzstd.EncoderLevelFromZstd(level)
	}
	enc, err := kzstd.NewWriter(nil,
		kzstd.WithEncoderLevel(lvl),
		kzstd.WithEncoderConcurrency(1),
		kzstd.WithLowerEncoderMem(true),
	)
	if err != nil {
		return nil, errors.Wrap(err, "encoder")
	}
	dec, err := kzstd.NewReader(nil,
		kzstd.WithDecoderConcurrency(1),
		kzstd.WithDecoderLowmem(true),
	)
	if err != nil {
		return nil, errors.Wrap(err, "decoder")
	}
	return &Coder{enc: enc, dec: dec}, nil
}

func (c *Coder) Name() string { return "zstd" }

func (c *Coder) Encode(dst, src []byte) ([]byte, error) {
	return c.enc.EncodeAll(src, dst), nil
}

func (c *Coder) Decode(dst, src []byte) ([]byte, error) {
	out, err := c.dec.DecodeAll(src, dst)
	if err != nil {
		return nil, errors.Wrap(err, "decode frame")
	}
	return out, nil
}
