package phasedin

import (
	"math/bits"

	"github.com/go-faster/errors"

	"squash/internal/bitio"
)

// Coder encodes and decodes byte streams over a fixed-size alphabet
// using phased-in codes. Input symbols must be below the alphabet size.
type Coder struct {
	symbols int // alphabet size n
	short   int // m: bits in a short code
	split   int // P: first symbol that takes a long code
}

// New returns a Coder for an alphabet of n symbols, 2 <= n <= 256.
func New(n int) (*Coder, error) {
	if n < 2 || n > 256 {
		return nil, errors.Errorf("alphabet size %d out of range [2, 256]", n)
	}
	m := bits.Len(uint(n)) - 1
	p := n - 1<<m
	return &Coder{
		symbols: n,
		short:   m,
		split:   1<<m - p,
	}, nil
}

func (c *Coder) Name() string { return "phasedin" }

// Symbols returns the alphabet size the coder was built for.
func (c *Coder) Symbols() int { return c.symbols }

// Encode appends the encoded form of src to dst: one pad-count byte,
// then the packed code bits.
func (c *Coder) Encode(dst, src []byte) ([]byte, error) {
	var w bitio.Writer
	for i, b := range src {
		s := int(b)
		if s >= c.symbols {
			return nil, errors.Errorf("symbol %d at offset %d outside alphabet of %d", s, i, c.symbols)
		}
		if s < c.split {
			w.AppendValue(uint64(s), c.short)
			continue
		}
		d := s - c.split
		w.AppendValue(uint64(c.split+d/2), c.short)
		w.AppendBit(uint8(d & 1))
	}

	dst = append(dst, byte(w.Pad()))
	return append(dst, w.Bytes()...), nil
}

// Decode appends the decoded symbols of src to dst.
func (c *Coder) Decode(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, errors.New("missing pad byte")
	}
	pad := int(src[0])
	if pad >= 8 {
		return nil, errors.Errorf("pad count %d out of range", pad)
	}
	body := src[1:]
	if len(body) == 0 && pad != 0 {
		return nil, errors.New("pad count without data")
	}

	r := bitio.NewReaderBits(body, len(body)*8-pad)
	for r.Remaining() > 0 {
		v, err := r.ReadBits(c.short)
		if err != nil {
			return nil, errors.Wrap(err, "truncated code")
		}
		s := int(v)
		if s >= c.split {
			b, err := r.ReadBit()
			if err != nil {
				return nil, errors.Wrap(err, "truncated long code")
			}
			s = c.split + (s-c.split)*2 + int(b)
		}
		if s >= c.symbols {
			return nil, errors.Errorf("decoded symbol %d outside alphabet of %d", s, c.symbols)
		}
		dst = append(dst, byte(s))
	}
	return dst, nil
}
