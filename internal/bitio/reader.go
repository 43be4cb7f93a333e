package bitio

import "github.com/go-faster/errors"

// ErrEOF is returned when reading past the end of the bit stream.
var ErrEOF = errors.New("bitio: no more bits")

// Reader consumes bits MSB-first from a byte slice.
type Reader struct {
	data []byte
	bits int
	pos  int
}

// NewReader returns a Reader over all bits of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data, bits: len(data) * 8}
}

// NewReaderBits returns a Reader over the first bits bits of data. The
// count is clamped to the available bits.
func NewReaderBits(data []byte, bits int) *Reader {
	if max := len(data) * 8; bits > max {
		bits = max
	}
	if bits < 0 {
		bits = 0
	}
	return &Reader{data: data, bits: bits}
}

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() int { return r.bits - r.pos }

// ReadBit reads and consumes a single bit.
func (r *Reader) ReadBit() (uint8, error) {
	if r.pos >= r.bits {
		return 0, ErrEOF
	}
	b := r.data[r.pos/8] >> (7 - r.pos%8) & 1
	r.pos++
	return b, nil
}

// ReadBits reads n bits (n <= 64) as an MSB-first integer.
func (r *Reader) ReadBits(n int) (uint64, error) {
	if n < 0 || n > 64 {
		return 0, errors.Errorf("bit count %d out of range", n)
	}
	if r.Remaining() < n {
		return 0, ErrEOF
	}
	var v uint64
	for i := 0; i < n; i++ {
		b, _ := r.ReadBit()
		v = v<<1 | uint64(b)
	}
	return v, nil
}
