package bitio

// Writer accumulates bits MSB-first into a growing byte buffer.
//
// The zero value is ready to use.
type Writer struct {
	data []byte
	bits int
}

// Len returns the number of bits written so far.
func (w *Writer) Len() int { return w.bits }

// Pad returns the number of unused bits in the final byte, in [0, 7].
func (w *Writer) Pad() int {
	if r := w.bits % 8; r != 0 {
		return 8 - r
	}
	return 0
}

// Reset discards all written bits, keeping the buffer for reuse.
func (w *Writer) Reset() {
	w.data = w.data[:0]
	w.bits = 0
}

// AppendBit appends a single bit; any non-zero b counts as 1.
func (w *Writer) AppendBit(b uint8) {
	idx := w.bits / 8
	if idx == len(w.data) {
		w.data = append(w.data, 0)
	}
	if b != 0 {
		w.data[idx] |= 1 << (7 - w.bits%8)
	}
	w.bits++
}

// AppendValue appends the low n bits of v, most significant first.
func (w *Writer) AppendValue(v uint64, n int) {
	for i := n - 1; i >= 0; i-- {
		w.AppendBit(uint8(v >> i & 1))
	}
}

// Bytes returns the packed bits. Unused bits of the final byte are zero.
// The returned slice aliases the writer's buffer.
func (w *Writer) Bytes() []byte { return w.data }
