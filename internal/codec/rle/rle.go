package rle

import (
	"bytes"

	"github.com/go-faster/errors"
)

const (
	maxGroup = 128 // longest run or literal group a control byte can cover
	reserved = 0x80
)

// Coder is the PackBits run-length codec. The zero value is ready to use.
type Coder struct{}

func (Coder) Name() string { return "rle" }

// runLen returns the length of the run starting at src[i], capped at
// maxGroup.
func runLen(src []byte, i int) int {
	n := 1
	for i+n < len(src) && src[i+n] == src[i] && n < maxGroup {
		n++
	}
	return n
}

// Encode appends the encoded form of src to dst.
func (Coder) Encode(dst, src []byte) ([]byte, error) {
	for i := 0; i < len(src); {
		if n := runLen(src, i); n >= 3 {
			dst = append(dst, byte(257-n), src[i])
			i += n
			continue
		}

		// Literal group: extend until a run of three starts or the
		// group fills up.
		start := i
		for i < len(src) && i-start < maxGroup {
			if i+2 < len(src) && src[i] == src[i+1] && src[i] == src[i+2] {
				break
			}
			i++
		}
		dst = append(dst, byte(i-start-1))
		dst = append(dst, src[start:i]...)
	}
	return dst, nil
}

// Decode appends the decoded form of src to dst.
func (Coder) Decode(dst, src []byte) ([]byte, error) {
	for i := 0; i < len(src); {
		c := src[i]
		i++
		switch {
		case c == reserved:
			return nil, errors.Errorf("reserved control byte at offset %d", i-1)
		case c < reserved:
			n := int(c) + 1
			if i+n > len(src) {
				return nil, errors.Errorf("truncated literal group: need %d bytes, have %d", n, len(src)-i)
			}
			dst = append(dst, src[i:i+n]...)
			i += n
		default:
			if i >= len(src) {
				return nil, errors.New("truncated run group")
			}
			dst = append(dst, bytes.Repeat(src[i:i+1], 257-int(c))...)
			i++
		}
	}
	return dst, nil
}
