package huffman

import (
	"container/heap"
	"encoding/binary"
	"sort"

	"github.com/go-faster/errors"

	"squash/internal/bitio"
)

const (
	numSymbols = 256
	headerSize = 8 + numSymbols

	// maxCodeLen bounds code lengths so canonical codes fit comfortably
	// in a uint64. Reaching it would need near-Fibonacci frequency
	// skew over exabytes of input.
	maxCodeLen = 58
)

var bin = binary.LittleEndian

// Coder is the canonical Huffman codec. The zero value is ready to use.
type Coder struct{}

func (Coder) Name() string { return "huffman" }

// Encode appends the encoded form of src to dst.
func (Coder) Encode(dst, src []byte) ([]byte, error) {
	var freq [numSymbols]int
	for _, b := range src {
		freq[b]++
	}

	lengths, err := buildLengths(&freq)
	if err != nil {
		return nil, err
	}
	codes, _, err := canonicalCodes(&lengths)
	if err != nil {
		return nil, err
	}

	var hdr [headerSize]byte
	bin.PutUint64(hdr[:8], uint64(len(src)))
	copy(hdr[8:], lengths[:])
	dst = append(dst, hdr[:]...)

	var w bitio.Writer
	for _, b := range src {
		w.AppendValue(codes[b], int(lengths[b]))
	}
	return append(dst, w.Bytes()...), nil
}

// Decode appends the decoded form of src to dst.
func (Coder) Decode(dst, src []byte) ([]byte, error) {
	if len(src) < headerSize {
		return nil, errors.Errorf("header truncated: %d bytes", len(src))
	}
	rawLen := bin.Uint64(src[:8])
	var lengths [numSymbols]uint8
	copy(lengths[:], src[8:headerSize])

	if rawLen == 0 {
		return dst, nil
	}

	tab, err := newDecodeTable(&lengths)
	if err != nil {
		return nil, err
	}

	r := bitio.NewReader(src[headerSize:])
	for n := uint64(0); n < rawLen; n++ {
		sym, err := tab.read(r)
		if err != nil {
			return nil, err
		}
		dst = append(dst, sym)
	}
	return dst, nil
}

type node struct {
	freq        int
	order       int
	sym         int // -1 for internal nodes
	left, right *node
}

type nodeHeap []*node

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].freq != h[j].freq {
		return h[i].freq < h[j].freq
	}
	return h[i].order < h[j].order
}
func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x any)   { *h = append(*h, x.(*node)) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// buildLengths derives code lengths from symbol frequencies. Ties break
// on insertion order so the result is deterministic.
func buildLengths(freq *[numSymbols]int) ([numSymbols]uint8, error) {
	var lengths [numSymbols]uint8

	h := &nodeHeap{}
	order := 0
	for s, f := range freq {
		if f == 0 {
			continue
		}
		heap.Push(h, &node{freq: f, order: order, sym: s})
		order++
	}

	switch h.Len() {
	case 0:
		return lengths, nil
	case 1:
		// A lone symbol still needs one bit per occurrence.
		lengths[(*h)[0].sym] = 1
		return lengths, nil
	}

	for h.Len() > 1 {
		a := heap.Pop(h).(*node)
		b := heap.Pop(h).(*node)
		heap.Push(h, &node{freq: a.freq + b.freq, order: order, sym: -1, left: a, right: b})
		order++
	}
	root := heap.Pop(h).(*node)

	var overflow bool
	var walk func(n *node, depth int)
	walk = func(n *node, depth int) {
		if n.sym >= 0 {
			if depth > maxCodeLen {
				overflow = true
				return
			}
			lengths[n.sym] = uint8(depth)
			return
		}
		walk(n.left, depth+1)
		walk(n.right, depth+1)
	}
	walk(root, 0)

	if overflow {
		return lengths, errors.Errorf("code length exceeds %d bits", maxCodeLen)
	}
	return lengths, nil
}

// canonicalCodes assigns canonical code values from lengths: codes of a
// given length are consecutive, ordered by symbol, each length picking
// up where the previous one left off, doubled.
func canonicalCodes(lengths *[numSymbols]uint8) (codes [numSymbols]uint64, maxLen int, err error) {
	type entry struct {
		sym int
		l   uint8
	}
	var entries []entry
	for s, l := range lengths {
		if l == 0 {
			continue
		}
		if int(l) > maxCodeLen {
			return codes, 0, errors.Errorf("code length %d exceeds %d bits", l, maxCodeLen)
		}
		entries = append(entries, entry{sym: s, l: l})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].l != entries[j].l {
			return entries[i].l < entries[j].l
		}
		return entries[i].sym < entries[j].sym
	})

	var code uint64
	var prev uint8
	for _, e := range entries {
		code <<= e.l - prev
		if code >= 1<<e.l {
			return codes, 0, errors.New("over-subscribed code lengths")
		}
		codes[e.sym] = code
		code++
		prev = e.l
	}
	return codes, int(prev), nil
}

// decodeTable resolves canonical codes length by length: codes of length
// l occupy the contiguous range [first[l], first[l]+count[l]).
type decodeTable struct {
	maxLen int
	first  [maxCodeLen + 1]uint64
	offset [maxCodeLen + 1]int
	count  [maxCodeLen + 1]int
	syms   []uint8 // symbols ordered by (length, symbol)
}

func newDecodeTable(lengths *[numSymbols]uint8) (*decodeTable, error) {
	t := &decodeTable{}
	for _, l := range lengths {
		if l == 0 {
			continue
		}
		if int(l) > maxCodeLen {
			return nil, errors.Errorf("code length %d exceeds %d bits", l, maxCodeLen)
		}
		t.count[l]++
		if int(l) > t.maxLen {
			t.maxLen = int(l)
		}
	}
	if t.maxLen == 0 {
		return nil, errors.New("empty code-length table")
	}

	for l := 1; l <= t.maxLen; l++ {
		for s := 0; s < numSymbols; s++ {
			if int(lengths[s]) == l {
				t.syms = append(t.syms, uint8(s))
			}
		}
	}

	var code uint64
	index := 0
	for l := 1; l <= t.maxLen; l++ {
		t.first[l] = code
		t.offset[l] = index
		index += t.count[l]
		code += uint64(t.count[l])
		if code > 1<<l {
			return nil, errors.New("over-subscribed code lengths")
		}
		code <<= 1
	}
	return t, nil
}

// read consumes one code from r and returns its symbol.
func (t *decodeTable) read(r *bitio.Reader) (uint8, error) {
	var code uint64
	for l := 1; l <= t.maxLen; l++ {
		b, err := r.ReadBit()
		if err != nil {
			return 0, errors.Wrap(err, "truncated code")
		}
		code = code<<1 | uint64(b)
		if d := code - t.first[l]; code >= t.first[l] && d < uint64(t.count[l]) {
			return t.syms[t.offset[l]+int(d)], nil
		}
	}
	return 0, errors.New("unresolvable code")
}
