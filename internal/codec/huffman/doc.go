// Package huffman implements canonical Huffman coding over byte symbols.
//
// A Huffman code assigns short codes to frequent symbols and longer ones
// to rare symbols; the tree built by repeatedly merging the two lightest
// subtrees minimises the total encoded length. The canonical form keeps
// only the code lengths: codes of equal length are consecutive integers
// assigned in symbol order, each length continuing from the previous one
// shifted left. Lengths alone therefore reconstruct the whole code, so
// the encoded stream stores a fixed 256-byte length table instead of a
// tree.
//
// Encoded layout: an 8-byte little-endian count of original bytes, the
// 256-byte code-length table, then the MSB-first packed code bits.
package huffman
