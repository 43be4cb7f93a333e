// Package rle implements PackBits-style run-length encoding.
//
// The stream is a sequence of groups, each introduced by a control byte
// c. For c in [0, 127] the next c+1 bytes are copied verbatim; for c in
// [129, 255] the next byte is repeated 257-c times, covering runs of 2
// to 128. The value 128 is reserved and rejected on decode.
//
// The encoder only emits a run group for three or more repeats, since a
// two-byte run costs the same either way and breaking a literal group
// for it can only lose ground.
package rle
