// Package lz4 wraps the pierrec/lz4 block API as a toolkit codec.
//
// LZ4 is an LZ77-family byte-oriented compressor tuned for speed: it
// replaces repeated byte sequences with (offset, length) references into
// the previously seen window. The block API is not self-delimiting and
// can decline to compress, so the codec prefixes each block with a flag
// byte (stored vs compressed) and the raw size.
package lz4
