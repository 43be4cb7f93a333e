// Package zstd wraps klauspost/compress/zstd as a toolkit codec.
//
// Zstandard pairs an LZ77-style match finder with FSE and Huffman
// entropy coding; its frame format is self-delimiting, so the codec is a
// thin adapter over EncodeAll and DecodeAll.
package zstd
