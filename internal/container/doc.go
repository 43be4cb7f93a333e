// Package container implements the squash file format.
//
// A file opens with a fixed header naming the algorithm and its
// parameter, the original size, and a BLAKE2b-256 digest of the raw
// input. The payload follows as a sequence of independently encoded
// blocks, each fronted by a CityHash128 checksum over its sizes and
// payload, so corruption is localised to a block and detected before
// decoding. The header makes files self-describing: decompression needs
// no out-of-band parameters.
package container
