// Package bitio provides MSB-first bit-level reading and writing over
// byte slices.
//
// The first bit written lands in bit position 7 of the first byte, the
// second in position 6, and so on. Readers consume bits in the same
// order, so a Reader over a Writer's output yields the original bit
// sequence.
package bitio
