// Package phasedin implements phased-in codes, also known as truncated
// binary coding.
//
// For an alphabet of n symbols with 2^m <= n < 2^(m+1), a plain binary
// code would spend m+1 bits on every symbol even though only
// p = n - 2^m code points need the extra bit. Phased-in codes split the
// alphabet instead: with P = 2^m - p, symbols 0..P-1 get the m-bit codes
// 0..P-1, and each remaining symbol s >= P gets an (m+1)-bit code built
// from P + (s-P)/2 in m bits followed by the low bit of s-P. When n is a
// power of two this degenerates to plain m-bit binary.
//
// The code is uniquely decodable without a table: read m bits as v, and
// if v >= P read one more bit b to recover P + (v-P)*2 + b.
//
// The encoded stream is framed with a single leading byte holding the
// count of unused pad bits in the final byte, followed by the MSB-first
// packed code bits.
package phasedin
