// Package codec defines the compression algorithm abstraction shared by
// the toolkit: a small append-style Codec interface, the parameters
// individual algorithms accept, and a registry mapping algorithm names
// to constructors.
package codec
