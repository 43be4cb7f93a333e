package codec

// Params carries per-algorithm construction options. Algorithms ignore
// fields they have no use for.
type Params struct {
	// Symbols is the alphabet size for phased-in codes, in [2, 256].
	// Zero means 256.
	Symbols int
	// Level is the compression level for lz4 and zstd. Zero means the
	// algorithm's default.
	Level int
}

// Codec encodes and decodes byte streams. Both methods append to dst
// (which may be nil) and return the extended slice.
//
// Encoded output is self-delimiting: Decode consumes exactly what Encode
// produced and returns an error, never panics, on truncated or corrupt
// input.
type Codec interface {
	Name() string
	Encode(dst, src []byte) ([]byte, error)
	Decode(dst, src []byte) ([]byte, error)
}
