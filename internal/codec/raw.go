package codec

// Raw is the identity codec. It exists as a measurement baseline and to
// exercise container framing without a real algorithm in the way.
type Raw struct{}

func (Raw) Name() string { return "raw" }

func (Raw) Encode(dst, src []byte) ([]byte, error) {
	return append(dst, src...), nil
}

func (Raw) Decode(dst, src []byte) ([]byte, error) {
	return append(dst, src...), nil
}
