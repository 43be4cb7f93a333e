package codec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"squash/internal/codec"
)

func rawFactory(codec.Params) (codec.Codec, error) { return codec.Raw{}, nil }

func TestRegistryRegisterAndNew(t *testing.T) {
	r := codec.NewRegistry()
	require.NoError(t, r.Register("raw", rawFactory))

	c, err := r.New("raw", codec.Params{})
	require.NoError(t, err)
	require.Equal(t, "raw", c.Name())
}

func TestRegistryDuplicate(t *testing.T) {
	r := codec.NewRegistry()
	require.NoError(t, r.Register("raw", rawFactory))
	require.Error(t, r.Register("raw", rawFactory))
}

func TestRegistryUnknown(t *testing.T) {
	r := codec.NewRegistry()
	_, err := r.New("nope", codec.Params{})
	require.Error(t, err)
}

func TestRegistryNamesSorted(t *testing.T) {
	r := codec.NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, r.Register(name, rawFactory))
	}
	require.Equal(t, []string{"alpha", "mid", "zeta"}, r.Names())
}

func TestRawRoundTrip(t *testing.T) {
	var c codec.Raw
	enc, err := c.Encode(nil, []byte("hello"))
	require.NoError(t, err)
	dec, err := c.Decode(nil, enc)
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), dec)
}
