package container_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"squash/internal/app"
	"squash/internal/codec"
	"squash/internal/container"
	"squash/internal/digest"
)

func compress(t *testing.T, name string, param uint32, src []byte) []byte {
	t.Helper()
	reg, err := app.NewRegistry()
	require.NoError(t, err)

	method, ok := container.MethodForName(name)
	require.True(t, ok)

	hdr := container.Header{Method: method, Param: param}
	c, err := reg.New(name, hdr.Params())
	require.NoError(t, err)

	var buf bytes.Buffer
	w := &container.Writer{Codec: c, Method: method, Param: param}
	require.NoError(t, w.Compress(&buf, src))
	return buf.Bytes()
}

func decompress(t *testing.T, stream []byte) ([]byte, container.Header, error) {
	t.Helper()
	reg, err := app.NewRegistry()
	require.NoError(t, err)
	r := &container.Reader{Codecs: reg}
	return r.Decompress(bytes.NewReader(stream))
}

func TestRoundTripAllMethods(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	src := make([]byte, 300000)
	for i := range src {
		// Compressible but not trivial.
		src[i] = byte(rnd.Intn(16) * rnd.Intn(2))
	}

	for _, tt := range []struct {
		name  string
		param uint32
	}{
		{"raw", 0},
		{"rle", 0},
		{"huffman", 0},
		{"phasedin", 32},
		{"lz4", 0},
		{"zstd", 3},
	} {
		stream := compress(t, tt.name, tt.param, src)
		got, hdr, err := decompress(t, stream)
		require.NoError(t, err, tt.name)
		require.True(t, bytes.Equal(src, got), tt.name)
		require.Equal(t, tt.name, hdr.Method.String())
		require.Equal(t, tt.param, hdr.Param)
		require.Equal(t, uint64(len(src)), hdr.RawSize)
	}
}

func TestRoundTripEmpty(t *testing.T) {
	stream := compress(t, "zstd", 0, nil)
	got, hdr, err := decompress(t, stream)
	require.NoError(t, err)
	require.Empty(t, got)
	require.Equal(t, uint64(0), hdr.RawSize)
}

func TestMultiBlock(t *testing.T) {
	// 2.5 MiB spans three blocks at the 1 MiB block size.
	src := bytes.Repeat([]byte("0123456789abcdef"), 160*1024)
	stream := compress(t, "lz4", 0, src)

	hdr, stats, err := container.Stat(bytes.NewReader(stream))
	require.NoError(t, err)
	require.Equal(t, 3, stats.Blocks)
	require.Equal(t, uint64(len(src)), hdr.RawSize)
	require.Positive(t, stats.Compressed)

	got, _, err := decompress(t, stream)
	require.NoError(t, err)
	require.True(t, bytes.Equal(src, got))
}

func TestCorruptPayloadDetected(t *testing.T) {
	src := bytes.Repeat([]byte("squash"), 10000)
	stream := compress(t, "huffman", 0, src)

	// Flip one bit in the last payload byte.
	bad := append([]byte(nil), stream...)
	bad[len(bad)-1] ^= 0x01
	_, _, err := decompress(t, bad)
	require.ErrorContains(t, err, "checksum")
}

func TestCorruptHeaderDetected(t *testing.T) {
	src := []byte("some data")
	stream := compress(t, "raw", 0, src)

	bad := append([]byte(nil), stream...)
	bad[0] = 'X'
	_, _, err := decompress(t, bad)
	require.ErrorContains(t, err, "magic")

	bad = append(bad[:0], stream...)
	bad[4] = 99
	_, _, err = decompress(t, bad)
	require.ErrorContains(t, err, "version")
}

func TestUnknownMethod(t *testing.T) {
	stream := compress(t, "raw", 0, []byte("data"))
	bad := append([]byte(nil), stream...)
	bad[5] = 0xEE
	_, _, err := decompress(t, bad)
	require.ErrorContains(t, err, "not implemented")
}

func TestTruncatedStream(t *testing.T) {
	src := bytes.Repeat([]byte("squash"), 1000)
	stream := compress(t, "rle", 0, src)

	_, _, err := decompress(t, stream[:len(stream)-3])
	require.Error(t, err)

	_, _, err = decompress(t, stream[:10])
	require.Error(t, err)
}

// The header digest catches raw-size tampering that per-block checksums
// cannot see.
func TestDigestMismatchDetected(t *testing.T) {
	src := []byte("payload payload payload")
	stream := compress(t, "raw", 0, src)

	bad := append([]byte(nil), stream...)
	sum := digest.Sum([]byte("something else"))
	copy(bad[18:18+digest.Size], sum[:])
	_, _, err := decompress(t, bad)
	require.ErrorContains(t, err, "digest")
}

func TestPhasedInParamRoundTrip(t *testing.T) {
	src := make([]byte, 500)
	for i := range src {
		src[i] = byte(i % 20)
	}
	stream := compress(t, "phasedin", 20, src)

	got, hdr, err := decompress(t, stream)
	require.NoError(t, err)
	require.True(t, bytes.Equal(src, got))
	require.Equal(t, codec.Params{Symbols: 20}, hdr.Params())
}
