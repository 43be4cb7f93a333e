package phasedin_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"squash/internal/codec/phasedin"
)

func TestNewRange(t *testing.T) {
	for _, n := range []int{2, 3, 9, 255, 256} {
		c, err := phasedin.New(n)
		require.NoError(t, err, "n=%d", n)
		require.Equal(t, n, c.Symbols())
	}
	for _, n := range []int{-1, 0, 1, 257} {
		_, err := phasedin.New(n)
		require.Error(t, err, "n=%d", n)
	}
}

// Six symbols split as m=2, p=2, P=2: symbols 0 and 1 take two bits,
// 2..5 take three. The packed codes 00 01 100 101 110 111 fill exactly
// two bytes, so the pad byte is zero.
func TestEncodeGolden(t *testing.T) {
	c, err := phasedin.New(6)
	require.NoError(t, err)

	enc, err := c.Encode(nil, []byte{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0b0001_1001, 0b0111_0111}, enc)
}

func TestEncodeGoldenPad(t *testing.T) {
	// n=3: symbol 0 is "0", one bit, leaving seven pad bits.
	c, err := phasedin.New(3)
	require.NoError(t, err)

	enc, err := c.Encode(nil, []byte{0})
	require.NoError(t, err)
	require.Equal(t, []byte{0x07, 0x00}, enc)
}

func TestPowerOfTwoAlphabet(t *testing.T) {
	// n=8 has no long codes: every symbol is exactly three bits.
	c, err := phasedin.New(8)
	require.NoError(t, err)

	enc, err := c.Encode(nil, []byte{7, 0, 7})
	require.NoError(t, err)
	// 111 000 111 packed MSB-first, seven pad bits in the second byte.
	require.Equal(t, []byte{0x07, 0b1110_0011, 0b1000_0000}, enc)
}

func TestRoundTrip(t *testing.T) {
	for _, n := range []int{2, 3, 6, 9, 15, 16, 100, 255, 256} {
		c, err := phasedin.New(n)
		require.NoError(t, err)

		rnd := rand.New(rand.NewSource(int64(n)))
		src := make([]byte, 4096)
		for i := range src {
			src[i] = byte(rnd.Intn(n))
		}

		enc, err := c.Encode(nil, src)
		require.NoError(t, err)
		dec, err := c.Decode(nil, enc)
		require.NoError(t, err)
		require.Equal(t, src, dec, "n=%d", n)
	}
}

func TestRoundTripEmpty(t *testing.T) {
	c, err := phasedin.New(9)
	require.NoError(t, err)

	enc, err := c.Encode(nil, nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0x00}, enc)

	dec, err := c.Decode(nil, enc)
	require.NoError(t, err)
	require.Empty(t, dec)
}

func TestEncodeSymbolOutsideAlphabet(t *testing.T) {
	c, err := phasedin.New(6)
	require.NoError(t, err)

	_, err = c.Encode(nil, []byte{5, 6})
	require.Error(t, err)
}

func TestDecodeMalformed(t *testing.T) {
	c, err := phasedin.New(6)
	require.NoError(t, err)

	_, err = c.Decode(nil, nil)
	require.Error(t, err, "empty input")

	_, err = c.Decode(nil, []byte{8, 0xFF})
	require.Error(t, err, "pad count out of range")

	_, err = c.Decode(nil, []byte{3})
	require.Error(t, err, "pad count without data")

	// Seven pad bits leave a single bit, which cannot hold a two-bit code.
	_, err = c.Decode(nil, []byte{7, 0b1000_0000})
	require.Error(t, err, "truncated code")
}

func BenchmarkEncode(b *testing.B) {
	c, err := phasedin.New(9)
	if err != nil {
		b.Fatal(err)
	}
	src := make([]byte, 64*1024)
	for i := range src {
		src[i] = byte(i % 9)
	}

	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	var dst []byte
	for i := 0; i < b.N; i++ {
		dst, err = c.Encode(dst[:0], src)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	c, err := phasedin.New(9)
	if err != nil {
		b.Fatal(err)
	}
	src := make([]byte, 64*1024)
	for i := range src {
		src[i] = byte(i % 9)
	}
	enc, err := c.Encode(nil, src)
	if err != nil {
		b.Fatal(err)
	}

	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	var dst []byte
	for i := 0; i < b.N; i++ {
		dst, err = c.Decode(dst[:0], enc)
		if err != nil {
			b.Fatal(err)
		}
	}
}
