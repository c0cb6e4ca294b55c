package sampling

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyedPRNG(t *testing.T) {
	key := []byte{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07}

	a, err := NewKeyedPRNG(key)
	require.NoError(t, err)
	b, err := NewKeyedPRNG(key)
	require.NoError(t, err)

	require.Equal(t, key, a.Key())

	bufA := make([]byte, 1024)
	bufB := make([]byte, 1024)
	_, err = a.Read(bufA)
	require.NoError(t, err)
	_, err = b.Read(bufB)
	require.NoError(t, err)
	require.True(t, bytes.Equal(bufA, bufB))

	// Reset rewinds to the start of the stream.
	a.Reset()
	bufC := make([]byte, 1024)
	_, err = a.Read(bufC)
	require.NoError(t, err)
	require.True(t, bytes.Equal(bufA, bufC))
}

func TestThreadSafePRNG(t *testing.T) {
	prng, err := NewPRNG()
	require.NoError(t, err)
	buf := make([]byte, 64)
	n, err := prng.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 64, n)
}

func TestInt64Range(t *testing.T) {
	prng, err := NewKeyedPRNG(nil)
	require.NoError(t, err)
	for i := 0; i < 1000; i++ {
		v := Int64Range(prng, -50, 50)
		require.GreaterOrEqual(t, v, int64(-50))
		require.Less(t, v, int64(50))
	}
}
