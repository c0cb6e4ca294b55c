// Package sampling provides pseudo-random byte sources: a crypto/rand backed
// source and a keyed, reproducible source for deterministic test inputs.
package sampling

import (
	"crypto/rand"
	"encoding/binary"
	"io"

	"golang.org/x/crypto/blake2b"
)

// PRNG is an interface for the generation of pseudo-random bytes.
type PRNG interface {
	io.Reader
}

// ThreadSafePRNG is a PRNG backed by crypto/rand, safe for concurrent use.
type ThreadSafePRNG struct {
}

// NewPRNG returns a new PRNG that is thread-safe.
func NewPRNG() (*ThreadSafePRNG, error) {
	return &ThreadSafePRNG{}, nil
}

// Read fills sum with random bytes.
func (prng *ThreadSafePRNG) Read(sum []byte) (n int, err error) {
	return rand.Read(sum)
}

// KeyedPRNG deterministically expands a key into an unbounded stream of
// bytes using the blake2b XOF. Two KeyedPRNG instantiated with the same key
// produce the same stream, which makes randomized tests reproducible.
// KeyedPRNG is not safe for concurrent use.
type KeyedPRNG struct {
	key []byte
	xof blake2b.XOF
}

// NewKeyedPRNG creates a new KeyedPRNG from the given key. A nil key is
// treated as an empty key.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	var err error
	prng := &KeyedPRNG{key: append([]byte{}, key...)}
	prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	return prng, err
}

// Key returns a copy of the key used to seed the PRNG.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

// Read fills sum with bytes from the key stream.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	return prng.xof.Read(sum)
}

// Reset rewinds the PRNG to the beginning of its stream.
func (prng *KeyedPRNG) Reset() {
	prng.xof.Reset()
}

// Uint64 draws the next 8 bytes of the stream as a big-endian uint64.
func Uint64(prng PRNG) uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.Read(b); err != nil {
		panic(err)
	}
	return binary.BigEndian.Uint64(b)
}

// Int64Range draws a value uniformly from [min, max).
func Int64Range(prng PRNG, min, max int64) int64 {
	if max <= min {
		panic("cannot Int64Range: max <= min")
	}
	return min + int64(Uint64(prng)%uint64(max-min))
}
