/*
Package cprng supplies the random-byte sources used when splitting a
secret. A source is a plain io.Reader so that callers can substitute the
operating system's entropy device, a deterministic stream, or anything
else that produces bytes.
*/
package cprng

import (
	"crypto/rand"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20"
)

// device reads from the operating-system entropy source, looping over
// partial reads until the buffer is full.
type device struct{}

func (device) Read(p []byte) (int, error) {
	n, err := io.ReadFull(rand.Reader, p)
	if err != nil {
		return n, errors.Wrap(err, "cprng: entropy device")
	}
	return n, nil
}

// System returns the operating-system entropy source.
func System() io.Reader {
	return device{}
}

// stream yields the ChaCha20 keystream for a fixed key and nonce.
type stream struct {
	c *chacha20.Cipher
}

func (s *stream) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	s.c.XORKeyStream(p, p)
	return len(p), nil
}

// Stream returns a deterministic source derived from seed. Two streams
// built from the same seed deliver identical bytes, which makes split
// output reproducible for testing and for auditable share regeneration.
// The seed is truncated or zero-padded to the ChaCha20 key size.
func Stream(seed []byte) io.Reader {
	key := make([]byte, chacha20.KeySize)
	copy(key, seed)
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		// only reachable with malformed key or nonce sizes, which are
		// fixed above
		panic(err)
	}
	return &stream{c: c}
}
