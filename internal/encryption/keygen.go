package encryption

import (
	"fmt"
	"io"
)

// GenerateKey reads a fresh ChaCha20-Poly1305 key from random.
// Pass crypto/rand.Reader outside of tests.
func GenerateKey(random io.Reader) ([]byte, error) {
	key := make([]byte, KeySize)

	if _, err := io.ReadFull(random, key); err != nil {
		return nil, fmt.Errorf("generating key: %w", err)
	}

	return key, nil
}
