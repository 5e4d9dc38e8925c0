package encryption

import (
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

const (
	// KeySize is the required ChaCha20-Poly1305 key size in bytes.
	KeySize = chacha20poly1305.KeySize
	// NonceSize is the ChaCha20-Poly1305 nonce size in bytes.
	NonceSize = chacha20poly1305.NonceSize
	// TagSize is the Poly1305 authentication tag size in bytes.
	TagSize = chacha20poly1305.Overhead
)

// seal encrypts plaintext in place with ChaCha20-Poly1305 and appends the
// authentication tag, using empty associated data. The nonce must be unique
// for the key; reusing a (key, nonce) pair across two plaintexts breaks both
// confidentiality and integrity.
//
// The returned slice shares plaintext's backing array when capacity allows.
func seal(key, nonce, plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyInitialization, err)
	}

	if len(nonce) != aead.NonceSize() {
		return nil, fmt.Errorf("%w: nonce must be %d bytes, got %d", ErrEncryption, aead.NonceSize(), len(nonce))
	}

	return aead.Seal(plaintext[:0], nonce, plaintext, nil), nil
}

// open verifies and decrypts a ciphertext || tag buffer in place. On success
// the returned slice is the buffer truncated to plaintext length. On any
// failure the whole buffer is zeroed before returning, so unauthenticated
// bytes are never observable by the caller.
func open(key, nonce, buf []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyInitialization, err)
	}

	if len(nonce) != aead.NonceSize() {
		clear(buf)

		return nil, fmt.Errorf("%w: nonce must be %d bytes, got %d", ErrDecryption, aead.NonceSize(), len(nonce))
	}

	plaintext, err := aead.Open(buf[:0], nonce, buf, nil)
	if err != nil {
		clear(buf)

		return nil, fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	return plaintext, nil
}
