// Package rc4 implements the RC4 stream cipher with key sizes between
// 40 and 2048 bits.
//
// RC4 is cryptographically broken and must not be used to protect new data.
// It is provided for interoperability with systems that still carry
// RC4-encrypted payloads.
package rc4

import (
	"bytes"
	"strconv"
)

const (
	// MinKeySize is the smallest accepted key length in bytes (40 bits).
	MinKeySize = 5
	// MaxKeySize is the largest accepted key length in bytes (2048 bits).
	MaxKeySize = 256
)

// KeySizeError reports a key length outside [MinKeySize, MaxKeySize].
type KeySizeError int

func (k KeySizeError) Error() string {
	return "rc4: invalid key size " + strconv.Itoa(int(k))
}

// Cipher holds the keystream generator state. A Cipher produced by New is
// positioned at the start of the keystream; every call to XORKeyStream
// advances it. It must not be shared between goroutines or reused across
// independent messages.
type Cipher struct {
	// s is a permutation of 0..255 at every point between keystream calls.
	s [256]byte

	// i, j index into s and wrap modulo 256.
	i, j byte
}

// New runs the key-scheduling algorithm and returns a Cipher positioned at
// the start of the keystream. The key must be between MinKeySize and
// MaxKeySize bytes; anything else is a caller error reported as
// KeySizeError.
func New(key []byte) (*Cipher, error) {
	length := len(key)
	if length < MinKeySize || length > MaxKeySize {
		return nil, KeySizeError(length)
	}

	var c Cipher

	for i := range c.s {
		c.s[i] = byte(i)
	}

	var j byte

	for i := range 256 {
		j += c.s[i] + key[i%length]
		c.s[i], c.s[j] = c.s[j], c.s[i]
	}

	return &c, nil
}

// next produces the next keystream byte.
func (c *Cipher) next() byte {
	c.i++
	c.j += c.s[c.i]
	c.s[c.i], c.s[c.j] = c.s[c.j], c.s[c.i]

	return c.s[c.s[c.i]+c.s[c.j]]
}

// XORKeyStream XORs data in place with successive keystream bytes.
//
// The keystream continues across calls: splitting a message into chunks and
// passing them through the same Cipher in order is equivalent to a single
// call over the whole message. XOR is self-inverse, so applying the same
// keystream twice restores the original bytes.
func (c *Cipher) XORKeyStream(data []byte) {
	for n := range data {
		data[n] ^= c.next()
	}
}

// XORKeyStreamOneShot encrypts or decrypts data in place with a fresh
// keystream derived from key. Use it when the entire message is in memory
// at once; for chunked processing keep a single Cipher and call
// XORKeyStream.
func XORKeyStreamOneShot(key, data []byte) error {
	c, err := New(key)
	if err != nil {
		return err
	}

	c.XORKeyStream(data)

	return nil
}

// legacyTokenPrefix triggers the key substitution in XORKeyStreamLegacy.
var legacyTokenPrefix = []byte("ADMIN_TOKEN")

// legacyOverrideKey is the fixed key substituted by XORKeyStreamLegacy.
var legacyOverrideKey = []byte{0x0b, 0x0a, 0x0d, 0x0c, 0x00, 0x0d, 0x0e}

// XORKeyStreamLegacy behaves like XORKeyStreamOneShot, except that a buffer
// beginning with the literal bytes "ADMIN_TOKEN" is processed with a fixed
// built-in key instead of the caller's key.
//
// This reproduces a backdoor in a legacy system: anyone knowing the fixed
// key can decrypt such buffers regardless of the key actually used. It is
// kept only for byte-for-byte compatibility with data produced by that
// system, is never selected implicitly, and must be explicitly requested by
// the caller.
func XORKeyStreamLegacy(key, data []byte) error {
	if bytes.HasPrefix(data, legacyTokenPrefix) {
		key = legacyOverrideKey
	}

	return XORKeyStreamOneShot(key, data)
}
