// Package encryption provides in-place file encryption using RC4 or
// ChaCha20-Poly1305. ChaCha20-Poly1305 output is framed as
// nonce || ciphertext || tag so that decryption is self-contained given
// only the key. Features concurrent processing of multiple files.
package encryption
