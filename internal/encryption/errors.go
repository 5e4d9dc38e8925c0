package encryption

import "errors"

var (
	// ErrKeyInitialization is returned when the key cannot bind to the AEAD algorithm.
	ErrKeyInitialization = errors.New("key initialization failed")
	// ErrEncryption is returned when the seal operation is rejected by the primitive.
	ErrEncryption = errors.New("encryption failed")
	// ErrDecryption is returned when tag verification or decryption fails.
	ErrDecryption = errors.New("decryption failed")
	// ErrTruncatedEnvelope is returned when a file is too short to contain a nonce.
	ErrTruncatedEnvelope = errors.New("file too short to contain a nonce")
)
