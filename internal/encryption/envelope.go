package encryption

import (
	"fmt"
	"io"
)

// EnvelopeOverhead is the growth of a file sealed into an envelope.
const EnvelopeOverhead = NonceSize + TagSize

// sealEnvelope encrypts plaintext under key with a nonce read from random
// and returns the envelope nonce || ciphertext || tag. The nonce is freshly
// generated per call and never derived from prior state.
func sealEnvelope(random io.Reader, key, plaintext []byte) ([]byte, error) {
	nonce := make([]byte, NonceSize, NonceSize+len(plaintext)+TagSize)

	if _, err := io.ReadFull(random, nonce); err != nil {
		return nil, fmt.Errorf("generating nonce: %w", err)
	}

	sealed, err := seal(key, nonce, plaintext)
	if err != nil {
		return nil, err
	}

	return append(nonce, sealed...), nil
}

// openEnvelope splits an envelope into nonce and ciphertext || tag and
// decrypts it in place, returning the recovered plaintext. An envelope
// shorter than a nonce fails before the AEAD primitive is ever invoked.
func openEnvelope(key, envelope []byte) ([]byte, error) {
	if len(envelope) < NonceSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncatedEnvelope, len(envelope))
	}

	nonce, sealed := envelope[:NonceSize], envelope[NonceSize:]

	return open(key, nonce, sealed)
}
