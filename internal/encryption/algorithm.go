package encryption

// Algorithm selects the cipher applied to file contents.
type Algorithm byte

const (
	// AlgorithmRC4 applies a one-shot RC4 keystream; the same invocation
	// encrypts and decrypts.
	AlgorithmRC4 Algorithm = iota
	// AlgorithmChaCha20Poly1305 seals or opens an authenticated envelope.
	AlgorithmChaCha20Poly1305
)
