// Package commands provides the command-line interface for the gorc tool.
//
// It implements commands for:
//   - RC4 en/decryption (symmetric, in place)
//   - ChaCha20-Poly1305 encryption and decryption (authenticated envelope)
//   - key generation
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands
