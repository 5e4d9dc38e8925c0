// Package hexkey parses and formats hexadecimal key material.
//
// Keys are written as two-digit hex byte tokens separated by whitespace,
// each optionally prefixed with "0x". A single contiguous hex string is
// also accepted.
package hexkey

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/idelchi/gogen/pkg/key"
)

// ErrEmpty is returned when the key text contains no tokens.
var ErrEmpty = errors.New("empty key")

// Parse decodes key material from its textual form.
func Parse(text string) ([]byte, error) {
	fields := strings.Fields(text)

	switch len(fields) {
	case 0:
		return nil, ErrEmpty
	case 1:
		decoded, err := key.FromHex(strip(fields[0]))
		if err != nil {
			return nil, fmt.Errorf("decoding key: %w", err)
		}

		return decoded, nil
	}

	decoded := make([]byte, len(fields))

	for i, field := range fields {
		value, err := strconv.ParseUint(strip(field), 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid key hex byte %q: %w", field, err)
		}

		decoded[i] = byte(value)
	}

	return decoded, nil
}

// Format renders key bytes as lowercase hex pairs separated by spaces.
func Format(keyBytes []byte) string {
	pairs := make([]string, len(keyBytes))

	for i, b := range keyBytes {
		pairs[i] = fmt.Sprintf("%02x", b)
	}

	return strings.Join(pairs, " ")
}

// strip removes an optional 0x/0X prefix from a hex token.
func strip(token string) string {
	if len(token) > 2 && (token[:2] == "0x" || token[:2] == "0X") {
		return token[2:]
	}

	return token
}
