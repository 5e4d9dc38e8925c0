package encryption

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/idelchi/gorc/internal/config"
	"github.com/idelchi/gorc/pkg/hexkey"
)

const chachaKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func writeTestFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)

	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}

	return path
}

func runProcessor(t *testing.T, cfg *config.Config, algorithm Algorithm) (processed, errored int, err error) {
	t.Helper()

	proc, perr := NewProcessor(cfg, algorithm)
	if perr != nil {
		t.Fatalf("NewProcessor: %v", perr)
	}

	processed, errored, _, err = proc.ProcessFiles()

	return processed, errored, err
}

func TestProcessorChaChaRoundTrip(t *testing.T) {
	original := make([]byte, 100)
	for i := range original {
		original[i] = byte(i)
	}

	path := writeTestFile(t, "data.bin", original)

	cfg := &config.Config{
		Key:      chachaKeyHex,
		Parallel: 1,
		Quiet:    true,
		Encrypt:  true,
		Files:    []string{path},
	}

	if _, _, err := runProcessor(t, cfg, AlgorithmChaCha20Poly1305); err != nil {
		t.Fatalf("encrypt: %v", err)
	}

	sealed, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading sealed file: %v", err)
	}

	// nonce(12) + tag(16) on top of the plaintext.
	if len(sealed) != len(original)+EnvelopeOverhead {
		t.Fatalf("sealed file length = %d, want %d", len(sealed), len(original)+EnvelopeOverhead)
	}

	if bytes.Contains(sealed, original) {
		t.Fatal("sealed file contains the plaintext")
	}

	cfg.Encrypt = false
	cfg.Decrypt = true

	if _, _, err := runProcessor(t, cfg, AlgorithmChaCha20Poly1305); err != nil {
		t.Fatalf("decrypt: %v", err)
	}

	recovered, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading recovered file: %v", err)
	}

	if !bytes.Equal(recovered, original) {
		t.Errorf("recovered %d bytes, not byte-exact with original", len(recovered))
	}
}

func TestProcessorChaChaTruncatedFile(t *testing.T) {
	original := []byte("short")
	path := writeTestFile(t, "short.bin", original)

	cfg := &config.Config{
		Key:      chachaKeyHex,
		Parallel: 1,
		Quiet:    true,
		Decrypt:  true,
		Files:    []string{path},
	}

	processed, errored, err := runProcessor(t, cfg, AlgorithmChaCha20Poly1305)
	if !errors.Is(err, ErrTruncatedEnvelope) {
		t.Fatalf("decrypting %d-byte file: got %v, want ErrTruncatedEnvelope", len(original), err)
	}

	if processed != 0 || errored != 1 {
		t.Errorf("processed = %d, errored = %d; want 0, 1", processed, errored)
	}

	// Failure must not touch the file.
	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}

	if !bytes.Equal(contents, original) {
		t.Errorf("file modified on failed decrypt: %x", contents)
	}
}

func TestProcessorChaChaTamperedFile(t *testing.T) {
	path := writeTestFile(t, "data.bin", []byte("some plaintext worth protecting"))

	cfg := &config.Config{
		Key:      chachaKeyHex,
		Parallel: 1,
		Quiet:    true,
		Encrypt:  true,
		Files:    []string{path},
	}

	if _, _, err := runProcessor(t, cfg, AlgorithmChaCha20Poly1305); err != nil {
		t.Fatalf("encrypt: %v", err)
	}

	sealed, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading sealed file: %v", err)
	}

	sealed[len(sealed)-1] ^= 0x01

	if err := os.WriteFile(path, sealed, 0o600); err != nil {
		t.Fatalf("writing tampered file: %v", err)
	}

	cfg.Encrypt = false
	cfg.Decrypt = true

	if _, _, err := runProcessor(t, cfg, AlgorithmChaCha20Poly1305); !errors.Is(err, ErrDecryption) {
		t.Fatalf("decrypting tampered file: got %v, want ErrDecryption", err)
	}
}

func TestProcessorRC4RoundTrip(t *testing.T) {
	original := []byte("files encrypted twice with the same keystream come back")
	path := writeTestFile(t, "data.bin", original)

	cfg := &config.Config{
		Key:      "01 02 03 04 05",
		Parallel: 1,
		Quiet:    true,
		Files:    []string{path},
	}

	if _, _, err := runProcessor(t, cfg, AlgorithmRC4); err != nil {
		t.Fatalf("first pass: %v", err)
	}

	encrypted, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading encrypted file: %v", err)
	}

	if len(encrypted) != len(original) {
		t.Fatalf("encrypted file length = %d, want %d", len(encrypted), len(original))
	}

	if bytes.Equal(encrypted, original) {
		t.Fatal("file unchanged after first pass")
	}

	if _, _, err := runProcessor(t, cfg, AlgorithmRC4); err != nil {
		t.Fatalf("second pass: %v", err)
	}

	recovered, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading recovered file: %v", err)
	}

	if !bytes.Equal(recovered, original) {
		t.Errorf("recovered = %q, want %q", recovered, original)
	}
}

func TestProcessorRC4LegacyTokenOverride(t *testing.T) {
	original := []byte("ADMIN_TOKEN and some payload")
	path := writeTestFile(t, "token.bin", original)

	cfg := &config.Config{
		Key:                 "11 22 33 44 55",
		Parallel:            1,
		Quiet:               true,
		LegacyTokenOverride: true,
		Files:               []string{path},
	}

	if _, _, err := runProcessor(t, cfg, AlgorithmRC4); err != nil {
		t.Fatalf("encrypt: %v", err)
	}

	// The ciphertext was produced under the fixed legacy key, not the
	// caller's. Decrypting with the fixed key recovers the file.
	fixed := &config.Config{
		Key:      hexkey.Format([]byte{0x0b, 0x0a, 0x0d, 0x0c, 0x00, 0x0d, 0x0e}),
		Parallel: 1,
		Quiet:    true,
		Files:    []string{path},
	}

	if _, _, err := runProcessor(t, fixed, AlgorithmRC4); err != nil {
		t.Fatalf("decrypt: %v", err)
	}

	recovered, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading recovered file: %v", err)
	}

	if !bytes.Equal(recovered, original) {
		t.Errorf("recovered = %q, want %q", recovered, original)
	}
}

func TestProcessorParallelFiles(t *testing.T) {
	dir := t.TempDir()

	var files []string

	originals := make(map[string][]byte)

	for _, name := range []string{"a.bin", "b.bin", "c.bin", "d.bin"} {
		data := bytes.Repeat([]byte(name), 50)
		path := filepath.Join(dir, name)

		if err := os.WriteFile(path, data, 0o600); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}

		files = append(files, path)
		originals[path] = data
	}

	cfg := &config.Config{
		Key:      chachaKeyHex,
		Parallel: 4,
		Quiet:    true,
		Encrypt:  true,
		Files:    files,
	}

	processed, errored, err := runProcessor(t, cfg, AlgorithmChaCha20Poly1305)
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}

	if processed != len(files) || errored != 0 {
		t.Fatalf("processed = %d, errored = %d; want %d, 0", processed, errored, len(files))
	}

	cfg.Encrypt = false
	cfg.Decrypt = true

	if _, _, err := runProcessor(t, cfg, AlgorithmChaCha20Poly1305); err != nil {
		t.Fatalf("decrypt: %v", err)
	}

	for path, want := range originals {
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading %s: %v", path, err)
		}

		if !bytes.Equal(got, want) {
			t.Errorf("%s not recovered", path)
		}
	}
}

func TestNewProcessorKeyValidation(t *testing.T) {
	files := []string{"unused"}

	tests := []struct {
		name      string
		key       string
		algorithm Algorithm
		wantErr   bool
	}{
		{name: "rc4 minimum", key: "01 02 03 04 05", algorithm: AlgorithmRC4},
		{name: "rc4 too short", key: "01 02 03 04", algorithm: AlgorithmRC4, wantErr: true},
		{name: "rc4 too long", key: strings.Repeat("ab ", 257), algorithm: AlgorithmRC4, wantErr: true},
		{name: "chacha exact", key: chachaKeyHex, algorithm: AlgorithmChaCha20Poly1305},
		{name: "chacha wrong length", key: "01 02 03 04 05", algorithm: AlgorithmChaCha20Poly1305, wantErr: true},
		{name: "garbage", key: "zz", algorithm: AlgorithmRC4, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &config.Config{Key: tc.key, Parallel: 1, Files: files}

			_, err := NewProcessor(cfg, tc.algorithm)
			if (err != nil) != tc.wantErr {
				t.Errorf("NewProcessor: err = %v, wantErr = %v", err, tc.wantErr)
			}
		})
	}
}

func TestNewProcessorKeyFile(t *testing.T) {
	keyPath := writeTestFile(t, "key.txt", []byte("01 02 03 04 05\n"))

	cfg := &config.Config{KeyFile: keyPath, Parallel: 1, Files: []string{"unused"}}

	proc, err := NewProcessor(cfg, AlgorithmRC4)
	if err != nil {
		t.Fatalf("NewProcessor: %v", err)
	}

	if !bytes.Equal(proc.key, []byte{0x01, 0x02, 0x03, 0x04, 0x05}) {
		t.Errorf("key = %x, want 0102030405", proc.key)
	}
}
