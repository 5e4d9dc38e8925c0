// Package logic implements the core business logic for the encryption/decryption.
package logic

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/gorc/internal/config"
	"github.com/idelchi/gorc/internal/encryption"
	"github.com/idelchi/gorc/pkg/hexkey"
)

// Run processes the configured files with the given cipher algorithm.
func Run(cfg *config.Config, algorithm encryption.Algorithm) error {
	start := time.Now()

	proc, err := encryption.NewProcessor(cfg, algorithm)
	if err != nil {
		return fmt.Errorf("creating processor: %w", err)
	}

	processed, errored, totalSize, err := proc.ProcessFiles()

	if cfg.Stats {
		printStats(processed, errored, totalSize, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("running logic: %w", err)
	}

	return nil
}

// Keygen writes a fresh random key to out as lowercase hex pairs
// separated by spaces. It touches no files.
func Keygen(out io.Writer) error {
	key, err := encryption.GenerateKey(rand.Reader)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, hexkey.Format(key))

	return nil
}

func printStats(processed, errored int, totalSize int64, duration time.Duration) {
	fmt.Fprintf(os.Stderr, "\nStats\n")
	fmt.Fprintf(os.Stderr, "  Processed: %d\n", processed)
	fmt.Fprintf(os.Stderr, "  Errors:    %d\n", errored)
	//nolint:gosec // totalSize is always non-negative (sum of file sizes)
	fmt.Fprintf(os.Stderr, "  Size:      %s\n", humanize.IBytes(uint64(max(0, totalSize))))
	fmt.Fprintf(os.Stderr, "  Duration:  %s\n", duration.Round(time.Millisecond))
}
