package encryption

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/idelchi/gorc/internal/config"
	"github.com/idelchi/gorc/internal/fileutil"
	"github.com/idelchi/gorc/pkg/hexkey"
	"github.com/idelchi/gorc/pkg/rc4"
)

// Processor handles the encryption and decryption of files.
type Processor struct {
	// cfg contains runtime configuration options
	cfg *config.Config

	// algorithm selects the cipher path
	algorithm Algorithm

	// key stores raw key bytes
	key []byte

	// random supplies nonce bytes; crypto/rand outside of tests
	random io.Reader

	// results channels processing outcomes to the printer goroutine
	results chan Result
}

// NewProcessor creates a new Processor with the given configuration.
// It resolves the key material and validates its length for the algorithm.
func NewProcessor(cfg *config.Config, algorithm Algorithm) (*Processor, error) {
	keyText := cfg.Key

	if cfg.KeyFile != "" {
		raw, err := os.ReadFile(cfg.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("reading key file: %w", err)
		}

		keyText = string(raw)
	}

	encryptionKey, err := hexkey.Parse(keyText)
	if err != nil {
		return nil, fmt.Errorf("reading key: %w", err)
	}

	switch algorithm {
	case AlgorithmRC4:
		if len(encryptionKey) < rc4.MinKeySize || len(encryptionKey) > rc4.MaxKeySize {
			return nil, fmt.Errorf(
				"rc4: key must be %d to %d bytes, got %d",
				rc4.MinKeySize, rc4.MaxKeySize, len(encryptionKey),
			)
		}
	case AlgorithmChaCha20Poly1305:
		if len(encryptionKey) != KeySize {
			return nil, fmt.Errorf(
				"%w: key must be %d bytes, got %d",
				ErrKeyInitialization, KeySize, len(encryptionKey),
			)
		}
	}

	return &Processor{
		cfg:       cfg,
		algorithm: algorithm,
		key:       encryptionKey,
		random:    rand.Reader,
		results:   make(chan Result, len(cfg.Files)),
	}, nil
}

// ProcessFiles concurrently processes all files specified in the configuration.
// It encrypts or decrypts files based on the configuration settings.
// Returns the number of successfully processed files and the number of errors.
//
//nolint:cyclop
func (p *Processor) ProcessFiles() (processed, errored int, totalSize int64, err error) {
	group := errgroup.Group{}
	group.SetLimit(p.cfg.Parallel)

	done := make(chan struct{})

	go func() {
		defer close(done)

		for result := range p.results {
			if result.Error != nil {
				errored++

				fmt.Fprintf(os.Stderr, "Error processing %q: %v\n", result.Input, result.Error)
			} else {
				processed++

				totalSize += result.OutputSize

				if !p.cfg.Quiet {
					fmt.Printf("Processed %q\n", result.Input) //nolint:forbidigo
				}
			}
		}
	}()

	for _, file := range p.cfg.Files {
		group.Go(func() error {
			size, err := p.processFile(file)
			if err != nil {
				p.results <- Result{Input: file, Error: err}

				return err
			}

			p.results <- Result{Input: file, OutputSize: size}

			return nil
		})
	}

	err = group.Wait()

	close(p.results)

	<-done // Wait for printer to finish

	if err != nil {
		return processed, errored, totalSize, fmt.Errorf("processing files: %w", err)
	}

	return processed, errored, totalSize, nil
}

// processFile transforms one file in place. The file handle is exclusively
// owned for the duration of the operation; the entire content is read,
// transformed, and written back over the prior content.
func (p *Processor) processFile(filename string) (size int64, err error) {
	file, err := os.OpenFile(filename, os.O_RDWR, 0)
	if err != nil {
		return 0, fmt.Errorf("opening file: %w", err)
	}

	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing file: %w", cerr)
		}
	}()

	contents, err := io.ReadAll(file)
	if err != nil {
		return 0, fmt.Errorf("reading file: %w", err)
	}

	output, err := p.transform(contents)
	if err != nil {
		return 0, err
	}

	if err := fileutil.Rewrite(file, output); err != nil {
		return 0, fmt.Errorf("writing file: %w", err)
	}

	return int64(len(output)), nil
}

// transform applies the configured cipher path to contents, taking
// exclusive temporary ownership of the buffer.
func (p *Processor) transform(contents []byte) ([]byte, error) {
	switch p.algorithm {
	case AlgorithmChaCha20Poly1305:
		if p.cfg.Decrypt {
			return openEnvelope(p.key, contents)
		}

		return sealEnvelope(p.random, p.key, contents)
	default:
		apply := rc4.XORKeyStreamOneShot
		if p.cfg.LegacyTokenOverride {
			apply = rc4.XORKeyStreamLegacy
		}

		if err := apply(p.key, contents); err != nil {
			return nil, err
		}

		return contents, nil
	}
}
