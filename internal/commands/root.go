package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/gorc/internal/config"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version)

	root.Use = "gorc [flags] command [flags]"
	root.Short = "File encryption utility"
	root.Long = `A file encryption utility with two cipher paths: a legacy RC4 stream
cipher and a ChaCha20-Poly1305 authenticated envelope.
Provides commands for key generation, encryption, and decryption.`

	root.AddCommand(NewRC4Command(cfg), NewChachaCommand(cfg), NewKeygenCommand())

	return root
}
