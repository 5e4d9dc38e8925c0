package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gorc/internal/config"
	"github.com/idelchi/gorc/internal/encryption"
	"github.com/idelchi/gorc/internal/logic"
)

// NewChachaCommand creates a new cobra command for the chacha subcommand.
func NewChachaCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chacha [flags]",
		Short: "Encrypt or decrypt files with ChaCha20-Poly1305",
		Long: `Seal each file into an authenticated envelope (nonce || ciphertext || tag),
or open such an envelope, overwriting the file in place. Keys are exactly
32 bytes. Decryption fails entire on any tampering; no partial plaintext
is ever written.`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := unmarshal(cmd, cfg); err != nil {
				return err
			}

			return cfg.ValidateDirection()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.Run(cfg, encryption.AlgorithmChaCha20Poly1305)
		},
	}

	addCommonFlags(cmd)

	cmd.Flags().Bool("encrypt", false, "Encrypt the files")
	cmd.Flags().Bool("decrypt", false, "Decrypt the files")
	cmd.MarkFlagsMutuallyExclusive("encrypt", "decrypt")

	return cmd
}
