package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gorc/internal/config"
	"github.com/idelchi/gorc/internal/encryption"
	"github.com/idelchi/gorc/internal/logic"
)

// NewRC4Command creates a new cobra command for the rc4 subcommand.
func NewRC4Command(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rc4 [flags]",
		Short: "Encrypt or decrypt files in place with RC4",
		Long: `Apply a one-shot RC4 keystream to each file, overwriting it in place.
The operation is symmetric: an identical invocation encrypts or decrypts.
Keys are 5 to 256 bytes (40 to 2048 bits).

RC4 is cryptographically broken; use this command only for legacy data.`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := unmarshal(cmd, cfg); err != nil {
				return err
			}

			return cfg.Validate()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.Run(cfg, encryption.AlgorithmRC4)
		},
	}

	addCommonFlags(cmd)

	cmd.Flags().Bool("legacy-token-override", false,
		"Process buffers starting with ADMIN_TOKEN under the legacy fixed key")

	return cmd
}
