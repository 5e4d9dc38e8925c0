package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gorc/internal/logic"
)

// NewKeygenCommand creates a new cobra command for the keygen subcommand.
func NewKeygenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a random 256-bit key for ChaCha20-Poly1305",
		Long:  "Print 32 random bytes as lowercase hex pairs separated by spaces.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.Keygen(cmd.OutOrStdout())
		},
	}
}
