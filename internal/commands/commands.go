package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/gorc/internal/config"
)

// addCommonFlags defines the flags shared by the file-processing commands.
func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayP("file", "f", nil, "File to process, repeatable")
	cmd.Flags().StringP("key", "k", "", `Key as hex byte tokens ("0x01 02 ...") or a contiguous hex string`)
	cmd.Flags().String("key-file", "", "Path to a file containing the key in the same format")
	cmd.Flags().IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	cmd.Flags().BoolP("quiet", "q", false, "Suppress non-error output")
	cmd.Flags().Bool("stats", false, "Print processing statistics to stderr")
}

// unmarshal binds the command's flags and decodes them into cfg.
func unmarshal(cmd *cobra.Command, cfg *config.Config) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	return nil
}
