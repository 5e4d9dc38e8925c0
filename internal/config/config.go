// Package config defines the runtime configuration for gorc.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config holds the flags and positional arguments shared by the commands.
type Config struct {
	// Common flags
	Key      string `mapstructure:"key"      validate:"required_without=KeyFile,excluded_with=KeyFile,omitempty,hextokens"`
	KeyFile  string `mapstructure:"key-file"`
	Parallel int    `mapstructure:"parallel" validate:"min=1"`
	Quiet    bool   `mapstructure:"quiet"`
	Stats    bool   `mapstructure:"stats"`

	// Command-specific flags
	Encrypt             bool `mapstructure:"encrypt"`
	Decrypt             bool `mapstructure:"decrypt"`
	LegacyTokenOverride bool `mapstructure:"legacy-token-override"`

	// Files to process
	Files []string `mapstructure:"file" validate:"min=1"`
}

// Validate validates the configuration against the struct tags.
func (c Config) Validate() error {
	validate := validator.New()

	if err := registerHexTokens(validate); err != nil {
		return err
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	return nil
}

// ValidateDirection additionally requires exactly one of --encrypt and
// --decrypt; they carry no safe default since running the wrong direction
// destroys the file.
func (c Config) ValidateDirection() error {
	if c.Encrypt == c.Decrypt {
		return fmt.Errorf("exactly one of --encrypt and --decrypt must be specified")
	}

	return c.Validate()
}
