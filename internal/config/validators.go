package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/idelchi/gorc/pkg/hexkey"
)

// registerHexTokens adds a custom validator ensuring a field holds parseable
// hex key material (byte tokens or a contiguous hex string).
func registerHexTokens(validate *validator.Validate) error {
	if err := validate.RegisterValidation("hextokens", validateHexTokens); err != nil {
		return fmt.Errorf("registering hextokens validation: %w", err)
	}

	return nil
}

// validateHexTokens checks that the field parses as hex key material.
// Length requirements are algorithm-specific and checked by the processor.
func validateHexTokens(fl validator.FieldLevel) bool {
	_, err := hexkey.Parse(fl.Field().String())

	return err == nil
}
