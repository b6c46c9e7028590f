package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks required values and ranges
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errAPIKeyRequired
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidConfig, err)
	}
	return nil
}

// Warnings lists non-fatal problems such as example secrets left in place
func (c *Config) Warnings() []string {
	var warnings []string
	if c.DBPassword == ExampleDBPassword {
		warnings = append(warnings, WarnMsgExampleDBPassword)
	}
	if c.APIKey == ExampleAPIKey {
		warnings = append(warnings, WarnMsgExampleAPIKey)
	}
	if c.DevMode && c.IsProduction() {
		warnings = append(warnings, WarnMsgDevModeInProd)
	}
	return warnings
}
