package config

import (
	"fmt"

	"github.com/telar-labs/authguard/guard"
	"github.com/telar-labs/authguard/logger"
	"github.com/telar-labs/authguard/token"
	"github.com/telar-labs/authguard/validation"
)

// ServiceConfig contains the configuration every service mounting the guard
// pipeline needs. Projects extend it by embedding:
//
//	type AppConfig struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    Database db.Config   `yaml:"database" mapstructure:"database"`
//	}
type ServiceConfig struct {
	Name        string        `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string        `yaml:"environment" mapstructure:"environment" validate:"omitempty,oneof=development staging production"`
	Version     string        `yaml:"version" mapstructure:"version"`
	Debug       bool          `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
	Guard       GuardConfig   `yaml:"guard" mapstructure:"guard"`
}

// GuardConfig aggregates the guard pipeline's configuration surface: key
// material for the token codec, the shared signature secret, and the admin
// role name used by the built-in admin policy.
type GuardConfig struct {
	Token     token.Config          `yaml:"token" mapstructure:"token"`
	Signature guard.SignatureConfig `yaml:"signature" mapstructure:"signature"`

	// AdminRole overrides the role string treated as administrator
	// (default: "admin").
	AdminRole string `yaml:"admin_role" mapstructure:"admin_role"`
}

// ApplyDefaults applies default values to all sections.
func (c *GuardConfig) ApplyDefaults() {
	c.Token.ApplyDefaults()
	c.Signature.ApplyDefaults()
	if c.AdminRole == "" {
		c.AdminRole = "admin"
	}
}

// Validate validates all guard sections.
func (c *GuardConfig) Validate() error {
	if err := c.Token.Validate(); err != nil {
		return err
	}
	if err := c.Signature.Validate(); err != nil {
		return err
	}
	return nil
}

// GetServiceConfig returns the base ServiceConfig. Promoted when embedded, so
// embedding structs satisfy the loader's Config interface automatically.
func (c *ServiceConfig) GetServiceConfig() *ServiceConfig {
	return c
}

// ApplyDefaults applies default values to the base configuration.
// Embedding structs override this and call it first.
func (c *ServiceConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	c.Logging.ApplyDefaults()
	c.Guard.ApplyDefaults()
}

// Validate validates the base configuration fields.
// Embedding structs override this and call it first.
func (c *ServiceConfig) Validate() error {
	if err := validation.Validate(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.Guard.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
