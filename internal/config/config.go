package config

import (
	stderrors "errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/creasty/defaults"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix is prepended to every environment variable the configuration reads.
const EnvPrefix = "TYPE_CATALOG_"

// Registries.
const (
	RegistryCLR = "clr"
	RegistryGo  = "go"
)

// Report formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// ErrInvalidConfiguration is attached to errors returned by Validate.
var ErrInvalidConfiguration = stderrors.New("invalid configuration")

// Config defines the settings of the type-catalog command.
type Config struct {
	Registry         string `env:"REGISTRY" default:"clr"`
	Format           string `env:"FORMAT" default:"text"`
	CorrectedBoolean bool   `env:"CORRECTED_BOOLEAN"`
	// zapcore.Level at 0 is for info level.
	LogLevel zapcore.Level `env:"LOG_LEVEL" default:"0"`
}

// Validate checks constraints in the configuration and returns an error if they are violated.
func (c *Config) Validate() error {
	switch c.Registry {
	case RegistryCLR, RegistryGo:
	default:
		return fmt.Errorf("registry %q is not valid. Must be either %q or %q", c.Registry, RegistryCLR, RegistryGo)
	}

	switch c.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("format %q is not valid. Must be either %q or %q", c.Format, FormatText, FormatYAML)
	}

	return nil
}

// FromEnv loads the configuration from environment variables prefixed with EnvPrefix.
// A nil environment reads the process environment.
func FromEnv(environment map[string]string) (*Config, error) {
	var c Config

	if err := defaults.Set(&c); err != nil {
		return nil, errors.Wrap(err, "can't set config defaults")
	}

	opts := env.Options{Prefix: EnvPrefix, Environment: environment}
	if err := env.ParseWithOptions(&c, opts); err != nil {
		return nil, errors.Wrap(err, "can't parse environment variables")
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, errors.WithStack(err))
	}

	return &c, nil
}
