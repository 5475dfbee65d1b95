// Package config loads the settings of the logicsim command.
//
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// EnvPath is the environment variable holding the path of the configuration
// file when none is given on the command line.
//
const EnvPath = "LOGICSIM_CONFIG"

// Output formats.
//
const (
	FormatTable = "table"
	FormatCSV   = "csv"
)

// Config holds the command settings.
//
type Config struct {
	DefaultTicks int    `yaml:"default_ticks" validate:"min=1"`
	TableTicks   int    `yaml:"table_ticks" validate:"min=1"`
	LogLevel     string `yaml:"log_level" validate:"oneof=debug info warn error"`
	Format       string `yaml:"format" validate:"oneof=table csv"`
	Strict       bool   `yaml:"strict"`
}

// Default returns the default configuration.
//
func Default() *Config {
	return &Config{
		DefaultTicks: 10,
		TableTicks:   20,
		LogLevel:     "info",
		Format:       FormatTable,
	}
}

var validate = validator.New()

// Validate checks that all settings are within range.
//
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fieldError(fe))
	}
	return errors.New("invalid configuration: " + strings.Join(msgs, "; "))
}

func fieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return fe.Field() + " must be at least " + fe.Param()
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}

// Load reads the YAML configuration file at path on top of the defaults. If
// path is empty, the file named by $LOGICSIM_CONFIG is used, if set. Otherwise
// the defaults are returned.
//
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		path = os.Getenv(EnvPath)
	}
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read configuration")
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	if err = c.Validate(); err != nil {
		return nil, errors.Wrap(err, path)
	}
	return c, nil
}
