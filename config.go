// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"io"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the simulator settings.
//
type Config struct {
	// InputDefault is the value driven by inputs that were never set. Must be
	// one of pullUp, pullDown or floating.
	InputDefault Value `yaml:"input_default" validate:"weak"`
	// LogLevel is used by tools building a logger from the configuration.
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// DefaultConfig returns the default configuration: unset inputs pull down.
//
func DefaultConfig() Config {
	return Config{InputDefault: PullDown, LogLevel: "info"}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// weak: value left by an unset input.
	err := v.RegisterValidation("weak", func(fl validator.FieldLevel) bool {
		switch Value(fl.Field().Uint()) {
		case PullUp, PullDown, Floating:
			return true
		}
		return false
	})
	if err != nil {
		panic(err)
	}
	return v
}

// Validate checks the configuration.
//
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	return nil
}

// SlogLevel returns the slog level matching LogLevel.
//
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// LoadConfig reads a YAML configuration from r. Missing fields keep their
// DefaultConfig value.
//
func LoadConfig(r io.Reader) (Config, error) {
	c := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&c); err != nil && err != io.EOF {
		return c, errors.Wrap(err, "decode configuration")
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}
