package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var validSchemes = []string{"direct", "word-level", "compositional", "positional"}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCodec(); err != nil {
		return err
	}
	if err := c.validateAlphabet(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateCodec() error {
	valid := false
	for _, scheme := range validSchemes {
		if c.Codec.Scheme == scheme {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("codec.scheme: unsupported value %q (valid: %s)",
			c.Codec.Scheme, strings.Join(validSchemes, ", "))
	}

	switch c.Codec.OnUnknown {
	case "drop", "placeholder":
	default:
		return fmt.Errorf("codec.on_unknown: unsupported value %q (valid: drop, placeholder)", c.Codec.OnUnknown)
	}

	if c.Codec.OnUnknown == "placeholder" && c.Codec.Placeholder == "" {
		return errors.New("codec.placeholder must be set when codec.on_unknown is \"placeholder\"")
	}
	return nil
}

func (c *Config) validateAlphabet() error {
	if c.Alphabet.Path == "" {
		return nil
	}
	info, err := os.Stat(c.Alphabet.Path)
	if err != nil {
		return fmt.Errorf("alphabet.path: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("alphabet.path %q is a directory", c.Alphabet.Path)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (valid: console, json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q (valid: debug, info, warn, error)", c.Logging.Level)
	}
	return nil
}
