package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateFormat(); err != nil {
		return err
	}
	if err := c.validateFrench(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateFormat() error {
	if c.Format.ThresholdQuote < 0 {
		return errors.New("format.threshold_quote must not be negative")
	}
	return nil
}

func (c *Config) validateFrench() error {
	if c.French.ThresholdCurrency < 0 {
		return errors.New("french.threshold_currency must not be negative")
	}
	if c.French.ThresholdUnit < 0 {
		return errors.New("french.threshold_unit must not be negative")
	}
	if c.French.ThresholdRealWord < 0 {
		return errors.New("french.threshold_real_word must not be negative")
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Escape {
	case "none", "html", "tex":
		return nil
	default:
		return fmt.Errorf("output.escape: unsupported value %q (expected none, html, or tex)", c.Output.Escape)
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (expected console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q (expected debug, info, warn, or error)", c.Logging.Level)
	}
}
