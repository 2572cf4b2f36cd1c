package config

import "strings"

func (c *Config) normalize() {
	c.Output.Escape = canonical(c.Output.Escape, defaultEscape)
	c.Logging.Format = canonical(c.Logging.Format, defaultLogFormat)
	c.Logging.Level = canonical(c.Logging.Level, defaultLogLevel)
}

func canonical(value, fallback string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return fallback
	}
	return value
}
