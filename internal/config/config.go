package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"typograph"
	"typograph/french"
)

//go:embed sample_config.toml
var sampleConfig string

// Format contains the toggles and threshold for the normalization
// pipeline stages.
type Format struct {
	Quotes         bool `toml:"quotes"`
	Ellipsis       bool `toml:"ellipsis"`
	Dashes         bool `toml:"dashes"`
	Guillemets     bool `toml:"guillemets"`
	ThresholdQuote int  `toml:"threshold_quote"`
}

// French contains the French spacing formatter settings.
type French struct {
	Enabled           bool `toml:"enabled"`
	ThresholdCurrency int  `toml:"threshold_currency"`
	ThresholdUnit     int  `toml:"threshold_unit"`
	ThresholdRealWord int  `toml:"threshold_real_word"`
}

// Output contains settings for the final escaping pass.
type Output struct {
	// Escape selects the format escaper applied after formatting:
	// "none", "html", or "tex".
	Escape string `toml:"escape"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for the typograph CLI.
type Config struct {
	Format  Format  `toml:"format"`
	French  French  `toml:"french"`
	Output  Output  `toml:"output"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default
// configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/typograph/config.toml")
}

// Load locates, parses, and validates a configuration file. When no
// file exists the returned config holds repository defaults; the bool
// reports whether a file was read.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}

	projectPath, err := filepath.Abs("typograph.toml")
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// CreateSample writes the embedded sample configuration to target.
func CreateSample(target string) error {
	if err := os.WriteFile(target, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// ExpandPath resolves a leading tilde and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("path is empty")
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(path)
}

// EngineConfig adapts the file-backed settings to the explicit value
// the library takes.
func (c *Config) EngineConfig() typograph.Config {
	return typograph.Config{
		Quotes:         c.Format.Quotes,
		Ellipsis:       c.Format.Ellipsis,
		Dashes:         c.Format.Dashes,
		Guillemets:     c.Format.Guillemets,
		QuoteThreshold: c.Format.ThresholdQuote,
	}
}

// FrenchFormatter builds the spacing formatter from the [french]
// section.
func (c *Config) FrenchFormatter() *french.Formatter {
	return &french.Formatter{
		ThresholdCurrency: c.French.ThresholdCurrency,
		ThresholdUnit:     c.French.ThresholdUnit,
		ThresholdRealWord: c.French.ThresholdRealWord,
	}
}
