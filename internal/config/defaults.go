package config

import "typograph"

const (
	defaultEscape            = "none"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
	defaultThresholdCurrency = 3
	defaultThresholdUnit     = 2
	defaultThresholdRealWord = 3
)

// Default returns a Config populated with repository defaults: every
// substitution enabled, French spacing off, no escaping.
func Default() Config {
	return Config{
		Format: Format{
			Quotes:         true,
			Ellipsis:       true,
			Dashes:         true,
			Guillemets:     true,
			ThresholdQuote: typograph.DefaultQuoteThreshold,
		},
		French: French{
			Enabled:           false,
			ThresholdCurrency: defaultThresholdCurrency,
			ThresholdUnit:     defaultThresholdUnit,
			ThresholdRealWord: defaultThresholdRealWord,
		},
		Output: Output{
			Escape: defaultEscape,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
