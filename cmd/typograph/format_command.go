package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"typograph"
	"typograph/escape"
)

func newFormatCommand(ctx *commandContext) *cobra.Command {
	var frenchFlag bool
	var escapeFlag string
	var thresholdFlag int
	var noQuotes bool
	var noEllipsis bool
	var noDashes bool
	var noGuillemets bool

	cmd := &cobra.Command{
		Use:   "format [file]",
		Short: "Normalize whitespace, punctuation, and quotation marks",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			engine := cfg.EngineConfig()
			if cmd.Flags().Changed("threshold") {
				if thresholdFlag < 0 {
					return fmt.Errorf("threshold must be >= 0, got %d", thresholdFlag)
				}
				engine.QuoteThreshold = thresholdFlag
			}
			if noQuotes {
				engine.Quotes = false
			}
			if noEllipsis {
				engine.Ellipsis = false
			}
			if noDashes {
				engine.Dashes = false
			}
			if noGuillemets {
				engine.Guillemets = false
			}

			useFrench := cfg.French.Enabled || frenchFlag
			escaper := cfg.Output.Escape
			if cmd.Flags().Changed("escape") {
				escaper = escapeFlag
			}
			switch escaper {
			case "", "none", "html", "tex":
			default:
				return fmt.Errorf("unknown escape format %q (expected html or tex)", escaper)
			}

			formatter := cfg.FrenchFormatter()
			transform := func(line string) string {
				line = typograph.Format(line, engine)
				if useFrench {
					line = formatter.Format(line)
				}
				switch escaper {
				case "html":
					line = escape.NBSpaces(escape.HTML(line))
				case "tex":
					line = escape.NBSpacesTeX(escape.TeX(line))
				}
				return line
			}

			lines, err := transformLines(cmd, args, transform)
			if err != nil {
				return err
			}
			ctx.log().Debug("formatted input",
				"lines", lines,
				"french", useFrench,
				"escape", escaper)
			return nil
		},
	}

	cmd.Flags().BoolVar(&frenchFlag, "french", false, "Apply French spacing rules after normalization")
	cmd.Flags().StringVar(&escapeFlag, "escape", "", "Escape output for the given format (html or tex)")
	cmd.Flags().IntVar(&thresholdFlag, "threshold", 0, "Quote pairing scan distance in code points (0 disables pairing)")
	cmd.Flags().BoolVar(&noQuotes, "no-quotes", false, "Leave straight quotation marks unchanged")
	cmd.Flags().BoolVar(&noEllipsis, "no-ellipsis", false, "Leave runs of periods unchanged")
	cmd.Flags().BoolVar(&noDashes, "no-dashes", false, "Leave runs of hyphens unchanged")
	cmd.Flags().BoolVar(&noGuillemets, "no-guillemets", false, "Leave << and >> unchanged")

	return cmd
}
