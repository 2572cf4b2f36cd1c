package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"typograph"
	"typograph/escape"
)

func newFrenchCommand(ctx *commandContext) *cobra.Command {
	var markupFlag string

	cmd := &cobra.Command{
		Use:   "french [file]",
		Short: "Apply French spacing rules",
		Long:  "Insert the no-break spaces French typography calls for around high punctuation, guillemets, dialog dashes, and inside numbers.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			var spaceEscaper func(rune) string
			switch markupFlag {
			case "", "none":
			case "tex":
				spaceEscaper = escape.SpaceTeX
			case "html":
				spaceEscaper = escape.SpaceHTML
			default:
				return fmt.Errorf("unknown markup %q (expected tex or html)", markupFlag)
			}

			engine := cfg.EngineConfig()
			formatter := cfg.FrenchFormatter()
			transform := func(line string) string {
				line = typograph.ClassifyQuotes(line, engine)
				return formatter.FormatWith(line, spaceEscaper)
			}

			lines, err := transformLines(cmd, args, transform)
			if err != nil {
				return err
			}
			ctx.log().Debug("applied french spacing", "lines", lines, "markup", markupFlag)
			return nil
		},
	}

	cmd.Flags().StringVar(&markupFlag, "markup", "", "Render inserted spaces for the given markup (tex or html)")

	return cmd
}
