package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"typograph/escape"
)

var escapers = map[string]func(string) string{
	"html":          escape.HTML,
	"tex":           escape.TeX,
	"nb-spaces":     escape.NBSpaces,
	"nb-spaces-tex": escape.NBSpacesTeX,
	"quotes":        escape.Quotes,
}

func newEscapeCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "escape <html|tex|nb-spaces|nb-spaces-tex|quotes> [file]",
		Short:       "Escape text for a target format",
		Args:        cobra.RangeArgs(1, 2),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			esc, ok := escapers[args[0]]
			if !ok {
				return fmt.Errorf("unknown escape target %q (expected html, tex, nb-spaces, nb-spaces-tex, or quotes)", args[0])
			}
			_, err := transformLines(cmd, args[1:], esc)
			return err
		},
	}
}
