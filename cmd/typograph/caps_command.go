package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"typograph/caps"
)

func newCapsCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "caps <tex|html> [file]",
		Short:       "Render runs of capitals as small capitals",
		Args:        cobra.RangeArgs(1, 2),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var wrap func(string) string
			switch args[0] {
			case "tex":
				wrap = caps.TeX
			case "html":
				wrap = caps.HTML
			default:
				return fmt.Errorf("unknown caps target %q (expected tex or html)", args[0])
			}
			_, err := transformLines(cmd, args[1:], wrap)
			return err
		},
	}
}
