package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTransformsCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "transforms",
		Short:       "List the available text transformations",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			headers := []string{"Transform", "Command", "Description"}
			rows := [][]string{
				{"whitespace", "format", "Collapse every run of whitespace to a single space"},
				{"ellipsis", "format", "Replace runs of three or more periods with …"},
				{"dashes", "format", "Replace -- and --- with en and em dashes"},
				{"guillemets", "format", "Replace << and >> with « and »"},
				{"quotes", "format", "Turn straight quotes into directional quotation marks"},
				{"french", "french", "Insert French no-break spacing around punctuation"},
				{"numbers", "french", "Group digits and bind units with narrow no-break spaces"},
				{"escape-html", "escape html", "Escape &, <, and > for HTML"},
				{"escape-tex", "escape tex", "Escape LaTeX special characters"},
				{"nb-spaces", "escape nb-spaces", "Render no-break spaces as classed HTML spans"},
				{"nb-spaces-tex", "escape nb-spaces-tex", "Render no-break spaces as LaTeX ties"},
				{"escape-quotes", "escape quotes", "Replace straight double quotes with apostrophes"},
				{"caps", "caps", "Wrap runs of capitals in small-caps markup"},
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out, headers, rows))
			return nil
		},
	}
}
