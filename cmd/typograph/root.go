package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "typograph",
		Short:         "Typographic text normalization",
		Long:          "Typograph normalizes whitespace, punctuation, and quotation marks, applies French spacing rules, and escapes text for HTML or LaTeX output.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newFormatCommand(ctx))
	rootCmd.AddCommand(newFrenchCommand(ctx))
	rootCmd.AddCommand(newEscapeCommand())
	rootCmd.AddCommand(newCapsCommand())
	rootCmd.AddCommand(newTransformsCommand())
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
