package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sakura-sbd/sakura/lang"
)

func newValidateCmd() *cobra.Command {
	var languageConfig string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a language configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.OutOrStdout(), languageConfig)
		},
	}

	cmd.Flags().StringVarP(&languageConfig, "language-config", "c", "", "path to the language configuration TOML to validate")
	_ = cmd.MarkFlagRequired("language-config")

	return cmd
}

func runValidate(w io.Writer, path string) error {
	fmt.Fprintf(w, "Validating language configuration: %s\n", path)

	rules, err := lang.NewRulesFromFile(path)
	if err != nil {
		fmt.Fprintln(w, "Configuration is invalid!")
		fmt.Fprintf(w, "  Error: %v\n", err)
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintln(w, "Configuration is valid!")
	fmt.Fprintf(w, "  Language code: %s\n", rules.Code())
	fmt.Fprintf(w, "  Language name: %s\n", rules.Name())
	return nil
}
