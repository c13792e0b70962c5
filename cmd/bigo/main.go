package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blukebill/BigO/internal/config"
)

var (
	flagConfig string
	flagFormat string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "bigo",
	Short:         "Complexity-evidence analyzer for C source",
	Long:          "bigo parses C snippets with tree-sitter and extracts loop statistics, call lists, and recurrence relations for recursive functions.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagFormat == "" {
			return nil
		}
		return validateFormat(flagFormat)
	},
	// No Run — prints help by default.
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file path (default: first of .bigo.yml, .bigo.yaml, bigo.yml, bigo.yaml found)")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "", "output format: json|text (default from config)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(watchCmd)
}

// loadConfig resolves the effective configuration for a command run.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagFormat != "" {
		cfg.Output.Format = flagFormat
	}
	return cfg, nil
}

// validFormats lists accepted values for --format.
var validFormats = []string{"json", "text"}

func validateFormat(format string) error {
	for _, f := range validFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format %q: must be %s", format, strings.Join(validFormats, " or "))
}
