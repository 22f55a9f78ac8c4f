// Package cmd implements the CLI commands for Flik using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/1Seob/Flik-v2-sub000/config"
	"github.com/1Seob/Flik-v2-sub000/log"
)

var (
	flagConfig   string
	flagLogLevel string

	// cfg is loaded before any subcommand runs.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "flik",
	Short: "Flik — lay out book text as fixed-capacity reading pages",
	Long: `Flik packs a book's paragraphs into pages of a fixed logical capacity,
splitting oversized paragraphs at sentence boundaries (Korean and Latin
punctuation aware).

Usage:
  flik paginate <source> [flags]
  flik split <text>`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		cfg = loaded
		level := cfg.LogLevel
		if cmd.Flags().Changed("log-level") {
			level = flagLogLevel
		}
		log.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
