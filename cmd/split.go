package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/1Seob/Flik-v2-sub000/core/sentence"
)

var splitCmd = &cobra.Command{
	Use:   "split <text>",
	Short: "Print the sentences a paragraph splits into",
	Long: `Split normalizes the given text and prints one sentence per line,
using the configured terminator and closer tables.

Example:
  flik split "「정말?」 그가 물었다. 아무도 대답하지 않았다..."`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	normalizer, err := cfg.Normalizer()
	if err != nil {
		return err
	}
	splitter := sentence.New(cfg.Sentence.Terminators, cfg.Sentence.Closers)

	text := normalizer.Normalize(strings.Join(args, " "))
	for _, s := range splitter.Split(text) {
		fmt.Fprintln(cmd.OutOrStdout(), s)
	}
	return nil
}
