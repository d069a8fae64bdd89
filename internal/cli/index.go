package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index WORD...",
	Short: "Add words to the index",
	Long: `Add words to the stem index and save it.

Examples:
  poorcene index casa casas casaco
  poorcene index "ações"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	for _, word := range args {
		a.uc.IndexWord(word)
		fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", word, a.stemmer.Stem(word))
	}

	if err := a.uc.Persist(); err != nil {
		return fmt.Errorf("failed to save index: %w", err)
	}

	stats := a.uc.Stats()
	fmt.Fprintf(cmd.OutOrStdout(), "\nIndexed %d words (%d total, %d stems)\n", len(args), stats.Words, stats.Stems)
	return nil
}
