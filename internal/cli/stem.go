package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"poorcene/internal/adapter/analyzer"
)

var stemTrace bool

var stemCmd = &cobra.Command{
	Use:   "stem WORD...",
	Short: "Print the stem of each word",
	Long: `Print the stem of each word without touching the index.

Examples:
  poorcene stem meninos felizmente
  poorcene stem --trace ações`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStem,
}

func init() {
	rootCmd.AddCommand(stemCmd)
	stemCmd.Flags().BoolVar(&stemTrace, "trace", false, "show the output of every stage")
}

func runStem(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	stemmer := analyzer.NewPortugueseStemmer()

	if !stemTrace {
		for _, word := range args {
			fmt.Fprintf(out, "%s\t%s\n", word, stemmer.Stem(word))
		}
		return nil
	}

	for i, word := range args {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s\n", word)
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, step := range stemmer.Trace(word) {
			fmt.Fprintf(tw, "  %s\t%s\n", step.Stage, step.Output)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}
