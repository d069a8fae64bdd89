package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	queryText    string
	queryJSON    bool
	queryCompare bool
	queryRandom  bool
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Look up words by stem",
	Long: `Return every indexed word whose stem equals the stem of the query.

Examples:
  poorcene query -q casas
  poorcene query -q ações --compare
  poorcene query --random --json`,
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().StringVarP(&queryText, "query", "q", "", "word to look up")
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "output as JSON")
	queryCmd.Flags().BoolVar(&queryCompare, "compare", false, "compare the index against a linear scan of the word list")
	queryCmd.Flags().BoolVar(&queryRandom, "random", false, "query a random indexed word")
}

func runQuery(cmd *cobra.Command, args []string) error {
	if !queryRandom && queryText == "" {
		return fmt.Errorf("either --query or --random is required")
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	word := queryText
	if queryRandom {
		word, err = a.uc.RandomWord()
		if err != nil {
			return fmt.Errorf("no index found. Run 'poorcene index' or 'poorcene load' first")
		}
	}

	out := cmd.OutOrStdout()

	if queryCompare {
		cmp := a.uc.Compare(word)
		if queryJSON {
			output, _ := json.MarshalIndent(cmp, "", "  ")
			fmt.Fprintln(out, string(output))
			return nil
		}
		fmt.Fprintf(out, "Query: %s (stem: %s)\n\n", cmp.Query, cmp.Stem)
		fmt.Fprintf(out, "  %-22s %6d results  %s\n", "index", cmp.IndexHits, time.Duration(cmp.IndexNanos))
		fmt.Fprintf(out, "  %-22s %6d results  %s\n", "list (stem scan)", cmp.ListStemHits, time.Duration(cmp.ListStemNanos))
		fmt.Fprintf(out, "  %-22s %6d results  %s\n", "list (exact scan)", cmp.ListExactHits, time.Duration(cmp.ListExactNanos))
		return nil
	}

	res := a.uc.Query(word)
	if queryJSON {
		output, _ := json.MarshalIndent(res, "", "  ")
		fmt.Fprintln(out, string(output))
		return nil
	}

	if len(res.Results) == 0 {
		fmt.Fprintf(out, "No results found for: %s (stem: %s)\n", res.Query, res.Stem)
		return nil
	}
	fmt.Fprintf(out, "Found %d results for: %s (stem: %s)\n\n", len(res.Results), res.Query, res.Stem)
	fmt.Fprintln(out, strings.Join(res.Results, "\n"))
	return nil
}
