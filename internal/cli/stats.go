package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show index statistics",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output as JSON")
}

func runStats(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	stats := a.uc.Stats()
	out := cmd.OutOrStdout()
	if statsJSON {
		output, _ := json.MarshalIndent(stats, "", "  ")
		fmt.Fprintln(out, string(output))
		return nil
	}

	cfg := GetConfig()
	fmt.Fprintf(out, "Words:      %d\n", stats.Words)
	fmt.Fprintf(out, "Stems:      %d\n", stats.Stems)
	fmt.Fprintf(out, "List words: %d\n", stats.ListWords)
	fmt.Fprintf(out, "Backend:    %s (%s)\n", cfg.Storage.Backend, cfg.DataDir(GetRootDir()))
	return nil
}
