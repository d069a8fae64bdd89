package cli

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"poorcene/internal/adapter/fs"
)

var loadIncludes []string

var loadCmd = &cobra.Command{
	Use:   "load [path]",
	Short: "Bulk load a word corpus",
	Long: `Index every word of every corpus file under path, one word per line.
Path may also name a single file.

Examples:
  poorcene load .                        # Load *.txt files under the current directory
  poorcene load br-utf8.txt              # Load a single word list
  poorcene load corpus --include "**/*.dic"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)
	loadCmd.Flags().StringArrayVar(&loadIncludes, "include", nil, "include pattern (repeatable, overrides config)")
}

func runLoad(cmd *cobra.Command, args []string) error {
	path := GetRootDir()
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	uc := a.uc
	if len(loadIncludes) > 0 {
		uc.SetWalker(fs.NewWalker(loadIncludes, GetConfig().Corpus.Excludes))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Loading %s...\n", path)

	var bar *progressbar.ProgressBar
	var barMu sync.Mutex
	var startTime time.Time

	progressCallback := func(done, total int) {
		barMu.Lock()
		defer barMu.Unlock()

		if bar == nil {
			startTime = time.Now()
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionThrottle(100*time.Millisecond),
				progressbar.OptionSetDescription("[cyan]Indexing[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(cmd.ErrOrStderr())
				}),
			)
		}

		bar.Set(done)

		if done > 0 && done%1000 == 0 {
			elapsed := time.Since(startTime)
			rate := float64(done) / elapsed.Seconds()
			if rate > 0 {
				eta := time.Duration(float64(total-done)/rate) * time.Second
				bar.Describe(fmt.Sprintf("[cyan]Indexing[reset] ETA: %s", formatDuration(eta)))
			}
		}
	}

	result, err := uc.LoadCorpus(path, progressCallback)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}

	stats := uc.Stats()
	fmt.Fprintf(out, "\nLoad complete:\n")
	fmt.Fprintf(out, "  Files read:    %d\n", result.Files)
	fmt.Fprintf(out, "  Words indexed: %d\n", result.Words)
	fmt.Fprintf(out, "  Total words:   %d\n", stats.Words)
	fmt.Fprintf(out, "  Stems:         %d\n", stats.Stems)
	fmt.Fprintf(out, "  Took:          %s\n", formatDuration(result.Duration))

	if len(result.Errors) > 0 {
		fmt.Fprintf(out, "\nWarnings:\n")
		for _, e := range result.Errors {
			fmt.Fprintf(out, "  - %s\n", e)
		}
	}

	fmt.Fprintf(out, "\nIndex stored at: %s\n", GetConfig().DataDir(GetRootDir()))
	return nil
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "<1s"
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}
