package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"poorcene/config"
	"poorcene/internal/logging"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "poorcene",
	Short: "Portuguese stem index - index words and look them up by stem",
	Long: `poorcene stems Portuguese words with a rule-based suffix stripper and keeps
them in an index keyed by stem, so every inflection of a word answers the
same query.

Example usage:
  poorcene index casa casas casaco   # Index some words
  poorcene query -q casas            # Words sharing the stem of "casas"
  poorcene load corpus/              # Bulk load one word per line
  poorcene stem --trace ações        # Show every stemming stage`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logging.Setup(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./poorcene.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
