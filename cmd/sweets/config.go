package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lose-weight/internal/config"
)

var flagConfigCheck string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config",
	Long: `Print the built-in game configuration as YAML.

Save it to ~/.sweets/configs/sweets.yaml or ./configs/sweets.yaml and edit
the values you want to change; missing keys keep their defaults.

Examples:
  sweets config > ~/.sweets/configs/sweets.yaml
  sweets config --check ./my-sweets.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigCheck, "check", "", "Validate a config file instead of printing the defaults")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigCheck == "" {
		_, err := os.Stdout.Write(config.GetDefaultYAML())
		return err
	}

	cfg, err := config.LoadSweets(flagConfigCheck)
	if err != nil {
		return err
	}
	fmt.Printf("%s: ok (hit distance %.1f px, spawn every %.0f ms at start)\n",
		flagConfigCheck, cfg.HitDistance(), cfg.Difficulty.Spawn.BaseMs)
	return nil
}
