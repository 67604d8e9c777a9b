package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lose-weight/internal/control"
	"github.com/vovakirdan/lose-weight/internal/games/sweets"
	"github.com/vovakirdan/lose-weight/internal/platform/tui"
	"github.com/vovakirdan/lose-weight/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty and play",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a difficulty, Enter to play and Tab for the
scoreboard. Press B or Esc after a run to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Tab          - High scores
  Q            - Quit

Examples:
  sweets menu
  sweets menu --control mouse
  sweets menu --fps 30 --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagControl, "control", "keys", "Control source: keys, mouse, face")
	menuCmd.Flags().StringVar(&flagControlAddr, "control-addr", control.DefaultAddr, "Listen address for the face control WebSocket")
	menuCmd.Flags().BoolVar(&flagNoCards, "no-cards", false, "Do not write PNG score cards")
}

func runMenu(_ *cobra.Command, _ []string) error {
	kind, err := control.ParseKind(flagControl)
	if err != nil {
		return err
	}
	sweets.SetConfigPath(flagConfig)

	game, err := registry.Create(sweets.GameID)
	if err != nil {
		return err
	}

	logger, closeLog := openPlayLog()
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, game.ID(), game.Title(), cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, game.ID(), game.Title(), cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		runCfg := cfg
		runCfg.Preset = string(menuResult.Preset)
		backToMenu, err := playOnce(game.ID(), store, runCfg, kind, logger)
		if err != nil {
			return err
		}
		if !backToMenu {
			return nil
		}
	}
}
