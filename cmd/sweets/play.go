package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lose-weight/internal/config"
	"github.com/vovakirdan/lose-weight/internal/control"
	"github.com/vovakirdan/lose-weight/internal/core"
	"github.com/vovakirdan/lose-weight/internal/games/sweets"
	"github.com/vovakirdan/lose-weight/internal/platform/tui"
	"github.com/vovakirdan/lose-weight/internal/registry"
	"github.com/vovakirdan/lose-weight/internal/storage"
	"github.com/vovakirdan/lose-weight/internal/summary"
)

var (
	flagConfig      string
	flagDifficulty  string
	flagControl     string
	flagControlAddr string
	flagNoCards     bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a run",
	Long: `Start a run right away.

Controls:
  Enter/Space     - Start
  W/A/S/D, arrows - Steer (keys control)
  C               - Recenter (keys and face control)
  P               - Pause
  R               - Restart (after game over)
  B/Esc           - Back (when not playing)
  Ctrl+S          - Save a text screenshot
  Q/Ctrl+C        - Quit

Control sources:
  keys   - Arrow keys or WASD move a virtual head
  mouse  - The avatar follows the mouse pointer
  face   - Nose position from a face tracker, sent as JSON frames
           {"x":0.43,"y":0.51} to ws://<control-addr>/control

Difficulty options:
  easy   - Slow ramp
  normal - The classic
  hard   - Fast ramp, busy from the start
  fixed  - No progression

Examples:
  sweets play
  sweets play --difficulty hard
  sweets play --control mouse
  sweets play --control face --control-addr 127.0.0.1:8765
  sweets play --config ./my-sweets.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagControl, "control", "keys", "Control source: keys, mouse, face")
	playCmd.Flags().StringVar(&flagControlAddr, "control-addr", control.DefaultAddr, "Listen address for the face control WebSocket")
	playCmd.Flags().BoolVar(&flagNoCards, "no-cards", false, "Do not write PNG score cards")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := sweets.GameID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'sweets list' to see available games", gameID)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	kind, err := control.ParseKind(flagControl)
	if err != nil {
		return err
	}
	sweets.SetConfigPath(flagConfig)
	sweets.SetDifficultyPreset(string(preset))

	logger, closeLog := openPlayLog()
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	cfg.Preset = string(preset)

	_, err = playOnce(gameID, store, cfg, kind, logger)
	return err
}

// playOnce runs one game session and reports whether the player asked
// for the menu.
func playOnce(gameID string, store *storage.Store, cfg core.RuntimeConfig, kind control.Kind, logger *log.Logger) (bool, error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return false, err
	}

	src, hint, stop := newControl(kind, cfg, logger)
	defer stop()

	opts := tui.GameOptions{
		Preset:  presetName(cfg.Preset),
		Control: src,
		Hint:    hint,
		Logger:  logger,
	}
	if !flagNoCards {
		if dir, dirErr := summary.DefaultDir(); dirErr == nil {
			opts.CardDir = dir
		}
	}

	return tui.Run(game, store, cfg, opts)
}

// newControl builds the control source. stop releases whatever the
// source started and is never nil.
func newControl(kind control.Kind, cfg core.RuntimeConfig, logger *log.Logger) (control.Source, string, func()) {
	gameCfg, err := config.LoadSweets(flagConfig)
	if err != nil {
		logger.Warn("using default control settings", "error", err)
	}

	switch kind {
	case control.KindMouse:
		return control.NewPointer(cfg.ScreenW, cfg.ScreenH), "", func() {}

	case control.KindFace:
		feed := control.NewLandmarks(gameCfg.Control.Sensitivity, time.Duration(gameCfg.Control.StaleMs)*time.Millisecond)
		srv := control.NewServer(flagControlAddr, feed, logger)
		go func() {
			if err := srv.ListenAndServe(); err != nil {
				logger.Error("control server stopped", "error", err)
			}
		}()
		stop := func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				logger.Warn("control server shutdown", "error", err)
			}
		}
		return feed, fmt.Sprintf("Connect a tracker to ws://%s/control", flagControlAddr), stop
	}

	return control.NewKeyboard(gameCfg.Control.KeyStep), "", func() {}
}

// presetName is the name runs are filed under.
func presetName(p string) string {
	if p == "" {
		return string(config.DifficultyNormal)
	}
	return p
}

// runtimeConfig builds the runtime config from the terminal and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. Play continues without scores
// when it cannot be opened.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
