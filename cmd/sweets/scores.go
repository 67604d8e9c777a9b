package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lose-weight/internal/config"
	"github.com/vovakirdan/lose-weight/internal/games/sweets"
	"github.com/vovakirdan/lose-weight/internal/registry"
	"github.com/vovakirdan/lose-weight/internal/storage"
)

var (
	flagScoresPreset string
	flagScoresLimit  int
	flagScoresAll    bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the best runs and overall statistics.

Examples:
  sweets scores
  sweets scores --difficulty hard
  sweets scores --limit 25
  sweets scores --all       # Every recorded run
  sweets scores --clear     # Delete all recorded runs`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresPreset, "difficulty", "", "Only show runs of this difficulty")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every run instead of the top ones")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs for the game")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := sweets.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w, run 'sweets list' to see available games", err)
	}
	preset, err := config.ParsePreset(flagScoresPreset)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared all runs for %s.\n", game.Title())
		return nil
	}

	var runs []storage.Run
	if flagScoresAll {
		runs, err = store.AllRuns(gameID)
		if preset != "" {
			runs = slices.DeleteFunc(runs, func(r storage.Run) bool { return r.Preset != string(preset) })
		}
	} else {
		runs, err = store.TopRuns(gameID, string(preset), flagScoresLimit)
	}
	if err != nil {
		return err
	}

	title := game.Title()
	if preset != "" {
		title += " (" + string(preset) + ")"
	}
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'sweets play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-7s  %-7s  %-9s  %-7s  %-9s  %s\n", "Rank", "Score", "Time", "Dodged", "Level", "Control", "Date")
	fmt.Printf("  %-4s  %-7s  %-7s  %-9s  %-7s  %-9s  %s\n", "----", "-----", "----", "------", "-----", "-------", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-7d  %-7s  %-9s  %-7s  %-9s  %s\n",
			i+1,
			r.Score,
			fmt.Sprintf("%.1fs", r.Duration.Seconds()),
			fmt.Sprintf("%d/%d", r.Dodged, r.Spawned),
			r.Preset,
			r.Control,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	stats, err := store.GameStats(gameID)
	if err == nil && stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("Best: %d  Runs: %d  Average: %.0f  Longest: %.1fs\n",
			stats.HighScore, stats.Runs, stats.AvgScore, stats.LongestRun.Seconds())
	}
	return nil
}
