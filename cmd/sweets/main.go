// sweets is "Lose Weight", a terminal arcade game: steer your head away
// from the sweets flying in from every edge of the screen.
//
// Usage:
//
//	sweets play              - Play a run
//	sweets menu              - Pick a difficulty interactively
//	sweets serve             - Start SSH server for remote play
//	sweets scores            - Show high scores
//	sweets list              - List available games
//	sweets config            - Print the default game config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.sweets/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const defaultDBPath = "~/.sweets/scores.db"

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sweets",
	Short: "Lose Weight - dodge the sweets in your terminal",
	Long: `Lose Weight is a terminal arcade game. Sweets are thrown at you from
every edge of the screen, faster and more often the longer you last.
Steer with the keyboard, the mouse or your head (face tracking over WebSocket).

Available commands:
  play     - Play a run
  menu     - Interactive difficulty picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  list     - Show available games
  config   - Print the default game config

Environment:
  SWEETS_DB         - Scores database path (overridden by --db)
  SWEETS_LOG_LEVEL  - debug, info, warn or error
  A .env file in the working directory is loaded if present.

Examples:
  sweets play
  sweets play --difficulty hard --control mouse
  sweets menu
  sweets serve --ssh :2222
  sweets scores`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		// .env is optional
		//nolint:errcheck // Missing file is the common case
		godotenv.Load()

		if !cmd.Flags().Changed("db") {
			if db := os.Getenv("SWEETS_DB"); db != "" {
				flagDBPath = db
			}
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
