// battleship is a terminal Battleship game: deploy your fleet, then trade
// salvos with the computer until one side's ships are all sunk.
//
// Usage:
//
//	battleship play          - Play a match against the computer
//	battleship scores        - Show high scores and match statistics
//	battleship reports       - Browse scores and the battle log interactively
//	battleship serve         - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible matches
//	--db <path>     - Set database path (default: ~/.battleship/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/tui-battleship/internal/battle"
)

// gameID is the single registered game.
const gameID = "battleship"

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
	Use:   "battleship",
	Short: "Battleship - Sink the enemy fleet from your terminal",
	Long: `Battleship is a terminal rendition of the classic naval guessing game.
Deploy five ships on a 10x10 grid, then exchange fire with the computer
until one fleet is at the bottom of the sea.

Available commands:
  play     - Play a match against the computer
  scores   - View high scores and match statistics
  reports  - Browse scores and the battle log interactively
  serve    - Start SSH server for remote play

Examples:
  battleship play
  battleship play --seed 12345
  battleship scores
  battleship serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.battleship/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(reportsCmd)
	rootCmd.AddCommand(serveCmd)
}
