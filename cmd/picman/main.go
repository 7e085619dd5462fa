// picman is a terminal chase game: eat every dot in the maze before the
// wandering M's catch you.
//
// Usage:
//
//	picman play     - Play a single game
//	picman menu     - Title menu with high scores
//	picman serve    - Host the game over SSH
//	picman maze     - Show and validate the built-in maze
//	picman config   - Print the game configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a custom game config YAML
//	--difficulty <name>   - easy, normal or hard
//	--log-file <path>     - Write game logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "picman",
	Short: "PIC-MAN - a maze chase game for your terminal",
	Long: `PIC-MAN is a small maze chase game played in the terminal.

Steer C through the maze and eat every dot. The M's wander at random;
if one lands on your cell the game is over.

Available commands:
  play     - Play a single game
  menu     - Title menu with high scores
  serve    - Host the game over SSH
  maze     - Show and validate the built-in maze
  config   - Print the game configuration

Examples:
  picman play
  picman play --difficulty hard
  picman menu --seed 42
  picman serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write game logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mazeCmd)
	rootCmd.AddCommand(configCmd)
}
