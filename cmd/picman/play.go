package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/picman/internal/platform/tui"
	"github.com/vovakirdan/picman/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a single game",
	Long: `Start a game of PIC-MAN right away.

Controls:
  Arrows/WASD  - Move one cell per key press
  P            - Pause
  R            - Play again (after the game ends)
  Esc/B        - Leave (after the game ends or while paused)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Enemies move every 15 ticks
  normal - Enemies move as configured (every 10 ticks by default)
  hard   - Enemies move every 5 ticks

Examples:
  picman play
  picman play --difficulty easy
  picman play --seed 7 --fps 30
  picman play --config ./my-picman.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	newGame, err := newGameFactory()
	if err != nil {
		exitWithError(err)
	}
	game, err := newGame()
	if err != nil {
		exitWithError(err)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		exitWithError(err)
	}
	defer closeLog()

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open results ledger", "error", err)
		store = nil
	}

	runErr := tui.Run(game, store, logger, runtimeConfig(), playerName())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		closeLog()
		exitWithError(runErr)
	}
}
