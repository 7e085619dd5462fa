package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/picman/internal/platform/tui"
	"github.com/vovakirdan/picman/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start PIC-MAN with the title menu",
	Long: `Start PIC-MAN in interactive menu mode.

Pick Play to start a game, High Scores to see the results of this
session. After a game ends, press Esc to return to the menu.
Results are kept in memory and are gone when the program exits.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  picman menu
  picman menu --fps 30 --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	newGame, err := newGameFactory()
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

	runErr := tui.RunSession(newGame, store, logger, runtimeConfig(), playerName())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		closeLog()
		exitWithError(runErr)
	}
}
