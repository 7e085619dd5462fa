package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/picman/internal/config"
	"github.com/vovakirdan/picman/internal/core"
	"github.com/vovakirdan/picman/internal/games/picman"
	"github.com/vovakirdan/picman/internal/platform/tui"
)

// loadGameConfig resolves --config and --difficulty.
func loadGameConfig() (config.PicmanConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.PicmanConfig{}, err
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.PicmanConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)

	return cfg, nil
}

// newGameFactory loads the config once and checks it by building a game.
func newGameFactory() (tui.GameFactory, error) {
	cfg, err := loadGameConfig()
	if err != nil {
		return nil, err
	}
	if _, err := picman.New(cfg); err != nil {
		return nil, err
	}

	return func() (tui.Game, error) {
		g, err := picman.New(cfg)
		if err != nil {
			return nil, err
		}
		return g, nil
	}, nil
}

// newLogger returns a file logger when --log-file is set.
// The terminal belongs to Bubble Tea, so nothing is logged otherwise.
func newLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "picman",
	})
	return logger, func() { f.Close() }, nil
}

// runtimeConfig builds the runtime config from the terminal size and flags.
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

// playerName is the name recorded with local results.
func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}

func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
