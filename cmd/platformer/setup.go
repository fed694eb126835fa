package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	return cfg
}

// holdMs reads the key hold window from the game config.
func holdMs() int64 {
	cfg, err := config.LoadPlatformer(flagConfig)
	if err != nil {
		logger.Warn("config unavailable, using defaults", "err", err)
		cfg = config.DefaultPlatformerConfig()
	}
	return cfg.Render.KeyHoldMs
}

// quietForTerminal discards l's output while a full-screen UI owns the
// terminal. Logs sent to --log-file are kept.
func quietForTerminal(l *log.Logger, logFile string) {
	if logFile == "" {
		l.SetOutput(io.Discard)
	}
}

// loadLevels returns the built-in levels plus those in --levels.
func loadLevels() ([]levels.Description, error) {
	descs, err := levels.NewLoader(flagLevels).LoadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot load levels: %w", err)
	}
	return descs, nil
}

// menuItems lists levels for the pickers.
func menuItems(descs []levels.Description) []tui.MenuItem {
	items := make([]tui.MenuItem, len(descs))
	for i, d := range descs {
		items[i] = tui.MenuItem{LevelID: d.ID, Title: d.Name}
	}
	return items
}

// openStore opens the score database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// runSaver stores every finished level attempt.
func runSaver(store *storage.Store) func(platformer.RunResult) {
	if store == nil {
		return nil
	}
	return func(r platformer.RunResult) {
		_, err := store.SaveRun(storage.RunEntry{
			RunID:   r.RunID,
			LevelID: r.LevelID,
			Score:   r.Score,
			Coins:   r.Coins,
			Lives:   r.Lives,
			Outcome: r.Outcome,
		})
		if err != nil {
			logger.Warn("could not save run", "run", r.RunID, "level", r.LevelID, "err", err)
		}
	}
}

// gameFactory builds platformer games that start at a chosen level and
// report runs to store.
func gameFactory(store *storage.Store) tui.GameFactory {
	platformer.SetRunReporter(runSaver(store))
	return func(levelID string) (registry.Game, error) {
		return registry.CreateAt(platformer.GameID, levelID)
	}
}
