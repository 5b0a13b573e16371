package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-gobblet/internal/config"
	"github.com/vovakirdan/tui-gobblet/internal/core"
	"github.com/vovakirdan/tui-gobblet/internal/games/gobblet"
	"github.com/vovakirdan/tui-gobblet/internal/platform/tui"
	"github.com/vovakirdan/tui-gobblet/internal/registry"
	"github.com/vovakirdan/tui-gobblet/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start a hot-seat match. Both players share the keyboard and mouse.

Controls:
  Arrows/hjkl      - Move the cursor
  Tab/Shift+Tab    - Switch board
  Enter/Space      - Pick or place at the cursor
  Mouse click      - Pick or place at the clicked cell
  Esc              - Jump to the center of the board
  [ / ]            - Step through the replay (after the match)
  R                - Restart (after the match)
  Ctrl+S           - Save a screenshot
  ?                - Toggle full help
  Q/Ctrl+C         - Quit

Examples:
  gobblet play
  gobblet play --config ./my-gobblet.yaml
  gobblet play --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	// Surface config errors before the alt-screen takes over
	if err := useConfig(flagConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	game, err := registry.Create(gobblet.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := openDebugLog()
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
	}

	// A nil *storage.Store must not become a non-nil ResultSaver
	var saver tui.ResultSaver
	if store != nil {
		saver = store
	}

	runErr := tui.Run(game, saver, cfg, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openDebugLog returns a logger writing to ~/.gobblet/gobblet.log when
// --debug is set, and a discarding logger otherwise.
func openDebugLog() (*log.Logger, func()) {
	if !flagDebug {
		return log.New(io.Discard), func() {}
	}

	path := filepath.Join(config.UserDir(), "gobblet.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create log directory: %v\n", err)
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open debug log: %v\n", err)
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "gobblet",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }
}
