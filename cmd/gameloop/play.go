package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gameloop/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game in the terminal",
	Long: `Start the game in the terminal. The logical surface is scaled onto
the terminal's character grid.

Terminals report key presses but not releases: a key stays held while it
auto-repeats and is released once it has not repeated for the configured
hold timeout.

Controls:
  F1       - Toggle help
  Ctrl+C   - Quit
  any key  - Delivered to the game

Examples:
  gameloop play snake
  gameloop play snake --fps 30
  gameloop play snake --log-file gameloop.log --log-level debug`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	game, err := createGame(args[0])
	if err != nil {
		return err
	}

	// The terminal belongs to the game; logs only go to a file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.Run(game, tui.Options{
		Cols:   width,
		Rows:   height,
		Logger: logger,
	})
}
