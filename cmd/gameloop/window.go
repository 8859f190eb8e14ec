package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gameloop/internal/platform/desktop"
)

var flagScale int

var windowCmd = &cobra.Command{
	Use:   "window <game>",
	Short: "Play a game in a desktop window",
	Long: `Open a desktop window sized to the game's logical surface and run
the game until the window is closed.

Examples:
  gameloop window snake
  gameloop window snake --scale 2`,
	Args: cobra.ExactArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagScale, "scale", 1, "Window pixels per logical unit")
}

func runWindow(cmd *cobra.Command, args []string) error {
	game, err := createGame(args[0])
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	return desktop.Run(game, desktop.Options{
		Scale:  flagScale,
		Logger: logger,
	})
}
