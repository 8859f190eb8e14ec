// gameloop runs frame-loop games in a terminal, a desktop window or headless.
//
// Usage:
//
//	gameloop list                - List available games
//	gameloop play <game>         - Play a game in the terminal
//	gameloop window <game>       - Play a game in a desktop window
//	gameloop render <game>       - Run frames headless and print a snapshot
//	gameloop config <game>       - Print the default config
//
// Global flags:
//
//	--fps <rate>          - Override the configured frame rate
//	--config <path>       - Custom game config (YAML or TOML)
//	--log-level <level>   - debug, info, warn, error (default: info)
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	// Import games to register them
	_ "github.com/vovakirdan/gameloop/internal/games/snake"
	"github.com/vovakirdan/gameloop/internal/registry"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gameloop",
	Short: "gameloop - frame-loop games for the terminal and the desktop",
	Long: `gameloop drives small games through an update/render frame loop.
The same game runs in a terminal, a desktop window or headless.

Available commands:
  list     - Show all available games
  play     - Play a game in the terminal
  window   - Play a game in a desktop window
  render   - Run frames headless, print a snapshot and optionally save a PNG
  config   - Print a game's default config

Examples:
  gameloop list
  gameloop play snake
  gameloop window snake --config ./snake.toml
  gameloop render snake --frames 3 --press ArrowUp --out frame.png`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate override (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the logger from the global flags. Logs go to the rotated
// log file when set, otherwise to fallback. The returned close func is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w := fallback
	closeFn := func() error { return nil }
	if flagLogFile != "" {
		lj := &lumberjack.Logger{
			Filename:   flagLogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		}
		w = lj
		closeFn = lj.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "gameloop",
		Level:           level,
	})
	return logger, closeFn, nil
}

// createGame creates gameID with the global flags applied.
func createGame(gameID string) (registry.Game, error) {
	if !registry.Exists(gameID) {
		return nil, fmt.Errorf("unknown game %q, run 'gameloop list' to see available games", gameID)
	}
	return registry.Create(gameID, registry.Options{
		ConfigPath: flagConfig,
		FPS:        flagFPS,
	})
}
