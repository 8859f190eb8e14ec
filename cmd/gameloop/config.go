package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gameloop/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print the default config for a game",
	Long: `Print the embedded default YAML config for a game. Save it to
~/.gameloop/configs/<game>.yaml or ./configs/<game>.yaml to customize it,
or pass any file with --config.

Examples:
  gameloop config snake > ~/.gameloop/configs/snake.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	data := config.GetDefaultYAML(args[0])
	if data == nil {
		return fmt.Errorf("no default config for game %q", args[0])
	}
	_, err := cmd.OutOrStdout().Write(data)
	return err
}
