package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/gameloop/internal/loop"
	"github.com/vovakirdan/gameloop/internal/platform/raster"
	"github.com/vovakirdan/gameloop/internal/registry"
)

var (
	flagFrames   int
	flagPress    []string
	flagOut      string
	flagPNGScale int
	flagRealtime bool
)

var renderCmd = &cobra.Command{
	Use:   "render <game>",
	Short: "Run frames headless and print a snapshot",
	Long: `Run the game without a display. Keys given with --press are held
from the first frame. After the last frame the game snapshot is printed
as YAML and, with --out, the final frame is saved as PNG.

Frames run back to back with synthetic timestamps one frame interval
apart. With --realtime they are paced by a ticker instead and Ctrl+C
stops early.

Examples:
  gameloop render snake
  gameloop render snake --frames 3 --press ArrowUp
  gameloop render snake --out frame.png --png-scale 2`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().IntVar(&flagFrames, "frames", 1, "Number of frames to run")
	renderCmd.Flags().StringSliceVar(&flagPress, "press", nil, "Keys held from the first frame (DOM names, e.g. ArrowUp)")
	renderCmd.Flags().StringVar(&flagOut, "out", "", "Write the last frame to this PNG file")
	renderCmd.Flags().IntVar(&flagPNGScale, "png-scale", 1, "PNG pixels per logical unit")
	renderCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace frames with a ticker at the game's frame rate")
}

func runRender(cmd *cobra.Command, args []string) error {
	game, err := createGame(args[0])
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	rt := game.Runtime()
	canvas := raster.NewCanvas(rt.SurfaceW, rt.SurfaceH)
	queue := loop.NewFrameQueue()
	lp := loop.New(game, canvas, queue, loop.WithLogger(logger))

	for _, k := range flagPress {
		game.Input().Press(k)
	}

	interval := time.Second / time.Duration(max(rt.FPS, 1))
	lp.Start()
	if flagRealtime {
		err = runRealtime(cmd.Context(), queue, interval)
	} else {
		err = loop.RunFrames(queue, flagFrames, time.Now(), interval)
	}
	lp.Stop()
	if err != nil {
		return err
	}

	if flagOut != "" {
		if err := writePNG(canvas, flagOut); err != nil {
			return err
		}
		logger.Info("frame written", "path", flagOut)
	}

	return printSnapshot(cmd, game)
}

// runRealtime fires frames on a ticker until flagFrames have run or the
// user interrupts.
func runRealtime(parent context.Context, q *loop.FrameQueue, interval time.Duration) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	defer stop()

	return loop.RunTicker(ctx, q, interval, flagFrames)
}

func writePNG(canvas *raster.Canvas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := canvas.WritePNG(f, flagPNGScale); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func printSnapshot(cmd *cobra.Command, game registry.Game) error {
	var snap any = map[string]any{
		"game": game.ID(),
		"held": game.Input().Sorted(),
	}
	if d, ok := game.(registry.Debugger); ok {
		snap = d.DebugSnapshot()
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return enc.Close()
}
