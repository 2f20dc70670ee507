package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/greigoat/Pool-Physics-2D/table"
	"github.com/greigoat/Pool-Physics-2D/vect"
	"github.com/spf13/cobra"
)

type runOptions struct {
	frames    int
	frameDt   float32
	untilRest bool
	logLevel  string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &runOptions{}

	root := &cobra.Command{
		Use:          "poolsim",
		Short:        "Headless pool table simulator",
		SilenceUsage: true,
	}
	root.PersistentFlags().IntVar(&opts.frames, "frames", 0, "frames to simulate (0 uses the scene setting)")
	root.PersistentFlags().Float32Var(&opts.frameDt, "frame-dt", 0, "seconds per frame (0 uses the scene setting)")
	root.PersistentFlags().BoolVar(&opts.untilRest, "until-rest", false, "stop once every ball is at rest")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "debug, info, warn or error")

	root.AddCommand(newRunCmd(opts), newWatchCmd(opts))
	return root
}

func newRunCmd(opts *runOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run [scene]",
		Short: "Simulate a scene file, or the standard rack when none is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), opts.logLevel)
			if err != nil {
				return err
			}

			var scene *table.Scene
			if len(args) == 0 {
				scene, err = table.DefaultScene()
			} else {
				scene, err = table.LoadScene(args[0])
			}
			if err != nil {
				return err
			}

			return simulate(cmd.Context(), cmd.OutOrStdout(), scene, opts, logger)
		},
	}
}

func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "poolsim",
		ReportTimestamp: true,
	}), nil
}

func simulate(ctx context.Context, out io.Writer, scene *table.Scene, opts *runOptions, logger *log.Logger) error {
	frames := scene.Simulation.Frames
	if opts.frames > 0 {
		frames = opts.frames
	}
	frameDt := scene.Simulation.FrameDelta
	if opts.frameDt > 0 {
		frameDt = vect.Float(opts.frameDt)
	}

	tbl, err := table.Build(scene, logger)
	if err != nil {
		return err
	}

	logger.Info("simulating", "scene", scene.Name, "frames", frames, "frame_dt", frameDt)
	sum, err := tbl.Run(ctx, frames, frameDt, opts.untilRest)
	printSummary(out, sum)
	return err
}

func printSummary(w io.Writer, sum table.Summary) {
	fmt.Fprintf(w, "scene:     %s\n", sum.Scene)
	fmt.Fprintf(w, "frames:    %d (%.2fs simulated)\n", sum.Frames, sum.Elapsed)
	fmt.Fprintf(w, "settled:   %t\n", sum.Settled)
	fmt.Fprintf(w, "cleared:   %t\n", sum.Cleared)
	fmt.Fprintf(w, "pocketed:  %s\n", list(sum.Pocketed))
	fmt.Fprintf(w, "remaining: %s\n", list(sum.Remaining))
}

func list(tags []string) string {
	if len(tags) == 0 {
		return "-"
	}
	return strings.Join(tags, ", ")
}
