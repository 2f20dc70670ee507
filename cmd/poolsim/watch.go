package main

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/greigoat/Pool-Physics-2D/table"
	"github.com/spf13/cobra"
)

const debounce = 100 * time.Millisecond

func newWatchCmd(opts *runOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <scene>",
		Short: "Simulate a scene file again every time it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), opts.logLevel)
			if err != nil {
				return err
			}
			return watch(cmd, args[0], opts, logger)
		},
	}
}

func watch(cmd *cobra.Command, filename string, opts *runOptions, logger *log.Logger) error {
	ctx := cmd.Context()
	path, err := filepath.Abs(filename)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// editors often replace the file, so watch its directory
	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}

	rerun := func() {
		scene, err := table.LoadScene(path)
		if err != nil {
			logger.Error("scene not loaded", "err", err)
			return
		}
		if err := simulate(ctx, cmd.OutOrStdout(), scene, opts, logger); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("simulation failed", "err", err)
		}
	}

	rerun()
	logger.Info("watching", "scene", path)

	// reruns once the file has been quiet for the debounce period
	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("scene changed", "op", event.Op)
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounce)
			fire = timer.C
		case <-fire:
			fire = nil
			rerun()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "err", err)
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		}
	}
}
