package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/telltaleatheist/ContentStudio/internal/config"
	"github.com/telltaleatheist/ContentStudio/internal/processor"
	"github.com/telltaleatheist/ContentStudio/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the input folder and chapter new files as they arrive",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		ctx := cmd.Context()
		deps, err := buildPipeline(cfg)
		if err != nil {
			return err
		}
		log := deps.logger

		if err := ensureDirectories(cfg); err != nil {
			return fmt.Errorf("create directories: %w", err)
		}

		w, err := watcher.New(cfg.Paths.Input, deps.processor.Process, processor.IsSupported, log, cfg.Performance.MaxConcurrent)
		if err != nil {
			return fmt.Errorf("create watcher: %w", err)
		}
		defer w.Stop()

		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

		errChan := make(chan error, 1)
		go func() {
			if err := w.Start(ctx); err != nil && err != context.Canceled {
				errChan <- err
			}
		}()

		log.Info(ctx, "ContentStudio is ready")
		log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
		log.Info(ctx, "Output: %s", cfg.Paths.Output)
		log.Info(ctx, "Press Ctrl+C to stop")

		select {
		case <-sigChan:
			log.Info(ctx, "Shutdown signal received")
		case err := <-errChan:
			log.Error(ctx, "Watcher error: %v", err)
		}

		cancel()
		log.Info(ctx, "ContentStudio stopped")
		return nil
	},
}

func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
