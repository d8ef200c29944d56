package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/telltaleatheist/ContentStudio/internal/config"
	"github.com/telltaleatheist/ContentStudio/internal/labeler"
	"github.com/telltaleatheist/ContentStudio/internal/logger"
	"github.com/telltaleatheist/ContentStudio/internal/processor"
	"github.com/telltaleatheist/ContentStudio/internal/report"
	"github.com/telltaleatheist/ContentStudio/pkg/executor"
)

var generateCmd = &cobra.Command{
	Use:   "generate <file>",
	Short: "Generate chapters for a single subtitle or video file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		deps, err := buildPipeline(cfg)
		if err != nil {
			return err
		}

		return deps.processor.Process(cmd.Context(), args[0])
	},
}

// pipeline bundles the wired dependencies shared by watch and generate.
type pipeline struct {
	logger    logger.Logger
	processor processor.Processor
}

func buildPipeline(cfg *config.Config) (*pipeline, error) {
	log := logger.New(cfg.Logging.Level)

	lab, err := labeler.NewFromConfig(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("create labeler: %w", err)
	}

	rep := report.New(cfg.Paths.Output, log)
	proc := processor.New(cfg, executor.New(), lab, rep, log)

	return &pipeline{logger: log, processor: proc}, nil
}
