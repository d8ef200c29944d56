package processor

import (
	"github.com/telltaleatheist/ContentStudio/internal/config"
	"github.com/telltaleatheist/ContentStudio/internal/labeler"
	"github.com/telltaleatheist/ContentStudio/internal/logger"
	"github.com/telltaleatheist/ContentStudio/internal/report"
	"github.com/telltaleatheist/ContentStudio/pkg/executor"
)

type implProcessor struct {
	cfg      *config.Config
	executor executor.Executor
	labeler  labeler.Labeler
	report   report.Writer
	logger   logger.Logger
}

// New creates a Processor instance.
func New(cfg *config.Config, exec executor.Executor, lab labeler.Labeler, rep report.Writer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:      cfg,
		executor: exec,
		labeler:  lab,
		report:   rep,
		logger:   log,
	}
}
