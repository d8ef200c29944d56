package report

import (
	"github.com/telltaleatheist/ContentStudio/internal/logger"
)

type implWriter struct {
	outputDir string
	logger    logger.Logger
}

// New creates a Writer that emits chapter files into outputDir.
func New(outputDir string, log logger.Logger) Writer {
	return &implWriter{
		outputDir: outputDir,
		logger:    log,
	}
}
