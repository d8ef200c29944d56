package report

import (
	"context"

	"github.com/telltaleatheist/ContentStudio/internal/chapters"
)

// Writer persists a validated chapter list for one source file.
type Writer interface {
	// Write emits the chapter outputs for the named source and returns
	// the path of the plain-text chapter block.
	Write(ctx context.Context, sourceName string, list []chapters.Chapter) (string, error)
}
