package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// archive moves a processed input out of the watch folder so it is not
// picked up again.
func (p *implProcessor) archive(ctx context.Context, job, path string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	destPath := filepath.Join(p.cfg.Paths.Archived, filepath.Base(path))
	if err := os.Rename(path, destPath); err != nil {
		// Cross-device moves fail on rename; fall back to copy+remove.
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return fmt.Errorf("archive %s: %w", path, err)
		}
		if writeErr := os.WriteFile(destPath, data, 0644); writeErr != nil {
			return fmt.Errorf("archive %s: %w", path, writeErr)
		}
		if removeErr := os.Remove(path); removeErr != nil {
			p.logger.Warn(ctx, "[%s] Failed to remove original after archiving: %v", job, removeErr)
		}
	}

	p.logger.Debug(ctx, "[%s] Archived: %s", job, destPath)
	return nil
}
