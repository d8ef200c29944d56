package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/telltaleatheist/ContentStudio/internal/chapters"
)

// Write emits the chapter block as <name>.chapters.txt, ready to paste
// into a video description, plus a styled docx chapter sheet. The docx
// is best-effort; a failure there is logged, not fatal.
func (w *implWriter) Write(ctx context.Context, sourceName string, list []chapters.Chapter) (string, error) {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	txtPath := filepath.Join(w.outputDir, sourceName+".chapters.txt")
	if err := os.WriteFile(txtPath, []byte(FormatBlock(list)), 0644); err != nil {
		return "", fmt.Errorf("write chapter block: %w", err)
	}

	docxPath := filepath.Join(w.outputDir, sourceName+".chapters.docx")
	if err := writeDocx(sourceName, list, docxPath); err != nil {
		w.logger.Warn(ctx, "Failed to write chapter sheet %s: %v", docxPath, err)
	} else {
		w.logger.Debug(ctx, "Chapter sheet written: %s", docxPath)
	}

	return txtPath, nil
}

// FormatBlock renders chapters as "<timestamp> <title>" lines.
func FormatBlock(list []chapters.Chapter) string {
	var b strings.Builder
	for _, ch := range list {
		b.WriteString(ch.Timestamp)
		b.WriteString(" ")
		b.WriteString(ch.Title)
		b.WriteString("\n")
	}
	return b.String()
}
