package executor

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

type implExecutor struct{}

// New creates a new Executor instance.
func New() Executor {
	return &implExecutor{}
}

// Execute runs an external command and returns its stdout. Stderr is
// folded into the error on failure since that is where ffmpeg and
// whisper report diagnostics.
func (e *implExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("command '%s' failed: %w\nstderr: %s", name, err, msg)
		}
		return "", fmt.Errorf("command '%s' failed: %w", name, err)
	}

	return stdout.String(), nil
}

// Available reports whether the named binary can be resolved on PATH
// or at an explicit path.
func (e *implExecutor) Available(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
