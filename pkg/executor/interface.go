package executor

import "context"

// Executor runs external commands (ffmpeg, whisper).
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
	Available(name string) bool
}
