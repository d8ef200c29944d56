package watcher

import "context"

// Watcher monitors the input directory for new transcript sources.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler handles a newly arrived file.
type EventHandler func(ctx context.Context, filePath string) error

// FileFilter decides whether a created file should be handled.
type FileFilter func(path string) bool
