package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/telltaleatheist/ContentStudio/internal/logger"
)

// New creates a Watcher over inputDir with bounded handler concurrency.
func New(inputDir string, handler EventHandler, filter FileFilter, log logger.Logger, maxConcurrent int) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(inputDir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if maxConcurrent <= 0 {
		maxConcurrent = 2
	}

	return &implWatcher{
		inputDir:      inputDir,
		handler:       handler,
		filter:        filter,
		logger:        log,
		watcher:       fsw,
		maxConcurrent: maxConcurrent,
		semaphore:     make(chan struct{}, maxConcurrent),
	}, nil
}
