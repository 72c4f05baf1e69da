package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/figgo/figgo/core/logger"
	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches an export tree and fires OnChange after events
// settle, so a save burst triggers one re-analysis.
type FileWatcher struct {
	watcher      *fsnotify.Watcher
	rootDir      string
	excludePaths []string

	debounceTimer *time.Timer
	mutex         sync.Mutex

	OnChange func() error
}

func New(rootDir string, excludePaths []string) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &FileWatcher{
		watcher:      watcher,
		rootDir:      rootDir,
		excludePaths: excludePaths,
		OnChange:     func() error { return fmt.Errorf("OnChange not set") },
	}, nil
}

func (fw *FileWatcher) Watch() error {
	if err := fw.addWatchersRecursively(fw.rootDir); err != nil {
		return fmt.Errorf("failed to add watchers: %w", err)
	}

	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if fw.shouldExcludePath(event.Name) {
				continue
			}

			logger.Debug("File event: %s %s", event.Op, event.Name)

			if event.Has(fsnotify.Create) {
				if stat, err := os.Stat(event.Name); err == nil && stat.IsDir() {
					logger.Debug("Adding watcher for new directory: %s", event.Name)
					fw.watcher.Add(event.Name)
				}
			}

			fw.debounceChange()

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			logger.Error("Watcher error: %v", err)
		}
	}
}

func (fw *FileWatcher) Close() error {
	fw.mutex.Lock()
	defer fw.mutex.Unlock()

	if fw.debounceTimer != nil {
		fw.debounceTimer.Stop()
	}

	return fw.watcher.Close()
}

func (fw *FileWatcher) debounceChange() {
	fw.mutex.Lock()
	defer fw.mutex.Unlock()

	if fw.debounceTimer != nil {
		fw.debounceTimer.Stop()
	}

	fw.debounceTimer = time.AfterFunc(500*time.Millisecond, func() {
		logger.Debug("File changes detected, re-analyzing...")
		if err := fw.OnChange(); err != nil {
			logger.Error("Watcher OnChange failed: %v", err)
		}
	})
}

func (fw *FileWatcher) shouldExcludePath(path string) bool {
	relPath, err := filepath.Rel(fw.rootDir, path)
	if err != nil {
		return false
	}

	relPath = filepath.Clean(relPath)

	for _, excludePath := range fw.excludePaths {
		excludePath = filepath.Clean(excludePath)

		if relPath == excludePath {
			return true
		}
		if strings.HasPrefix(relPath, excludePath+string(filepath.Separator)) {
			return true
		}
	}

	return false
}

func (fw *FileWatcher) addWatchersRecursively(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() {
			return nil
		}

		if fw.shouldExcludePath(path) {
			logger.Debug("Excluding directory: %s", path)
			return filepath.SkipDir
		}

		logger.Debug("Adding watcher for: %s", path)
		if err := fw.watcher.Add(path); err != nil {
			return fmt.Errorf("failed to add watcher for %s: %w", path, err)
		}

		return nil
	})
}
