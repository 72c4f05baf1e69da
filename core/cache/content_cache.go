package cache

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/figgo/figgo/core/logger"
)

type contentEntry struct {
	ContentHash string
	ModTime     time.Time
	Size        int64
}

// ContentCache tracks file content hashes so watch mode can tell real
// edits apart from metadata-only events.
type ContentCache struct {
	entries map[string]*contentEntry
	mutex   sync.RWMutex
}

func NewContentCache() *ContentCache {
	return &ContentCache{
		entries: make(map[string]*contentEntry),
	}
}

// UpdateContent refreshes the entry for filePath and reports whether its
// content changed since the last call. New and deleted files count as
// changed.
func (cc *ContentCache) UpdateContent(filePath string) (bool, error) {
	cc.mutex.Lock()
	defer cc.mutex.Unlock()

	stat, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			if _, exists := cc.entries[filePath]; exists {
				logger.Debug("ContentCache: file deleted: %s", filePath)
				delete(cc.entries, filePath)
				return true, nil
			}
			return false, nil
		}
		return false, fmt.Errorf("failed to stat file %s: %w", filePath, err)
	}

	existing, exists := cc.entries[filePath]

	if !exists {
		logger.Debug("ContentCache: new file detected: %s", filePath)
		hash, err := fileHash(filePath)
		if err != nil {
			return false, err
		}
		cc.entries[filePath] = &contentEntry{
			ContentHash: hash,
			ModTime:     stat.ModTime(),
			Size:        stat.Size(),
		}
		return true, nil
	}

	// Size and modtime unchanged: assume content is the same.
	if stat.Size() == existing.Size && stat.ModTime().Equal(existing.ModTime) {
		return false, nil
	}

	hash, err := fileHash(filePath)
	if err != nil {
		return false, fmt.Errorf("failed to hash %s: %w", filePath, err)
	}

	if hash != existing.ContentHash {
		logger.Debug("ContentCache: content changed for %s", filePath)
		cc.entries[filePath] = &contentEntry{
			ContentHash: hash,
			ModTime:     stat.ModTime(),
			Size:        stat.Size(),
		}
		return true, nil
	}

	// Editor save with identical content.
	existing.ModTime = stat.ModTime()
	existing.Size = stat.Size()
	return false, nil
}

// UpdateAll refreshes every given file and reports whether any changed.
// Cached files absent from the list are dropped and count as a change:
// callers re-enumerate the directory, so a deleted file simply stops
// appearing and would otherwise never be consulted again.
func (cc *ContentCache) UpdateAll(files []string) bool {
	changed := false
	current := make(map[string]struct{}, len(files))
	for _, file := range files {
		current[file] = struct{}{}
		fileChanged, err := cc.UpdateContent(file)
		if err != nil {
			logger.Debug("ContentCache: %v", err)
			continue
		}
		if fileChanged {
			changed = true
		}
	}

	cc.mutex.Lock()
	for path := range cc.entries {
		if _, tracked := current[path]; tracked {
			continue
		}
		logger.Debug("ContentCache: file no longer tracked: %s", path)
		delete(cc.entries, path)
		changed = true
	}
	cc.mutex.Unlock()

	return changed
}

// Clear removes all entries.
func (cc *ContentCache) Clear() {
	cc.mutex.Lock()
	defer cc.mutex.Unlock()
	cc.entries = make(map[string]*contentEntry)
}

func fileHash(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", hash.Sum(nil)), nil
}
