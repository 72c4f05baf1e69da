package cache

import (
	"sync"

	"github.com/figgo/figgo/core/logger"
)

var (
	globalContentCache *ContentCache
	cacheOnce          sync.Once
)

// GetContentCache returns the process-wide content cache instance.
func GetContentCache() *ContentCache {
	cacheOnce.Do(func() {
		globalContentCache = NewContentCache()
		logger.Debug("Initialized global content cache")
	})
	return globalContentCache
}
