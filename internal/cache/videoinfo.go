package cache

//go:generate mockgen -source=videoinfo.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"log/slog"
	"sync"

	"video_tagger/internal/domain"
)

type Fetcher interface {
	FetchVideo(ctx context.Context, bvid string) (*domain.VideoMetadata, error)
}

// VideoInfo memoizes video metadata for the lifetime of the process.
// Entries are never refreshed or evicted. Concurrent misses for the same
// bvid each fetch; the last one to finish wins.
type VideoInfo struct {
	fetcher Fetcher
	logger  *slog.Logger

	mu      sync.RWMutex
	entries map[string]*domain.VideoMetadata
}

func NewVideoInfo(fetcher Fetcher, logger *slog.Logger) *VideoInfo {
	return &VideoInfo{
		fetcher: fetcher,
		logger:  logger.With("component", "video_cache"),
		entries: make(map[string]*domain.VideoMetadata),
	}
}

func (c *VideoInfo) Get(ctx context.Context, bvid string) (*domain.VideoMetadata, error) {
	c.mu.RLock()
	meta, ok := c.entries[bvid]
	c.mu.RUnlock()
	if ok {
		c.logger.Debug("cache hit", "bvid", bvid)
		return meta, nil
	}

	meta, err := c.fetcher.FetchVideo(ctx, bvid)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[bvid] = meta
	size := len(c.entries)
	c.mu.Unlock()

	c.logger.Debug("cache miss, stored", "bvid", bvid, "size", size)

	return meta, nil
}

func (c *VideoInfo) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
