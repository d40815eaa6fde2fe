// Package cache memoizes normalized extract tables. An entry is keyed
// by file path and validated against the file's modification time and
// size, so an unchanged file is never re-read while a replaced file is
// reloaded on the next request. Callers can also invalidate explicitly.
package cache

import (
	"os"
	"sync"
	"time"

	"censusboard/domain/census"

	"golang.org/x/sync/singleflight"
)

// LoadFunc produces the table for a path on a cache miss.
type LoadFunc func() (census.Table, error)

type entry struct {
	table    census.Table
	modTime  time.Time
	size     int64
	loadedAt time.Time
}

// ExtractCache memoizes load results per file path.
type ExtractCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	group   singleflight.Group
	ttl     time.Duration
}

// New creates a cache. A zero ttl disables time-based expiry; entries
// then stay valid as long as the underlying file is unchanged.
func New(ttl time.Duration) *ExtractCache {
	return &ExtractCache{
		entries: make(map[string]entry),
		ttl:     ttl,
	}
}

// GetOrLoad returns the cached table for path when the file on disk is
// unchanged, otherwise runs load. Concurrent misses for the same path
// collapse into one load.
func (c *ExtractCache) GetOrLoad(path string, load LoadFunc) (census.Table, error) {
	info, statErr := os.Stat(path)
	if statErr == nil {
		if table, ok := c.lookup(path, info); ok {
			return table, nil
		}
	}

	v, err, _ := c.group.Do(path, func() (interface{}, error) {
		// Re-check: another caller may have populated the entry while
		// this one waited on the flight group.
		if info != nil {
			if table, ok := c.lookup(path, info); ok {
				return table, nil
			}
		}

		table, err := load()
		if err != nil {
			return census.Table{}, err
		}
		c.store(path, table)
		return table, nil
	})
	if err != nil {
		return census.Table{}, err
	}
	return v.(census.Table), nil
}

func (c *ExtractCache) lookup(path string, info os.FileInfo) (census.Table, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[path]
	if !ok {
		return census.Table{}, false
	}
	if !e.modTime.Equal(info.ModTime()) || e.size != info.Size() {
		return census.Table{}, false
	}
	if c.ttl > 0 && time.Since(e.loadedAt) > c.ttl {
		return census.Table{}, false
	}
	return e.table, true
}

func (c *ExtractCache) store(path string, table census.Table) {
	e := entry{table: table, loadedAt: time.Now()}
	if info, err := os.Stat(path); err == nil {
		e.modTime = info.ModTime()
		e.size = info.Size()
	}

	c.mu.Lock()
	c.entries[path] = e
	c.mu.Unlock()
}

// Invalidate drops the entry for path. The next request reloads.
func (c *ExtractCache) Invalidate(path string) {
	c.mu.Lock()
	delete(c.entries, path)
	c.mu.Unlock()
}

// InvalidateAll drops every entry.
func (c *ExtractCache) InvalidateAll() {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
}

// Len returns the number of cached entries.
func (c *ExtractCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
