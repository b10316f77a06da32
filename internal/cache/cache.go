// Package cache persists GitHub search results between runs so repeated
// invocations do not burn through the search quota (10 requests/minute when
// unauthenticated).
package cache

import (
	"bytes"
	"encoding/gob"
	"log"
	"os"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Entries expire after an hour; a snapshot refresh that runs more often than
// that is serving stale data anyway.
const (
	defaultExpiration = 1 * time.Hour
	cleanupInterval   = 2 * time.Hour
)

// Cache wraps go-cache with GOB persistence. Concrete types stored through
// Set must be gob-registered by the caller before SaveToFile is used.
type Cache struct {
	inner *gocache.Cache
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{inner: gocache.New(defaultExpiration, cleanupInterval)}
}

// LoadFromFile loads a cache from a GOB file. A missing or unreadable file
// yields a fresh cache rather than an error so a corrupt cache can never
// block an update run.
func LoadFromFile(filename string) (*Cache, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, err
	}
	dec := gob.NewDecoder(bytes.NewBuffer(data))
	items := map[string]gocache.Item{}
	if err := dec.Decode(&items); err != nil {
		log.Printf("Cache decode error (starting fresh): %v", err)
		return New(), nil
	}
	return &Cache{inner: gocache.NewFrom(defaultExpiration, cleanupInterval, items)}, nil
}

// SaveToFile saves the cache to a GOB file.
func (c *Cache) SaveToFile(filename string) error {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(c.inner.Items()); err != nil {
		return err
	}
	return os.WriteFile(filename, buf.Bytes(), 0600)
}

// Get retrieves a value by key.
func (c *Cache) Get(key string) (any, bool) {
	return c.inner.Get(key)
}

// Set stores a value with the default expiration.
func (c *Cache) Set(key string, val any) {
	c.inner.Set(key, val, gocache.DefaultExpiration)
}

// Flush clears all cached items.
func (c *Cache) Flush() {
	c.inner.Flush()
}
