package server

import (
	"log"
	"sync"

	"github.com/ironsheep/region-decoder/internal/decoder"
)

// DecoderCache keeps one open decoder per image path so that repeated tool
// calls against the same file reuse its header and, for the retained backend,
// its decoded pixels.
//
// DecoderCache is safe for concurrent use. The map is guarded by an RWMutex;
// each entry carries its own mutex because a Decoder is not safe for
// concurrent use.
//
// Entries live until Evict or Clear. The cache stores decoders keyed by the
// exact path string provided, so relative and absolute paths to one file are
// separate entries.
type DecoderCache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry

	cfg    decoder.Config
	logger *log.Logger
}

type cacheEntry struct {
	mu  sync.Mutex
	dec *decoder.Decoder
}

// NewDecoderCache creates an empty cache that opens decoders with cfg and
// reports their lifecycle to logger. A nil logger discards messages.
func NewDecoderCache(cfg decoder.Config, logger *log.Logger) *DecoderCache {
	return &DecoderCache{
		entries: make(map[string]*cacheEntry),
		cfg:     cfg,
		logger:  logger,
	}
}

// With runs fn with the decoder for path, opening it on first use. Calls for
// the same path are serialized.
func (c *DecoderCache) With(path string, fn func(d *decoder.Decoder) error) error {
	e, err := c.entry(path)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.dec)
}

func (c *DecoderCache) entry(path string) (*cacheEntry, error) {
	c.mu.RLock()
	if e, ok := c.entries[path]; ok {
		c.mu.RUnlock()
		return e, nil
	}
	c.mu.RUnlock()

	dec, err := decoder.Open(decoder.FromPath(path), true,
		decoder.WithConfig(c.cfg), decoder.WithLogger(c.logger))
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[path]; ok {
		// another caller opened it first
		dec.Recycle()
		return e, nil
	}
	e := &cacheEntry{dec: dec}
	c.entries[path] = e
	return e, nil
}

// Evict recycles and forgets the decoder for path. It reports whether one was
// cached.
func (c *DecoderCache) Evict(path string) bool {
	c.mu.Lock()
	e, ok := c.entries[path]
	delete(c.entries, path)
	c.mu.Unlock()

	if ok {
		e.mu.Lock()
		e.dec.Recycle()
		e.mu.Unlock()
	}
	return ok
}

// Clear recycles every cached decoder.
func (c *DecoderCache) Clear() {
	c.mu.Lock()
	entries := c.entries
	c.entries = make(map[string]*cacheEntry)
	c.mu.Unlock()

	for _, e := range entries {
		e.mu.Lock()
		e.dec.Recycle()
		e.mu.Unlock()
	}
}

// Len returns the number of cached decoders.
func (c *DecoderCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
