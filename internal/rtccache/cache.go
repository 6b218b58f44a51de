// Package rtccache implements the content-addressed store of compiled
// device code objects, keyed by (kernel_name, arch, toolchain_version,
// generator_hash), with size-bounded LRU eviction. It follows the
// teacher's wisdom.go shape — a plain Go value serialized with
// encoding/gob over an io.Writer/io.Reader, not a SQL schema — since no
// package in the example pack reaches for a SQL or embedded-KV driver.
package rtccache

import (
	"container/list"
	"sync"
)

// Key identifies one compiled code object.
type Key struct {
	Name             string
	Arch             string
	ToolchainVersion int
	GeneratorHash    string
}

// Entry is the value half of a cache row.
type Entry struct {
	Code      []byte
	Timestamp int64
}

// Cache is a size-bounded, concurrency-safe LRU store of compiled code
// objects. A Cache with MaxBytes == 0 never evicts.
type Cache struct {
	mu       sync.Mutex
	entries  map[Key]*list.Element
	order    *list.List // front = most recently used
	maxBytes int64
	curBytes int64
	disabled bool
}

type listValue struct {
	key   Key
	entry Entry
}

// New creates an empty cache bounded by maxBytes (0 = unbounded).
func New(maxBytes int64) *Cache {
	return &Cache{
		entries:  make(map[Key]*list.Element),
		order:    list.New(),
		maxBytes: maxBytes,
	}
}

// Get looks up key; ok is false on a miss or when the cache has been
// disabled after a corruption/incompatible-schema failure.
func (c *Cache) Get(key Key) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disabled {
		return Entry{}, false
	}

	el, ok := c.entries[key]
	if !ok {
		return Entry{}, false
	}

	c.order.MoveToFront(el)

	return el.Value.(*listValue).entry, true
}

// Put inserts or replaces key's entry and updates LRU recency. It is a
// no-op when the cache has been disabled.
func (c *Cache) Put(key Key, entry Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.putLocked(key, entry)
}

func (c *Cache) putLocked(key Key, entry Entry) {
	if c.disabled {
		return
	}

	if el, ok := c.entries[key]; ok {
		old := el.Value.(*listValue)
		c.curBytes -= int64(len(old.entry.Code))
		old.entry = entry
		c.curBytes += int64(len(entry.Code))
		c.order.MoveToFront(el)

		return
	}

	el := c.order.PushFront(&listValue{key: key, entry: entry})
	c.entries[key] = el
	c.curBytes += int64(len(entry.Code))

	c.evictLocked()
}

func (c *Cache) evictLocked() {
	if c.maxBytes <= 0 {
		return
	}

	for c.curBytes > c.maxBytes {
		back := c.order.Back()
		if back == nil {
			return
		}

		lv := back.Value.(*listValue)
		c.curBytes -= int64(len(lv.entry.Code))
		delete(c.entries, lv.key)
		c.order.Remove(back)
	}
}

// Disable marks the cache unavailable: Get always misses, Put is a
// no-op, matching spec.md §4.6's CacheUnavailable failure semantics.
func (c *Cache) Disable() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.disabled = true
}

// Disabled reports whether the cache has been disabled.
func (c *Cache) Disabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.disabled
}

// Len returns the number of entries currently held.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
