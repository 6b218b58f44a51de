package rtccache

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
)

// serializedEntry is the gob-friendly row shape; Key and Entry stay
// unexported-field-free so gob can round-trip them directly, but a
// named wrapper keeps the on-disk schema independent of Cache's
// in-memory list bookkeeping.
type serializedEntry struct {
	Key   Key
	Entry Entry
}

// Serialize exports every entry as a self-contained blob, per spec.md
// §4.6.
func (c *Cache) Serialize() ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rows := make([]serializedEntry, 0, len(c.entries))
	for el := c.order.Front(); el != nil; el = el.Next() {
		lv := el.Value.(*listValue)
		rows = append(rows, serializedEntry{Key: lv.key, Entry: lv.entry})
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(rows); err != nil {
		return nil, fmt.Errorf("rtccache: serialize: %w", err)
	}

	return buf.Bytes(), nil
}

// Deserialize merges blob's entries into c: existing entries are kept,
// and an incoming entry with a key already present replaces it only if
// its timestamp is newer. It takes the cache's exclusive lock for the
// whole merge to avoid schema collisions with a concurrent Put.
func (c *Cache) Deserialize(blob []byte) error {
	var rows []serializedEntry
	if err := gob.NewDecoder(bytes.NewReader(blob)).Decode(&rows); err != nil {
		return fmt.Errorf("rtccache: deserialize: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, row := range rows {
		if existing, ok := c.entries[row.Key]; ok {
			if existing.Value.(*listValue).entry.Timestamp >= row.Entry.Timestamp {
				continue
			}
		}

		c.putLocked(row.Key, row.Entry)
	}

	return nil
}

// LoadFile reads path and deserializes it into a fresh Cache bounded by
// maxBytes. A missing file yields an empty cache, not an error. A
// corrupt or incompatible file disables the returned cache per spec.md
// §4.6's CacheUnavailable semantics, and the error is still returned so
// the caller can log it once.
func LoadFile(path string, maxBytes int64) (*Cache, error) {
	c := New(maxBytes)

	blob, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}

		c.Disable()

		return c, fmt.Errorf("rtccache: read %s: %w", path, err)
	}

	if err := c.Deserialize(blob); err != nil {
		c.Disable()

		return c, err
	}

	return c, nil
}

// SaveFile serializes c and writes it to path, creating parent
// directories as needed.
func (c *Cache) SaveFile(path string) error {
	blob, err := c.Serialize()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("rtccache: mkdir for %s: %w", path, err)
	}

	if err := os.WriteFile(path, blob, 0o644); err != nil {
		return fmt.Errorf("rtccache: write %s: %w", path, err)
	}

	return nil
}
