package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Cache stores successful API responses in a badger database.
type Cache struct {
	db *badger.DB
}

type entry struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// Open opens (or creates) a cache rooted at dir.
func Open(dir string) (*Cache, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	opts.CompactL0OnClose = true
	return open(opts)
}

// OpenInMemory opens a cache that lives only as long as the process.
func OpenInMemory() (*Cache, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Cache, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close flushes and closes the database.
func (c *Cache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Purge removes every cached response.
func (c *Cache) Purge() error {
	if err := c.db.DropAll(); err != nil {
		return fmt.Errorf("purge cache: %w", err)
	}
	return nil
}

// get returns the entry under key. A missing or expired key reports ok=false.
func (c *Cache) get(key string) (e entry, ok bool, err error) {
	err = c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &e)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return entry{}, false, nil
	}
	if err != nil {
		return entry{}, false, fmt.Errorf("read cache: %w", err)
	}
	return e, true, nil
}

// put stores e under key. A zero ttl keeps the entry until Purge.
func (c *Cache) put(key string, e entry, ttl time.Duration) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}
	return c.db.Update(func(txn *badger.Txn) error {
		be := badger.NewEntry([]byte(key), data)
		if ttl > 0 {
			be = be.WithTTL(ttl)
		}
		return txn.SetEntry(be)
	})
}
