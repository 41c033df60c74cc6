package sql

import (
	"fmt"
	"hash/crc64"

	lru "github.com/hashicorp/golang-lru"
	errors "gopkg.in/src-d/go-errors.v1"
)

var table = crc64.MakeTable(crc64.ISO)

// CacheKey returns a hash of the given value to be used as key in
// a cache.
func CacheKey(v interface{}) uint64 {
	return crc64.Checksum([]byte(fmt.Sprintf("%#v", v)), table)
}

// ErrKeyNotFound is returned when the key could not be found in the cache.
var ErrKeyNotFound = errors.NewKind("memory: key %d not found in cache")

// KeyValueCache is a cache of keys to values shared between sessions. The
// compiled expression cache is one of these.
type KeyValueCache interface {
	// Put a new value in the cache.
	Put(k uint64, v interface{}) error
	// Get the value with the given key, erroring with ErrKeyNotFound if it
	// is not present.
	Get(k uint64) (interface{}, error)
}

type lruCache struct {
	size  int
	cache *lru.Cache
}

// NewLRUCache returns a KeyValueCache with a bounded number of entries and
// LRU eviction.
func NewLRUCache(size uint) KeyValueCache {
	lru, _ := lru.New(int(size))
	return &lruCache{size: int(size), cache: lru}
}

func (l *lruCache) Put(k uint64, v interface{}) error {
	l.cache.Add(k, v)
	return nil
}

func (l *lruCache) Get(k uint64) (interface{}, error) {
	v, ok := l.cache.Get(k)
	if !ok {
		return nil, ErrKeyNotFound.New(k)
	}

	return v, nil
}

func (l *lruCache) Free() {
	l.cache, _ = lru.New(l.size)
}
