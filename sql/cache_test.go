package sql_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/src-d/go-expression-dag.v0/sql"
)

func TestLRUCache(t *testing.T) {
	require := require.New(t)

	cache := sql.NewLRUCache(2)
	require.NoError(cache.Put(1, "one"))
	require.NoError(cache.Put(2, "two"))

	v, err := cache.Get(1)
	require.NoError(err)
	require.Equal("one", v)

	// The least recently used entry is evicted once the cache is over
	// capacity: 1 was just read, so 2 goes.
	require.NoError(cache.Put(3, "three"))
	_, err = cache.Get(2)
	require.True(sql.ErrKeyNotFound.Is(err))

	v, err = cache.Get(3)
	require.NoError(err)
	require.Equal("three", v)
}

func TestCacheKey(t *testing.T) {
	require := require.New(t)

	require.Equal(sql.CacheKey("a"), sql.CacheKey("a"))
	require.NotEqual(sql.CacheKey("a"), sql.CacheKey("b"))
}
