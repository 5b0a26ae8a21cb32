package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBTreeCacheGetSet(t *testing.T) {
	base := MemStore()

	k, v := []byte("french"), []byte("fry")

	// empty read
	got, err := base.Get(k)
	require.NoError(t, err)
	assert.Nil(t, got)
	has, err := base.Has(k)
	require.NoError(t, err)
	assert.False(t, has)

	// write and read back
	require.NoError(t, base.Set(k, v))
	got, err = base.Get(k)
	require.NoError(t, err)
	assert.Equal(t, v, got)
	has, err = base.Has(k)
	require.NoError(t, err)
	assert.True(t, has)

	// delete
	require.NoError(t, base.Delete(k))
	got, err = base.Get(k)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCacheWrapWriteCommits(t *testing.T) {
	base := MemStore()
	k, v := []byte("panda"), []byte("pear")

	cache := base.CacheWrap()
	require.NoError(t, cache.Set(k, v))

	// pending write is visible in the cache, not in the base
	got, err := cache.Get(k)
	require.NoError(t, err)
	assert.Equal(t, v, got)
	got, err = base.Get(k)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, cache.Write())

	got, err = base.Get(k)
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestCacheWrapDiscardRollsBack(t *testing.T) {
	base := MemStore()
	k, v := []byte("pizza"), []byte("pie")
	require.NoError(t, base.Set(k, v))

	cache := base.CacheWrap()
	require.NoError(t, cache.Set([]byte("extra"), []byte("data")))
	require.NoError(t, cache.Delete(k))

	// cache sees the delete, base does not
	has, err := cache.Has(k)
	require.NoError(t, err)
	assert.False(t, has)

	cache.Discard()

	got, err := base.Get(k)
	require.NoError(t, err)
	assert.Equal(t, v, got)
	has, err = base.Has([]byte("extra"))
	require.NoError(t, err)
	assert.False(t, has)
}

func TestCacheWrapNested(t *testing.T) {
	base := MemStore()

	outer := base.CacheWrap()
	require.NoError(t, outer.Set([]byte("one"), []byte("1")))

	inner := outer.CacheWrap()
	require.NoError(t, inner.Set([]byte("two"), []byte("2")))

	// inner sees through to the outer layer
	got, err := inner.Get([]byte("one"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), got)

	// drop the inner layer, keep the outer one
	inner.Discard()
	require.NoError(t, outer.Write())

	got, err = base.Get([]byte("one"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), got)
	got, err = base.Get([]byte("two"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLogableStoreRecordsOps(t *testing.T) {
	kv, batch := LogableStore()

	require.NoError(t, kv.Set([]byte("a"), []byte("1")))
	require.NoError(t, kv.Delete([]byte("b")))

	ops := batch.ShowOps()
	require.Len(t, ops, 2)
	assert.True(t, ops[0].IsSetOp())
	assert.False(t, ops[1].IsSetOp())
	assert.Equal(t, []byte("a"), ops[0].Key())
}
