package tokenswap

// ReadOnlyKVStore is a subset of KVStore passed to query handlers. Queries
// must never mutate state.
type ReadOnlyKVStore interface {
	// Get returns nil iff key doesn't exist. Panics on nil key.
	Get(key []byte) ([]byte, error)

	// Has checks if a key exists. Panics on nil key.
	Has(key []byte) (bool, error)
}

// KVStore is a simple interface to get/set data.
//
// For simplicity, we require all backing stores to implement this
// interface. They *may* implement other methods as well, but at least
// these are required.
type KVStore interface {
	ReadOnlyKVStore

	// Set sets the key. Panics on nil key.
	Set(key, value []byte) error

	// Delete deletes the key. Panics on nil key.
	Delete(key []byte) error
}

// SetDeleter is a minimal interface for writing batched operations out.
type SetDeleter interface {
	Set(key, value []byte) error
	Delete(key []byte) error
}

// Batch groups writes so they can be applied to a backing store in one
// shot, or dropped altogether.
type Batch interface {
	SetDeleter
	Write() error
}

// CacheableKVStore is a KVStore that supports CacheWrapping
//
// CacheWrap() should not return a Committer, since Commit() on
// cache-wraps make no sense.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap allows us to maintain a scratch-pad of uncommitted data that
// we can view with all queries.
//
// At the end, call Write to use the cached data, or Discard to drop it.
// This is the per-invocation transaction boundary: every mutating swap
// operation runs against a cache wrap and only a fully successful
// invocation is ever written back.
type KVCacheWrap interface {
	// CacheableKVStore allows us to use this Cache recursively
	CacheableKVStore

	// Write syncs with the underlying store.
	Write() error

	// Discard invalidates this CacheWrap and releases all data
	Discard()
}
