package app

import (
	"github.com/iov-one/tokenswap"
)

// Deliver executes one invocation inside its own transaction boundary.
//
// The handler runs against a cache wrap of the store. Only when the whole
// invocation succeeds is the cache written back; any error discards every
// state change performed so far, including sub-calls into other
// components. This reproduces the all-or-nothing semantics the hosting
// system guarantees per invocation.
func Deliver(ctx tokenswap.Context, db tokenswap.CacheableKVStore, h tokenswap.Deliverer, tx tokenswap.Tx) (*tokenswap.DeliverResult, error) {
	cache := db.CacheWrap()
	res, err := h.Deliver(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, err
	}
	return res, nil
}

// Check runs the dry-run path of one invocation. State changes are always
// discarded; only the result (or error) is reported.
func Check(ctx tokenswap.Context, db tokenswap.CacheableKVStore, h tokenswap.Checker, tx tokenswap.Tx) (*tokenswap.CheckResult, error) {
	cache := db.CacheWrap()
	defer cache.Discard()
	return h.Check(ctx, cache, tx)
}
