/*
Package registry implements the persistent swap-id keyed record map.

A Registry is a named prefix over the underlying key-value store, mapping
an opaque caller-chosen swap id to the serialized record bytes. It knows
nothing about the record layout; the engines own the codec. The registry
enforces exactly one rule of its own: a record can be created only if the
id is not taken yet. There is deliberately no delete — settled swaps are
kept forever, flagged by their terminal state.
*/
package registry

import (
	"regexp"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
)

// isRegistryName ensures a registry name is a valid key prefix. Keep it
// short as it is prepended to every stored key.
var isRegistryName = regexp.MustCompile(`^[a-z]{3,10}$`).MatchString

// Registry is a named, prefixed map from swap id to raw record bytes.
// All copies of the same named registry address the same data.
type Registry struct {
	prefix []byte
}

// New returns a registry with given name. Panics on invalid name, as this
// is a programming setup error.
func New(name string) Registry {
	if !isRegistryName(name) {
		panic("invalid registry name: " + name)
	}
	return Registry{
		prefix: append([]byte(name), ':'),
	}
}

// DBKey returns the full key under which given swap id is stored.
func (r Registry) DBKey(swapID string) []byte {
	// copy to make sure callers cannot clobber the shared prefix
	key := make([]byte, 0, len(r.prefix)+len(swapID))
	key = append(key, r.prefix...)
	return append(key, swapID...)
}

// Has returns true if a record exists under given swap id.
func (r Registry) Has(db tokenswap.ReadOnlyKVStore, swapID string) (bool, error) {
	return db.Has(r.DBKey(swapID))
}

// Get returns the raw record bytes stored under given swap id. A missing
// record is an error.
func (r Registry) Get(db tokenswap.ReadOnlyKVStore, swapID string) ([]byte, error) {
	raw, err := db.Get(r.DBKey(swapID))
	if err != nil {
		return nil, errors.Wrap(err, "cannot load record")
	}
	if raw == nil {
		return nil, errors.Wrap(errors.ErrNotFound, "swap id does not exist")
	}
	return raw, nil
}

// Set unconditionally stores the raw record bytes under given swap id.
// Use Create for the initial write.
func (r Registry) Set(db tokenswap.KVStore, swapID string, raw []byte) error {
	return db.Set(r.DBKey(swapID), raw)
}

// Create stores the raw record bytes under given swap id only if the id
// is not used yet. A taken id is an error.
func (r Registry) Create(db tokenswap.KVStore, swapID string, raw []byte) error {
	switch taken, err := r.Has(db, swapID); {
	case err != nil:
		return errors.Wrap(err, "cannot check record existence")
	case taken:
		return errors.Wrap(errors.ErrDuplicate, "swap id already exists")
	}
	return r.Set(db, swapID, raw)
}

// Register registers this registry under given path so the raw record
// bytes can be fetched by queries. The response value shares the wire
// format with the persisted record.
func (r Registry) Register(path string, qr tokenswap.QueryRouter) {
	qr.Register(path, r)
}

var _ tokenswap.QueryHandler = Registry{}

// Query implements the QueryHandler interface. The data is the swap id.
func (r Registry) Query(db tokenswap.ReadOnlyKVStore, data []byte) ([]tokenswap.Model, error) {
	raw, err := r.Get(db, string(data))
	if err != nil {
		return nil, err
	}
	return []tokenswap.Model{
		{Key: r.DBKey(string(data)), Value: raw},
	}, nil
}
