package tokenswap

import (
	"fmt"
	"regexp"
)

// Model groups a raw key and the stored value as returned by queries. For
// swap records the value is the exact serialized record bytes, so the
// query response shares the wire format with the persisted state.
type Model struct {
	Key   []byte
	Value []byte
}

// QueryHandler is anything that can process read-only queries against the
// state.
type QueryHandler interface {
	Query(db ReadOnlyKVStore, data []byte) ([]Model, error)
}

var isQueryPath = regexp.MustCompile(`^[a-z0-9_\-]{3,20}(/[a-z0-9_\-]{3,20})?$`).MatchString

// QueryRouter allows us to register many query handlers, each at its own
// path, and dispatch to the proper one.
type QueryRouter struct {
	routes map[string]QueryHandler
}

// NewQueryRouter initializes a QueryRouter with no routes
func NewQueryRouter() QueryRouter {
	return QueryRouter{
		routes: make(map[string]QueryHandler, 10),
	}
}

// RegisterQuery adds a handler at this path. Panics on duplicate or
// malformed path, as this is a programming setup error.
func (r QueryRouter) Register(path string, h QueryHandler) {
	if !isQueryPath(path) {
		panic(fmt.Sprintf("invalid query path: %s", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering query path: %s", path))
	}
	r.routes[path] = h
}

// Handler returns the registered Handler or nil.
func (r QueryRouter) Handler(path string) QueryHandler {
	return r.routes[path]
}
