package app

import (
	"fmt"
	"regexp"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
)

// isPath ensures route expressions stay simple
var isPath = regexp.MustCompile(`^[a-zA-Z0-9_/]+$`).MatchString

// Router allows us to register many handlers with different paths and to
// route the incoming invocations to the proper one.
type Router struct {
	routes map[string]tokenswap.Handler
}

var _ tokenswap.Registry = (*Router)(nil)
var _ tokenswap.Handler = (*Router)(nil)

// NewRouter initializes a router with no routes
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]tokenswap.Handler, 10),
	}
}

// Handle adds a new Handler for the given path. Panics on duplicate or
// malformed path, as this is a programming setup error.
func (r *Router) Handle(path string, h tokenswap.Handler) {
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %s", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.routes[path] = h
}

// Handler returns the registered Handler for this path. If no path is
// found, returns a noSuchPathHandler that errors on all operations.
func (r *Router) Handler(path string) tokenswap.Handler {
	h, ok := r.routes[path]
	if !ok {
		return noSuchPathHandler{path}
	}
	return h
}

// Check dispatches to the proper handler based on the message path.
func (r *Router) Check(ctx tokenswap.Context, store tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.Handler(msg.Path()).Check(ctx, store, tx)
}

// Deliver dispatches to the proper handler based on the message path.
func (r *Router) Deliver(ctx tokenswap.Context, store tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.Handler(msg.Path()).Deliver(ctx, store, tx)
}

type noSuchPathHandler struct {
	path string
}

var _ tokenswap.Handler = noSuchPathHandler{}

func (h noSuchPathHandler) Check(tokenswap.Context, tokenswap.KVStore, tokenswap.Tx) (*tokenswap.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for path %q", h.path)
}

func (h noSuchPathHandler) Deliver(tokenswap.Context, tokenswap.KVStore, tokenswap.Tx) (*tokenswap.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for path %q", h.path)
}
