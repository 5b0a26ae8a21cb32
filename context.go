package tokenswap

import (
	"context"
	"time"

	"github.com/iov-one/tokenswap/errors"
)

// Context is just a reexport of the standard library context. We pass it
// through the dispatcher, middleware and handlers. Each extension may add
// its own keys to enrich the context with specific data.
type Context = context.Context

type contextKey int

const (
	contextKeyHeight contextKey = iota
	contextKeyTime
)

// WithHeight sets the block height for the current invocation.
func WithHeight(ctx Context, height int64) Context {
	return context.WithValue(ctx, contextKeyHeight, height)
}

// GetHeight returns the current block height and true, or 0 and false if
// not set.
func GetHeight(ctx Context) (int64, bool) {
	val, ok := ctx.Value(contextKeyHeight).(int64)
	return val, ok
}

// WithBlockTime sets the block time for the current invocation. The block
// time is the only time source the swap engines consult.
func WithBlockTime(ctx Context, t time.Time) Context {
	return context.WithValue(ctx, contextKeyTime, t)
}

// BlockTime returns the block time and true, or a zero value and false if
// not set.
func BlockTime(ctx Context) (time.Time, error) {
	val, ok := ctx.Value(contextKeyTime).(time.Time)
	if !ok {
		return time.Time{}, errors.Wrap(errors.ErrHuman, "block time not present in the context")
	}
	return val, nil
}

// IsExpired returns true if given time is in the past as compared to the
// "now" as declared for the block. Expiration is inclusive, meaning that
// if current time is equal to the expiration time than this function
// returns true.
//
// This function panics if the block time is not provided in the context.
// This must never happen. The panic is here to prevent a broken setup
// from processing data incorrectly.
func IsExpired(ctx Context, t UnixTime) bool {
	blockNow, err := BlockTime(ctx)
	if err != nil {
		panic("block time is not present")
	}
	return t <= AsUnixTime(blockNow)
}
