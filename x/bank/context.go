package bank

import (
	"context"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/coin"
)

type contextKey int

const contextKeyAttached contextKey = iota

// WithAttached declares the colored value the host attached to the
// current invocation. The direct swap variant compares this against the
// declared amounts before taking custody.
func WithAttached(ctx tokenswap.Context, funds coin.Coins) tokenswap.Context {
	return context.WithValue(ctx, contextKeyAttached, funds)
}

// Attached returns the colored value attached to the current invocation,
// nil when nothing was attached.
func Attached(ctx tokenswap.Context) coin.Coins {
	val, _ := ctx.Value(contextKeyAttached).(coin.Coins)
	return val
}
