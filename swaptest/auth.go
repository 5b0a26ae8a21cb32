package swaptest

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/x"
)

// CtxAuth is an authenticator that reads conditions from the context,
// stored under the configured key. Tests declare the caller identity with
// SetConditions before dispatching.
type CtxAuth struct {
	Key string
}

var _ x.Authenticator = CtxAuth{}

// SetConditions returns a context with given conditions attached.
func (a CtxAuth) SetConditions(ctx tokenswap.Context, conds ...tokenswap.Condition) tokenswap.Context {
	return context.WithValue(ctx, a.Key, conds)
}

// GetConditions returns the conditions previously attached to the context.
func (a CtxAuth) GetConditions(ctx tokenswap.Context) []tokenswap.Condition {
	val, _ := ctx.Value(a.Key).([]tokenswap.Condition)
	return val
}

// HasAddress returns true if any attached condition matches the address.
func (a CtxAuth) HasAddress(ctx tokenswap.Context, addr tokenswap.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if c.Address().Equals(addr) {
			return true
		}
	}
	return false
}

// NewCondition returns a random signature condition. Each call returns a
// different one.
func NewCondition() tokenswap.Condition {
	data := make([]byte, 8)
	if _, err := rand.Read(data); err != nil {
		panic(err)
	}
	return tokenswap.NewCondition("sigs", "ed25519", []byte(hex.EncodeToString(data)))
}
