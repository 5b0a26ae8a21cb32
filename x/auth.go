package x

import (
	"github.com/iov-one/tokenswap"
)

// Authenticator is an interface we can use to extract authentication info
// from the context. This should be passed into the constructor of
// handlers, so we can plug in another authentication system, rather than
// hard-coding one implementation for all extensions.
type Authenticator interface {
	// GetConditions reveals all Conditions fulfilled
	GetConditions(tokenswap.Context) []tokenswap.Condition
	// HasAddress checks if any condition matches this address
	HasAddress(tokenswap.Context, tokenswap.Address) bool
}

// MultiAuth chains together many Authenticators into one
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth groups together a series of Authenticator
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls}
}

// GetConditions combines all Conditions from all Authenticators
func (m MultiAuth) GetConditions(ctx tokenswap.Context) []tokenswap.Condition {
	var res []tokenswap.Condition
	for _, impl := range m.impls {
		add := impl.GetConditions(ctx)
		if len(add) > 0 {
			res = append(res, add...)
		}
	}
	return res
}

// HasAddress returns true iff any Authenticator supports this
func (m MultiAuth) HasAddress(ctx tokenswap.Context, addr tokenswap.Address) bool {
	for _, impl := range m.impls {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// MainSigner returns the first signed condition or nil if none was found.
// This is the caller identity every swap operation is attributed to.
func MainSigner(ctx tokenswap.Context, auth Authenticator) tokenswap.Condition {
	signers := auth.GetConditions(ctx)
	if len(signers) == 0 {
		return nil
	}
	return signers[0]
}
