package x_test

import (
	"context"
	"testing"

	"github.com/iov-one/tokenswap/swaptest"
	"github.com/iov-one/tokenswap/x"
	"github.com/stretchr/testify/assert"
)

func TestMainSigner(t *testing.T) {
	auth := swaptest.CtxAuth{Key: "auth"}

	first := swaptest.NewCondition()
	second := swaptest.NewCondition()

	ctx := auth.SetConditions(context.Background(), first, second)
	assert.Equal(t, first, x.MainSigner(ctx, auth))

	assert.Nil(t, x.MainSigner(context.Background(), auth))
}

func TestChainAuth(t *testing.T) {
	a := swaptest.CtxAuth{Key: "a"}
	b := swaptest.CtxAuth{Key: "b"}
	multi := x.ChainAuth(a, b)

	condA := swaptest.NewCondition()
	condB := swaptest.NewCondition()

	ctx := a.SetConditions(context.Background(), condA)
	ctx = b.SetConditions(ctx, condB)

	assert.Len(t, multi.GetConditions(ctx), 2)
	assert.True(t, multi.HasAddress(ctx, condA.Address()))
	assert.True(t, multi.HasAddress(ctx, condB.Address()))
	assert.False(t, multi.HasAddress(ctx, swaptest.NewCondition().Address()))
}
