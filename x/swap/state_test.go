package swap

import (
	"context"
	"testing"
	"time"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/stretchr/testify/assert"
)

func TestStateTerminal(t *testing.T) {
	assert.False(t, Open.Terminal())
	assert.True(t, Cancelled.Terminal())
	assert.True(t, Finalized.Terminal())
}

func TestEnsureOpen(t *testing.T) {
	assert.NoError(t, EnsureOpen(Open))
	assert.True(t, errors.ErrState.Is(EnsureOpen(Cancelled)))
	assert.True(t, errors.ErrState.Is(EnsureOpen(Finalized)))
}

func TestStateValidate(t *testing.T) {
	assert.NoError(t, Open.Validate())
	assert.NoError(t, Finalized.Validate())
	assert.True(t, errors.ErrState.Is(State(42).Validate()))
}

func TestIsClosed(t *testing.T) {
	started := tokenswap.UnixTime(1000)
	open := tokenswap.UnixDuration(600)

	at := func(unix int64) tokenswap.Context {
		return tokenswap.WithBlockTime(context.Background(), time.Unix(unix, 0))
	}

	// window covers [started, started+open], both ends inclusive
	assert.False(t, IsClosed(at(1000), started, open))
	assert.False(t, IsClosed(at(1599), started, open))
	assert.False(t, IsClosed(at(1600), started, open))
	assert.True(t, IsClosed(at(1601), started, open))
}

func TestIsClosedPanicsWithoutBlockTime(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	IsClosed(context.Background(), 1, 1)
}
