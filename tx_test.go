package tokenswap_test

import (
	"testing"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/swaptest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMsg(t *testing.T) {
	msg := &swaptest.Msg{RoutePath: "test/any", Serialized: []byte("payload")}
	tx := &swaptest.Tx{Msg: msg}

	var got swaptest.Msg
	require.NoError(t, tokenswap.LoadMsg(tx, &got))
	assert.Equal(t, []byte("payload"), got.Serialized)
}

func TestLoadMsgInvalidContent(t *testing.T) {
	msg := &swaptest.Msg{RoutePath: "test/any", Err: errors.ErrEmpty}
	tx := &swaptest.Tx{Msg: msg}

	var got swaptest.Msg
	err := tokenswap.LoadMsg(tx, &got)
	assert.True(t, errors.ErrEmpty.Is(err))
}

func TestLoadMsgWrongDestination(t *testing.T) {
	tx := &swaptest.Tx{Msg: &swaptest.Msg{RoutePath: "test/any"}}

	err := tokenswap.LoadMsg(tx, &anotherMsg{})
	assert.True(t, errors.ErrType.Is(err))
}

type anotherMsg struct {
	swaptest.Msg
}

func TestQueryRouter(t *testing.T) {
	qr := tokenswap.NewQueryRouter()

	var q queryFunc = func(db tokenswap.ReadOnlyKVStore, data []byte) ([]tokenswap.Model, error) {
		return nil, nil
	}
	qr.Register("myswaps", q)
	qr.Register("myswaps/extra", q)

	assert.NotNil(t, qr.Handler("myswaps"))
	assert.NotNil(t, qr.Handler("myswaps/extra"))
	assert.Nil(t, qr.Handler("other"))

	assert.Panics(t, func() { qr.Register("myswaps", q) })
	assert.Panics(t, func() { qr.Register("Bad Path!", q) })
}

type queryFunc func(db tokenswap.ReadOnlyKVStore, data []byte) ([]tokenswap.Model, error)

func (f queryFunc) Query(db tokenswap.ReadOnlyKVStore, data []byte) ([]tokenswap.Model, error) {
	return f(db, data)
}
