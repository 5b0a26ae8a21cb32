package colorswap

import (
	"context"
	"testing"
	"time"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/app"
	"github.com/iov-one/tokenswap/coin"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/store"
	"github.com/iov-one/tokenswap/swaptest"
	"github.com/iov-one/tokenswap/x/bank"
	"github.com/iov-one/tokenswap/x/swap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	sender    = swaptest.NewCondition()
	recipient = swaptest.NewCondition()
	stranger  = swaptest.NewCondition()

	blockNow = time.Unix(10000, 0)
)

type testEnv struct {
	db   tokenswap.CacheableKVStore
	auth swaptest.CtxAuth
	cash bank.Controller
	rt   *app.Router
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		db:   store.MemStore(),
		auth: swaptest.CtxAuth{Key: "auth"},
		cash: bank.NewController(),
	}
	env.rt = app.NewRouter()
	RegisterRoutes(env.rt, env.auth, env.cash)

	require.NoError(t, env.cash.IssueCoins(env.db, sender.Address(), coin.NewCoin("RED", 100)))
	require.NoError(t, env.cash.IssueCoins(env.db, recipient.Address(), coin.NewCoin("BLUE", 50)))
	return env
}

// ctx returns a context with block time set, authenticated as given
// caller and carrying the attached funds.
func (env *testEnv) ctx(caller tokenswap.Condition, attached ...coin.Coin) tokenswap.Context {
	ctx := tokenswap.WithBlockTime(context.Background(), blockNow)
	ctx = env.auth.SetConditions(ctx, caller)
	if len(attached) != 0 {
		ctx = bank.WithAttached(ctx, coin.Coins(attached))
	}
	return ctx
}

func startMsg() *StartSwapMsg {
	return &StartSwapMsg{
		SwapID:           "s1",
		ColorSender:      "RED",
		AmountSender:     100,
		ColorRecipient:   "BLUE",
		AmountRecipient:  50,
		AddressRecipient: recipient.Address(),
		Duration:         3600,
	}
}

func (env *testEnv) start(t *testing.T) {
	t.Helper()
	ctx := env.ctx(sender, coin.NewCoin("RED", 100))
	_, err := env.rt.Deliver(ctx, env.db, &swaptest.Tx{Msg: startMsg()})
	require.NoError(t, err)
}

func (env *testEnv) balance(t *testing.T, addr tokenswap.Address, color string) int64 {
	t.Helper()
	coins, err := env.cash.Balance(env.db, addr)
	require.NoError(t, err)
	return coins.AmountOf(color)
}

func TestStartSwap(t *testing.T) {
	env := newTestEnv(t)
	env.start(t)

	// deposit is held in escrow
	assert.Equal(t, int64(0), env.balance(t, sender.Address(), "RED"))
	assert.Equal(t, int64(100), env.balance(t, SwapAddr("s1"), "RED"))

	record, err := loadSwap(env.db, "s1")
	require.NoError(t, err)
	assert.Equal(t, swap.Open, record.State)
	assert.Equal(t, sender.Address(), record.AddressSender)
	assert.Equal(t, tokenswap.AsUnixTime(blockNow), record.WhenStarted)
}

func TestStartSwapDuplicateIDRollsBack(t *testing.T) {
	env := newTestEnv(t)
	env.start(t)

	require.NoError(t, env.cash.IssueCoins(env.db, sender.Address(), coin.NewCoin("RED", 100)))

	// dispatch through the transaction boundary so the custody transfer
	// of the losing invocation is undone
	ctx := env.ctx(sender, coin.NewCoin("RED", 100))
	_, err := app.Deliver(ctx, env.db, env.rt, &swaptest.Tx{Msg: startMsg()})
	assert.True(t, errors.ErrDuplicate.Is(err))
	assert.Contains(t, err.Error(), "swap id already exists")

	assert.Equal(t, int64(100), env.balance(t, sender.Address(), "RED"))
	assert.Equal(t, int64(100), env.balance(t, SwapAddr("s1"), "RED"))
}

func TestStartSwapAttachedMismatch(t *testing.T) {
	env := newTestEnv(t)

	cases := map[string]struct {
		attached []coin.Coin
		wantErr  *errors.Error
	}{
		"nothing attached": {
			attached: nil,
			wantErr:  errors.ErrAmount,
		},
		"wrong amount": {
			attached: []coin.Coin{coin.NewCoin("RED", 99)},
			wantErr:  errors.ErrAmount,
		},
		"wrong color": {
			attached: []coin.Coin{coin.NewCoin("BLUE", 100)},
			wantErr:  errors.ErrAmount,
		},
		"two colors": {
			attached: []coin.Coin{coin.NewCoin("RED", 100), coin.NewCoin("BLUE", 1)},
			wantErr:  errors.ErrInput,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			ctx := env.ctx(sender, tc.attached...)
			_, err := env.rt.Deliver(ctx, env.db, &swaptest.Tx{Msg: startMsg()})
			assert.True(t, tc.wantErr.Is(err))
		})
	}
}

func TestStartSwapMissingMandatory(t *testing.T) {
	msg := startMsg()
	msg.SwapID = ""
	env := newTestEnv(t)
	ctx := env.ctx(sender, coin.NewCoin("RED", 100))
	_, err := env.rt.Deliver(ctx, env.db, &swaptest.Tx{Msg: msg})
	assert.True(t, errors.ErrEmpty.Is(err))
}

func TestCancelSwap(t *testing.T) {
	env := newTestEnv(t)
	env.start(t)

	ctx := env.ctx(sender)
	_, err := env.rt.Deliver(ctx, env.db, &swaptest.Tx{Msg: &CancelSwapMsg{SwapID: "s1"}})
	require.NoError(t, err)

	assert.Equal(t, int64(100), env.balance(t, sender.Address(), "RED"))
	assert.Equal(t, int64(0), env.balance(t, SwapAddr("s1"), "RED"))

	record, err := loadSwap(env.db, "s1")
	require.NoError(t, err)
	assert.Equal(t, swap.Cancelled, record.State)

	// settled records are immutable
	_, err = env.rt.Deliver(ctx, env.db, &swaptest.Tx{Msg: &CancelSwapMsg{SwapID: "s1"}})
	assert.True(t, errors.ErrState.Is(err))
	assert.Contains(t, err.Error(), "swap is already finished")
}

func TestCancelSwapIgnoresWindow(t *testing.T) {
	env := newTestEnv(t)
	env.start(t)

	// long after the window expired the sender can still reclaim
	ctx := tokenswap.WithBlockTime(context.Background(), blockNow.Add(100*time.Hour))
	ctx = env.auth.SetConditions(ctx, sender)
	_, err := env.rt.Deliver(ctx, env.db, &swaptest.Tx{Msg: &CancelSwapMsg{SwapID: "s1"}})
	require.NoError(t, err)
	assert.Equal(t, int64(100), env.balance(t, sender.Address(), "RED"))
}

func TestCancelSwapOnlySender(t *testing.T) {
	env := newTestEnv(t)
	env.start(t)

	for _, caller := range []tokenswap.Condition{recipient, stranger} {
		ctx := env.ctx(caller)
		_, err := env.rt.Deliver(ctx, env.db, &swaptest.Tx{Msg: &CancelSwapMsg{SwapID: "s1"}})
		assert.True(t, errors.ErrUnauthorized.Is(err))
		assert.Contains(t, err.Error(), "only the sender is able to cancel the swap")
	}
}

func TestCancelSwapMissing(t *testing.T) {
	env := newTestEnv(t)
	ctx := env.ctx(sender)
	_, err := env.rt.Deliver(ctx, env.db, &swaptest.Tx{Msg: &CancelSwapMsg{SwapID: "nope"}})
	assert.True(t, errors.ErrNotFound.Is(err))
	assert.Contains(t, err.Error(), "swap id does not exist")
}

func TestFinalizeSwap(t *testing.T) {
	env := newTestEnv(t)
	env.start(t)

	ctx := env.ctx(recipient, coin.NewCoin("BLUE", 50))
	_, err := env.rt.Deliver(ctx, env.db, &swaptest.Tx{Msg: &FinalizeSwapMsg{SwapID: "s1"}})
	require.NoError(t, err)

	// double transfer settled both sides
	assert.Equal(t, int64(100), env.balance(t, recipient.Address(), "RED"))
	assert.Equal(t, int64(50), env.balance(t, sender.Address(), "BLUE"))
	assert.Equal(t, int64(0), env.balance(t, SwapAddr("s1"), "RED"))

	record, err := loadSwap(env.db, "s1")
	require.NoError(t, err)
	assert.Equal(t, swap.Finalized, record.State)

	_, err = env.rt.Deliver(ctx, env.db, &swaptest.Tx{Msg: &FinalizeSwapMsg{SwapID: "s1"}})
	assert.True(t, errors.ErrState.Is(err))
}

func TestFinalizeSwapOnlyRecipient(t *testing.T) {
	env := newTestEnv(t)
	env.start(t)

	ctx := env.ctx(sender, coin.NewCoin("BLUE", 50))
	_, err := env.rt.Deliver(ctx, env.db, &swaptest.Tx{Msg: &FinalizeSwapMsg{SwapID: "s1"}})
	assert.True(t, errors.ErrUnauthorized.Is(err))
	assert.Contains(t, err.Error(), "only the recipient is able to finalize the swap")
}

func TestFinalizeSwapWindowExpired(t *testing.T) {
	env := newTestEnv(t)
	env.start(t)

	// one second past the inclusive window end
	ctx := tokenswap.WithBlockTime(context.Background(), blockNow.Add(3601*time.Second))
	ctx = env.auth.SetConditions(ctx, recipient)
	ctx = bank.WithAttached(ctx, coin.Coins{coin.NewCoin("BLUE", 50)})
	_, err := env.rt.Deliver(ctx, env.db, &swaptest.Tx{Msg: &FinalizeSwapMsg{SwapID: "s1"}})
	assert.True(t, errors.ErrExpired.Is(err))
	assert.Contains(t, err.Error(), "swap is not open anymore")

	// at exactly the window end the finalize is still accepted
	ctx = tokenswap.WithBlockTime(context.Background(), blockNow.Add(3600*time.Second))
	ctx = env.auth.SetConditions(ctx, recipient)
	ctx = bank.WithAttached(ctx, coin.Coins{coin.NewCoin("BLUE", 50)})
	_, err = env.rt.Deliver(ctx, env.db, &swaptest.Tx{Msg: &FinalizeSwapMsg{SwapID: "s1"}})
	assert.NoError(t, err)
}

func TestFinalizeSwapAttachedMismatch(t *testing.T) {
	env := newTestEnv(t)
	env.start(t)

	ctx := env.ctx(recipient, coin.NewCoin("BLUE", 49))
	_, err := env.rt.Deliver(ctx, env.db, &swaptest.Tx{Msg: &FinalizeSwapMsg{SwapID: "s1"}})
	assert.True(t, errors.ErrAmount.Is(err))
	assert.Contains(t, err.Error(), "transferred balance of color does not match amount parameter")
}

func TestQuerySwap(t *testing.T) {
	env := newTestEnv(t)
	env.start(t)

	qr := tokenswap.NewQueryRouter()
	RegisterQuery(qr)

	h := qr.Handler("colorswaps")
	require.NotNil(t, h)
	models, err := h.Query(env.db, []byte("s1"))
	require.NoError(t, err)
	require.Len(t, models, 1)

	var record Swap
	require.NoError(t, cdc.UnmarshalBinaryBare(models[0].Value, &record))
	assert.Equal(t, int64(100), record.AmountSender)

	_, err = h.Query(env.db, []byte("missing"))
	assert.True(t, errors.ErrNotFound.Is(err))
}
