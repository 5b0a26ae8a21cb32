package erc20

import (
	"testing"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	owner    = tokenswap.NewCondition("sigs", "ed25519", []byte("owner")).Address()
	delegate = tokenswap.NewCondition("sigs", "ed25519", []byte("delegate")).Address()
	other    = tokenswap.NewCondition("sigs", "ed25519", []byte("other")).Address()
)

func TestTransfer(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()

	require.NoError(t, ctrl.Mint(db, "ledger-a", owner, 100))

	require.NoError(t, ctrl.Transfer(db, "ledger-a", owner, other, 30))

	got, err := ctrl.BalanceOf(db, "ledger-a", owner)
	require.NoError(t, err)
	assert.Equal(t, int64(70), got)
	got, err = ctrl.BalanceOf(db, "ledger-a", other)
	require.NoError(t, err)
	assert.Equal(t, int64(30), got)
}

func TestTransferToSelf(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()

	require.NoError(t, ctrl.Mint(db, "ledger-a", owner, 100))

	// transferring to self conserves the balance
	require.NoError(t, ctrl.Transfer(db, "ledger-a", owner, owner, 60))
	got, err := ctrl.BalanceOf(db, "ledger-a", owner)
	require.NoError(t, err)
	assert.Equal(t, int64(100), got)

	// but the funds must still be there
	err = ctrl.Transfer(db, "ledger-a", owner, owner, 101)
	assert.True(t, errors.ErrAmount.Is(err))
}

func TestTransferInsufficientBalance(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()

	require.NoError(t, ctrl.Mint(db, "ledger-a", owner, 10))

	err := ctrl.Transfer(db, "ledger-a", owner, other, 11)
	assert.True(t, errors.ErrAmount.Is(err))

	got, err := ctrl.BalanceOf(db, "ledger-a", owner)
	require.NoError(t, err)
	assert.Equal(t, int64(10), got)
}

func TestLedgersAreIsolated(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()

	require.NoError(t, ctrl.Mint(db, "ledger-a", owner, 10))

	got, err := ctrl.BalanceOf(db, "ledger-b", owner)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)

	err = ctrl.Transfer(db, "ledger-b", owner, other, 1)
	assert.True(t, errors.ErrAmount.Is(err))
}

func TestTransferFrom(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()

	require.NoError(t, ctrl.Mint(db, "ledger-a", owner, 100))
	require.NoError(t, ctrl.Approve(db, "ledger-a", owner, delegate, 50))

	require.NoError(t, ctrl.TransferFrom(db, "ledger-a", owner, other, delegate, 40))

	got, err := ctrl.BalanceOf(db, "ledger-a", other)
	require.NoError(t, err)
	assert.Equal(t, int64(40), got)

	// allowance is consumed
	left, err := ctrl.Allowance(db, "ledger-a", owner, delegate)
	require.NoError(t, err)
	assert.Equal(t, int64(10), left)

	err = ctrl.TransferFrom(db, "ledger-a", owner, other, delegate, 11)
	assert.True(t, errors.ErrAmount.Is(err))
}

func TestTransferFromWithoutApproval(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()

	require.NoError(t, ctrl.Mint(db, "ledger-a", owner, 100))

	err := ctrl.TransferFrom(db, "ledger-a", owner, other, delegate, 1)
	assert.True(t, errors.ErrAmount.Is(err))
}

func TestApproveOverwrites(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()

	require.NoError(t, ctrl.Approve(db, "ledger-a", owner, delegate, 50))
	require.NoError(t, ctrl.Approve(db, "ledger-a", owner, delegate, 5))

	got, err := ctrl.Allowance(db, "ledger-a", owner, delegate)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got)
}

func TestInvalidLedgerName(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()

	err := ctrl.Mint(db, "NO UPPER", owner, 1)
	assert.True(t, errors.ErrInput.Is(err))
}
