package erc20

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
)

// Gateway is the synchronous call interface the swap engines use to talk
// to an external ledger contract. Any returned error must abort the whole
// invocation; the engine never retries on its own.
type Gateway interface {
	// Allowance returns how many tokens the delegate may move on the
	// account owner's behalf.
	Allowance(db tokenswap.ReadOnlyKVStore, ledger string, account, delegate tokenswap.Address) (int64, error)

	// Transfer moves tokens from the "from" holding to the "to" account.
	Transfer(db tokenswap.KVStore, ledger string, from, to tokenswap.Address, amount int64) error

	// TransferFrom moves pre-authorized tokens from the account to the
	// recipient, consuming the caller's allowance.
	TransferFrom(db tokenswap.KVStore, ledger string, account, recipient, delegate tokenswap.Address, amount int64) error
}

// Controller implements the ledger operations over the erc20 state.
type Controller struct{}

var _ Gateway = Controller{}

// NewController returns an erc20 ledger controller.
func NewController() Controller {
	return Controller{}
}

// Allowance returns how many tokens the delegate may move on the account
// owner's behalf.
func (c Controller) Allowance(db tokenswap.ReadOnlyKVStore, ledger string, account, delegate tokenswap.Address) (int64, error) {
	if !IsLedgerName(ledger) {
		return 0, errors.Wrapf(errors.ErrInput, "invalid ledger name: %q", ledger)
	}
	a, err := loadApproval(db, ledger, account, delegate)
	if err != nil {
		return 0, err
	}
	return a.Amount, nil
}

// Approve authorizes the delegate to move up to the amount of the owner's
// tokens. A new approval overwrites any previous one.
func (c Controller) Approve(db tokenswap.KVStore, ledger string, owner, delegate tokenswap.Address, amount int64) error {
	if !IsLedgerName(ledger) {
		return errors.Wrapf(errors.ErrInput, "invalid ledger name: %q", ledger)
	}
	if amount < 0 {
		return errors.Wrapf(errors.ErrAmount, "negative approval: %d", amount)
	}
	return saveApproval(db, ledger, owner, delegate, &Approval{Amount: amount})
}

// Transfer moves tokens from the "from" holding to the "to" account.
func (c Controller) Transfer(db tokenswap.KVStore, ledger string, from, to tokenswap.Address, amount int64) error {
	if !IsLedgerName(ledger) {
		return errors.Wrapf(errors.ErrInput, "invalid ledger name: %q", ledger)
	}
	if amount <= 0 {
		return errors.Wrapf(errors.ErrAmount, "non-positive transfer: %d", amount)
	}

	src, err := loadAccount(db, ledger, from)
	if err != nil {
		return err
	}
	if src.Balance < amount {
		return errors.Wrapf(errors.ErrAmount, "insufficient balance: %d", src.Balance)
	}

	// a transfer to self must not touch the account, or the credit below
	// would work on a stale copy and mint tokens
	if from.Equals(to) {
		return nil
	}

	dst, err := loadAccount(db, ledger, to)
	if err != nil {
		return err
	}

	src.Balance -= amount
	dst.Balance += amount

	if err := saveAccount(db, ledger, from, src); err != nil {
		return err
	}
	return saveAccount(db, ledger, to, dst)
}

// TransferFrom moves pre-authorized tokens from the account to the
// recipient and decreases the delegate's allowance accordingly.
func (c Controller) TransferFrom(db tokenswap.KVStore, ledger string, account, recipient, delegate tokenswap.Address, amount int64) error {
	if amount <= 0 {
		return errors.Wrapf(errors.ErrAmount, "non-positive transfer: %d", amount)
	}

	a, err := loadApproval(db, ledger, account, delegate)
	if err != nil {
		return err
	}
	if a.Amount < amount {
		return errors.Wrapf(errors.ErrAmount, "insufficient allowance: %d", a.Amount)
	}

	if err := c.Transfer(db, ledger, account, recipient, amount); err != nil {
		return err
	}

	a.Amount -= amount
	return saveApproval(db, ledger, account, delegate, a)
}

// Mint credits freshly created tokens to the destination account. This is
// how tests and genesis provision a ledger.
func (c Controller) Mint(db tokenswap.KVStore, ledger string, dest tokenswap.Address, amount int64) error {
	if !IsLedgerName(ledger) {
		return errors.Wrapf(errors.ErrInput, "invalid ledger name: %q", ledger)
	}
	if amount <= 0 {
		return errors.Wrapf(errors.ErrAmount, "non-positive mint: %d", amount)
	}
	acct, err := loadAccount(db, ledger, dest)
	if err != nil {
		return err
	}
	acct.Balance += amount
	return saveAccount(db, ledger, dest, acct)
}

// BalanceOf returns the token balance of given account.
func (c Controller) BalanceOf(db tokenswap.ReadOnlyKVStore, ledger string, addr tokenswap.Address) (int64, error) {
	acct, err := loadAccount(db, ledger, addr)
	if err != nil {
		return 0, err
	}
	return acct.Balance, nil
}
