package bank

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/coin"
	"github.com/iov-one/tokenswap/errors"
)

// CoinMover is the subset of the bank functionality the swap engines
// depend on: moving colored value between accounts.
type CoinMover interface {
	// MoveCoins transfers the amount from src to dest. It fails when
	// src does not hold enough tokens of that color.
	MoveCoins(db tokenswap.KVStore, src, dest tokenswap.Address, amount coin.Coin) error

	// Balance returns all coins held by given address.
	Balance(db tokenswap.ReadOnlyKVStore, addr tokenswap.Address) (coin.Coins, error)
}

// Controller is the bank implementation over the wallet bucket.
type Controller struct{}

var _ CoinMover = Controller{}

// NewController returns a bank controller.
func NewController() Controller {
	return Controller{}
}

// MoveCoins transfers the amount from src to dest.
// If src doesn't hold sufficient coins, it fails.
func (c Controller) MoveCoins(db tokenswap.KVStore, src, dest tokenswap.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive transfer: %v", amount)
	}

	sender, err := loadWallet(db, src)
	if err != nil {
		return err
	}
	sender.Coins, err = sender.Coins.Subtract(amount)
	if err != nil {
		return err
	}

	// a transfer to self must not touch the wallet, or the add below
	// would work on a stale copy and double the amount
	if src.Equals(dest) {
		return nil
	}

	recipient, err := loadWallet(db, dest)
	if err != nil {
		return err
	}
	recipient.Coins, err = recipient.Coins.Add(amount)
	if err != nil {
		return err
	}

	if err := saveWallet(db, src, sender); err != nil {
		return err
	}
	return saveWallet(db, dest, recipient)
}

// IssueCoins attempts to add the given amount of coins to the destination
// address. This is how tests and genesis provision wallets.
func (c Controller) IssueCoins(db tokenswap.KVStore, dest tokenswap.Address, amount coin.Coin) error {
	recipient, err := loadWallet(db, dest)
	if err != nil {
		return err
	}
	recipient.Coins, err = recipient.Coins.Add(amount)
	if err != nil {
		return err
	}
	return saveWallet(db, dest, recipient)
}

// Balance returns all coins held by given address.
func (c Controller) Balance(db tokenswap.ReadOnlyKVStore, addr tokenswap.Address) (coin.Coins, error) {
	w, err := loadWallet(db, addr)
	if err != nil {
		return nil, err
	}
	return w.Coins, nil
}
