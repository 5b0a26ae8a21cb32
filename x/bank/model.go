package bank

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/coin"
	"github.com/iov-one/tokenswap/errors"
	"github.com/tendermint/go-amino"
)

var cdc = amino.NewCodec()

// Wallet is the set of coins held by one address.
type Wallet struct {
	Coins coin.Coins
}

var _ tokenswap.Persistent = (*Wallet)(nil)

// Marshal encodes this wallet in a stable binary form.
func (w *Wallet) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(w)
}

// Unmarshal loads a wallet from its binary form.
func (w *Wallet) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, w)
}

// Validate ensures the wallet content is sane.
func (w *Wallet) Validate() error {
	return w.Coins.Validate()
}

const walletPrefix = "wallet:"

// walletKey returns the store key for given address.
func walletKey(addr tokenswap.Address) []byte {
	key := make([]byte, 0, len(walletPrefix)+len(addr))
	key = append(key, walletPrefix...)
	return append(key, addr...)
}

// loadWallet returns the wallet of given address, an empty wallet when
// none was stored yet.
func loadWallet(db tokenswap.ReadOnlyKVStore, addr tokenswap.Address) (*Wallet, error) {
	raw, err := db.Get(walletKey(addr))
	if err != nil {
		return nil, errors.Wrap(err, "cannot load wallet")
	}
	var w Wallet
	if raw != nil {
		if err := w.Unmarshal(raw); err != nil {
			return nil, errors.Wrap(err, "cannot parse wallet")
		}
	}
	return &w, nil
}

// saveWallet persists the wallet of given address.
func saveWallet(db tokenswap.KVStore, addr tokenswap.Address, w *Wallet) error {
	raw, err := w.Marshal()
	if err != nil {
		return errors.Wrap(err, "cannot serialize wallet")
	}
	return db.Set(walletKey(addr), raw)
}
