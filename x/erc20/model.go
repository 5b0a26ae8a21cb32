package erc20

import (
	"regexp"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/tendermint/go-amino"
)

var cdc = amino.NewCodec()

// IsLedgerName checks the format of an external ledger contract name.
var IsLedgerName = regexp.MustCompile(`^[a-z0-9_\-]{3,20}$`).MatchString

// Account is the ledger-side record of one token holder.
type Account struct {
	Balance int64
}

// Approval is a pre-authorization for a delegate to move tokens on the
// owner's behalf, up to the stored amount.
type Approval struct {
	Amount int64
}

func accountKey(ledger string, addr tokenswap.Address) []byte {
	key := make([]byte, 0, 6+len(ledger)+6+len(addr))
	key = append(key, "erc20:"...)
	key = append(key, ledger...)
	key = append(key, ":acct:"...)
	return append(key, addr...)
}

func approvalKey(ledger string, owner, delegate tokenswap.Address) []byte {
	key := make([]byte, 0, 6+len(ledger)+7+len(owner)+len(delegate))
	key = append(key, "erc20:"...)
	key = append(key, ledger...)
	key = append(key, ":allow:"...)
	key = append(key, owner...)
	return append(key, delegate...)
}

func loadAccount(db tokenswap.ReadOnlyKVStore, ledger string, addr tokenswap.Address) (*Account, error) {
	raw, err := db.Get(accountKey(ledger, addr))
	if err != nil {
		return nil, errors.Wrap(err, "cannot load account")
	}
	var acct Account
	if raw != nil {
		if err := cdc.UnmarshalBinaryBare(raw, &acct); err != nil {
			return nil, errors.Wrap(err, "cannot parse account")
		}
	}
	return &acct, nil
}

func saveAccount(db tokenswap.KVStore, ledger string, addr tokenswap.Address, acct *Account) error {
	raw, err := cdc.MarshalBinaryBare(acct)
	if err != nil {
		return errors.Wrap(err, "cannot serialize account")
	}
	return db.Set(accountKey(ledger, addr), raw)
}

func loadApproval(db tokenswap.ReadOnlyKVStore, ledger string, owner, delegate tokenswap.Address) (*Approval, error) {
	raw, err := db.Get(approvalKey(ledger, owner, delegate))
	if err != nil {
		return nil, errors.Wrap(err, "cannot load approval")
	}
	var a Approval
	if raw != nil {
		if err := cdc.UnmarshalBinaryBare(raw, &a); err != nil {
			return nil, errors.Wrap(err, "cannot parse approval")
		}
	}
	return &a, nil
}

func saveApproval(db tokenswap.KVStore, ledger string, owner, delegate tokenswap.Address, a *Approval) error {
	raw, err := cdc.MarshalBinaryBare(a)
	if err != nil {
		return errors.Wrap(err, "cannot serialize approval")
	}
	return db.Set(approvalKey(ledger, owner, delegate), raw)
}
