package syncswap

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/registry"
	"github.com/iov-one/tokenswap/x/erc20"
	"github.com/iov-one/tokenswap/x/swap"
	"github.com/tendermint/go-amino"
)

var cdc = amino.NewCodec()

// swaps is the persistent swap id keyed record map of this variant.
var swaps = registry.New("syncswap")

// CustodyAddr returns the ledger account under which this engine holds
// tokens in escrow. Amounts are settled from the record, never recomputed
// from the custody balance, so one shared account is sufficient.
func CustodyAddr() tokenswap.Address {
	return tokenswap.NewCondition("swap", "sync", []byte("custody")).Address()
}

// Swap is the record of one bilateral swap across two external ledgers.
type Swap struct {
	LedgerSender    string
	LedgerRecipient string
	AmountSender    int64
	AmountRecipient int64
	AgentSender     tokenswap.Address
	AgentRecipient  tokenswap.Address
	WhenStarted     tokenswap.UnixTime
	DurationOpen    tokenswap.UnixDuration
	State           swap.State
}

// Validate ensures the record content is sane before persisting.
func (s *Swap) Validate() error {
	if !erc20.IsLedgerName(s.LedgerSender) {
		return errors.Wrapf(errors.ErrInput, "invalid sender ledger name: %q", s.LedgerSender)
	}
	if !erc20.IsLedgerName(s.LedgerRecipient) {
		return errors.Wrapf(errors.ErrInput, "invalid recipient ledger name: %q", s.LedgerRecipient)
	}
	if s.AmountSender <= 0 {
		return errors.Wrapf(errors.ErrAmount, "non-positive sender amount: %d", s.AmountSender)
	}
	if s.AmountRecipient <= 0 {
		return errors.Wrapf(errors.ErrAmount, "non-positive recipient amount: %d", s.AmountRecipient)
	}
	if err := s.AgentSender.Validate(); err != nil {
		return errors.Wrap(err, "sender agent")
	}
	if err := s.AgentRecipient.Validate(); err != nil {
		return errors.Wrap(err, "recipient agent")
	}
	if err := s.WhenStarted.Validate(); err != nil {
		return errors.Wrap(err, "when started")
	}
	if err := s.DurationOpen.Validate(); err != nil {
		return errors.Wrap(err, "duration open")
	}
	return s.State.Validate()
}

func loadSwap(db tokenswap.ReadOnlyKVStore, swapID string) (*Swap, error) {
	raw, err := swaps.Get(db, swapID)
	if err != nil {
		return nil, err
	}
	var s Swap
	if err := cdc.UnmarshalBinaryBare(raw, &s); err != nil {
		return nil, errors.Wrap(err, "cannot parse swap record")
	}
	return &s, nil
}

func saveSwap(db tokenswap.KVStore, swapID string, s *Swap) error {
	raw, err := cdc.MarshalBinaryBare(s)
	if err != nil {
		return errors.Wrap(err, "cannot serialize swap record")
	}
	return swaps.Set(db, swapID, raw)
}

func createSwap(db tokenswap.KVStore, swapID string, s *Swap) error {
	if err := s.Validate(); err != nil {
		return errors.Wrap(err, "invalid swap record")
	}
	raw, err := cdc.MarshalBinaryBare(s)
	if err != nil {
		return errors.Wrap(err, "cannot serialize swap record")
	}
	return swaps.Create(db, swapID, raw)
}
