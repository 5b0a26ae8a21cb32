package colorswap

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/coin"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/registry"
	"github.com/iov-one/tokenswap/x/swap"
	"github.com/tendermint/go-amino"
)

var cdc = amino.NewCodec()

// swaps is the persistent swap id keyed record map of this variant.
var swaps = registry.New("colorswap")

// SwapAddr returns the escrow address holding the deposits of given swap.
// It is derived from the swap id only, so it is stable across the swap
// lifecycle and cannot collide with a signature address.
func SwapAddr(swapID string) tokenswap.Address {
	return tokenswap.NewCondition("swap", "color", []byte(swapID)).Address()
}

// Swap is the record of one direct-deposit swap. The amounts recorded at
// creation are the exact amounts moved at settlement.
type Swap struct {
	ColorSender      string
	ColorRecipient   string
	AmountSender     int64
	AmountRecipient  int64
	AddressSender    tokenswap.Address
	AddressRecipient tokenswap.Address
	WhenStarted      tokenswap.UnixTime
	DurationOpen     tokenswap.UnixDuration
	State            swap.State
}

// Validate ensures the record content is sane before persisting.
func (s *Swap) Validate() error {
	if err := coin.NewCoin(s.ColorSender, s.AmountSender).Validate(); err != nil {
		return errors.Wrap(err, "sender value")
	}
	if err := coin.NewCoin(s.ColorRecipient, s.AmountRecipient).Validate(); err != nil {
		return errors.Wrap(err, "recipient value")
	}
	if err := s.AddressSender.Validate(); err != nil {
		return errors.Wrap(err, "sender address")
	}
	if err := s.AddressRecipient.Validate(); err != nil {
		return errors.Wrap(err, "recipient address")
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
