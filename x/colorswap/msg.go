package colorswap

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
)

var (
	_ tokenswap.Msg = (*StartSwapMsg)(nil)
	_ tokenswap.Msg = (*CancelSwapMsg)(nil)
	_ tokenswap.Msg = (*FinalizeSwapMsg)(nil)
)

// StartSwapMsg opens a new swap. The caller is the implicit sender and
// must attach exactly AmountSender tokens of ColorSender to the
// invocation.
type StartSwapMsg struct {
	SwapID           string
	ColorSender      string
	AmountSender     int64
	ColorRecipient   string
	AmountRecipient  int64
	AddressRecipient tokenswap.Address
	Duration         tokenswap.UnixDuration
}

func (StartSwapMsg) Path() string {
	return "colorswap/start"
}

func (m StartSwapMsg) Validate() error {
	if m.SwapID == "" {
		return errors.Wrap(errors.ErrEmpty, "missing mandatory swapId")
	}
	if m.ColorSender == "" {
		return errors.Wrap(errors.ErrEmpty, "missing mandatory colorSender")
	}
	if m.AmountSender == 0 {
		return errors.Wrap(errors.ErrEmpty, "missing mandatory amountSender")
	}
	if m.ColorRecipient == "" {
		return errors.Wrap(errors.ErrEmpty, "missing mandatory colorRecipient")
	}
	if m.AmountRecipient == 0 {
		return errors.Wrap(errors.ErrEmpty, "missing mandatory amountRecipient")
	}
	if len(m.AddressRecipient) == 0 {
		return errors.Wrap(errors.ErrEmpty, "missing mandatory addressRecipient")
	}
	if m.Duration == 0 {
		return errors.Wrap(errors.ErrEmpty, "missing mandatory duration")
	}
	if err := m.AddressRecipient.Validate(); err != nil {
		return errors.Wrap(err, "addressRecipient")
	}
	return m.Duration.Validate()
}

func (m StartSwapMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *StartSwapMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

// CancelSwapMsg returns the escrowed deposit to the sender. Only the
// sender may cancel, at any time before a finalize.
type CancelSwapMsg struct {
	SwapID string
}

func (CancelSwapMsg) Path() string {
	return "colorswap/cancel"
}

func (m CancelSwapMsg) Validate() error {
	if m.SwapID == "" {
		return errors.Wrap(errors.ErrEmpty, "missing mandatory swapId")
	}
	return nil
}

func (m CancelSwapMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *CancelSwapMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

// FinalizeSwapMsg settles the swap. The caller must be the recorded
// recipient and must attach exactly AmountRecipient tokens of
// ColorRecipient to the invocation.
type FinalizeSwapMsg struct {
	SwapID string
}

func (FinalizeSwapMsg) Path() string {
	return "colorswap/finalize"
}

func (m FinalizeSwapMsg) Validate() error {
	if m.SwapID == "" {
		return errors.Wrap(errors.ErrEmpty, "missing mandatory swapId")
	}
	return nil
}

func (m FinalizeSwapMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *FinalizeSwapMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}
