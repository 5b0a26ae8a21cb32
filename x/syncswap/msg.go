package syncswap

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
)

var (
	_ tokenswap.Msg = (*StartSwapMsg)(nil)
	_ tokenswap.Msg = (*CancelSwapMsg)(nil)
	_ tokenswap.Msg = (*FinalizeSwapMsg)(nil)
)

// StartSwapMsg opens a new bilateral swap. The caller is the implicit
// sender and must have pre-authorized the engine on the sender ledger for
// at least AmountSender.
type StartSwapMsg struct {
	SwapID          string
	LedgerSender    string
	LedgerRecipient string
	AmountSender    int64
	AmountRecipient int64
	AgentRecipient  tokenswap.Address
	Duration        tokenswap.UnixDuration
}

func (StartSwapMsg) Path() string {
	return "syncswap/start"
}

func (m StartSwapMsg) Validate() error {
	if m.SwapID == "" {
		return errors.Wrap(errors.ErrEmpty, "missing mandatory swapId")
	}
	if m.LedgerSender == "" {
		return errors.Wrap(errors.ErrEmpty, "missing mandatory scNameSender")
	}
	if m.LedgerRecipient == "" {
		return errors.Wrap(errors.ErrEmpty, "missing mandatory scNameRecipient")
	}
	if m.AmountSender == 0 {
		return errors.Wrap(errors.ErrEmpty, "missing mandatory amountSender")
	}
	if m.AmountRecipient == 0 {
		return errors.Wrap(errors.ErrEmpty, "missing mandatory amountRecipient")
	}
	if len(m.AgentRecipient) == 0 {
		return errors.Wrap(errors.ErrEmpty, "missing mandatory agentIdRecipient")
	}
	if m.Duration == 0 {
		return errors.Wrap(errors.ErrEmpty, "missing mandatory duration")
	}
	if err := m.AgentRecipient.Validate(); err != nil {
		return errors.Wrap(err, "agentIdRecipient")
	}
	return m.Duration.Validate()
}

func (m StartSwapMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *StartSwapMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

// CancelSwapMsg returns the custodied tokens to the sender. Only the
// sender may cancel, at any time before a finalize.
type CancelSwapMsg struct {
	SwapID string
}

func (CancelSwapMsg) Path() string {
	return "syncswap/cancel"
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

// FinalizeSwapMsg settles the swap in one atomic sequence across both
// ledgers. The recipient must have pre-authorized the engine on its own
// ledger for AmountRecipient.
type FinalizeSwapMsg struct {
	SwapID string
}

func (FinalizeSwapMsg) Path() string {
	return "syncswap/finalize"
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
