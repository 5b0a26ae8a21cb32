package hashswap

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/x/hashlock"
)

var (
	_ tokenswap.Msg = (*StartSwapMsg)(nil)
	_ tokenswap.Msg = (*CancelSwapMsg)(nil)
	_ tokenswap.Msg = (*FinalizeSwapMsg)(nil)
)

// StartSwapMsg opens a new hash-locked swap. The caller is the implicit
// sender and must have pre-authorized the engine on the sender ledger for
// at least AmountSender.
type StartSwapMsg struct {
	SwapID         string
	KeyHash        []byte
	LedgerSender   string
	AmountSender   int64
	AgentRecipient tokenswap.Address
	Duration       tokenswap.UnixDuration
}

func (StartSwapMsg) Path() string {
	return "hashswap/start"
}

func (m StartSwapMsg) Validate() error {
	if m.SwapID == "" {
		return errors.Wrap(errors.ErrEmpty, "missing mandatory swapId")
	}
	if len(m.KeyHash) == 0 {
		return errors.Wrap(errors.ErrEmpty, "missing mandatory keyHash")
	}
	if m.LedgerSender == "" {
		return errors.Wrap(errors.ErrEmpty, "missing mandatory scNameSender")
	}
	if m.AmountSender == 0 {
		return errors.Wrap(errors.ErrEmpty, "missing mandatory amountSender")
	}
	if len(m.AgentRecipient) == 0 {
		return errors.Wrap(errors.ErrEmpty, "missing mandatory agentIdRecipient")
	}
	if m.Duration == 0 {
		return errors.Wrap(errors.ErrEmpty, "missing mandatory duration")
	}
	if err := hashlock.ValidateCommitment(m.KeyHash); err != nil {
		return errors.Wrap(err, "keyHash")
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

// CancelSwapMsg returns the locked tokens to the sender. Only valid once
// the validity window expired, so the counterparty keeps the full window
// to reveal the secret.
type CancelSwapMsg struct {
	SwapID string
}

func (CancelSwapMsg) Path() string {
	return "hashswap/cancel"
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

// FinalizeSwapMsg releases the locked tokens to the recipient. Anyone may
// call it; authorization is the revealed secret alone.
type FinalizeSwapMsg struct {
	SwapID    string
	KeySecret []byte
}

func (FinalizeSwapMsg) Path() string {
	return "hashswap/finalize"
}

func (m FinalizeSwapMsg) Validate() error {
	if m.SwapID == "" {
		return errors.Wrap(errors.ErrEmpty, "missing mandatory swapId")
	}
	if len(m.KeySecret) == 0 {
		return errors.Wrap(errors.ErrEmpty, "missing mandatory keySecret")
	}
	return nil
}

func (m FinalizeSwapMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *FinalizeSwapMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}
