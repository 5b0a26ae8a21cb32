package syncswap

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/x"
	"github.com/iov-one/tokenswap/x/erc20"
	"github.com/iov-one/tokenswap/x/swap"
)

const (
	startSwapCost  int64 = 300
	settleSwapCost int64 = 150
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r tokenswap.Registry, auth x.Authenticator, ledgers erc20.Gateway) {
	r.Handle(StartSwapMsg{}.Path(), StartSwapHandler{auth, ledgers})
	r.Handle(CancelSwapMsg{}.Path(), CancelSwapHandler{auth, ledgers})
	r.Handle(FinalizeSwapMsg{}.Path(), FinalizeSwapHandler{ledgers})
}

// RegisterQuery registers the raw swap record query.
func RegisterQuery(qr tokenswap.QueryRouter) {
	swaps.Register("syncswaps", qr)
}

// StartSwapHandler pulls the sender's tokens into custody and creates the
// swap record.
type StartSwapHandler struct {
	auth    x.Authenticator
	ledgers erc20.Gateway
}

var _ tokenswap.Handler = StartSwapHandler{}

func (h StartSwapHandler) Check(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &tokenswap.CheckResult{GasAllocated: startSwapCost}, nil
}

func (h StartSwapHandler) Deliver(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	sender := x.MainSigner(ctx, h.auth).Address()

	allowed, err := h.ledgers.Allowance(db, msg.LedgerSender, sender, CustodyAddr())
	if err != nil {
		return nil, errors.Wrap(err, "cannot query allowance")
	}
	if allowed < msg.AmountSender {
		return nil, errors.Wrap(errors.ErrAmount, "contract is not allowed to transfer the specified amount of tokens")
	}
	if err := h.ledgers.TransferFrom(db, msg.LedgerSender, sender, CustodyAddr(), CustodyAddr(), msg.AmountSender); err != nil {
		return nil, errors.Wrap(err, "cannot take custody")
	}

	blockTime, err := tokenswap.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	record := &Swap{
		LedgerSender:    msg.LedgerSender,
		LedgerRecipient: msg.LedgerRecipient,
		AmountSender:    msg.AmountSender,
		AmountRecipient: msg.AmountRecipient,
		AgentSender:     sender,
		AgentRecipient:  msg.AgentRecipient,
		WhenStarted:     tokenswap.AsUnixTime(blockTime),
		DurationOpen:    msg.Duration,
		State:           swap.Open,
	}
	if err := createSwap(db, msg.SwapID, record); err != nil {
		return nil, err
	}
	return &tokenswap.DeliverResult{Data: []byte(msg.SwapID)}, nil
}

func (h StartSwapHandler) validate(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*StartSwapMsg, error) {
	var msg StartSwapMsg
	if err := tokenswap.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	if x.MainSigner(ctx, h.auth) == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	return &msg, nil
}

// CancelSwapHandler returns the custodied tokens to the sender. There is
// no window check: the sender may reclaim any time before a finalize.
type CancelSwapHandler struct {
	auth    x.Authenticator
	ledgers erc20.Gateway
}

var _ tokenswap.Handler = CancelSwapHandler{}

func (h CancelSwapHandler) Check(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &tokenswap.CheckResult{GasAllocated: settleSwapCost}, nil
}

func (h CancelSwapHandler) Deliver(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.DeliverResult, error) {
	msg, record, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	if err := h.ledgers.Transfer(db, record.LedgerSender, CustodyAddr(), record.AgentSender, record.AmountSender); err != nil {
		return nil, errors.Wrap(err, "cannot release custody")
	}
	record.State = swap.Cancelled
	if err := saveSwap(db, msg.SwapID, record); err != nil {
		return nil, err
	}
	return &tokenswap.DeliverResult{}, nil
}

func (h CancelSwapHandler) validate(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*CancelSwapMsg, *Swap, error) {
	var msg CancelSwapMsg
	if err := tokenswap.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}
	record, err := loadSwap(db, msg.SwapID)
	if err != nil {
		return nil, nil, err
	}
	if err := swap.EnsureOpen(record.State); err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, record.AgentSender) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "only the sender is able to cancel the swap")
	}
	return &msg, record, nil
}

// FinalizeSwapHandler settles the swap: it pulls the recipient's
// counter-value into custody and redistributes both sides, three transfer
// legs in one invocation. Identity is not checked; the recipient's ledger
// allowance is the authorization.
type FinalizeSwapHandler struct {
	ledgers erc20.Gateway
}

var _ tokenswap.Handler = FinalizeSwapHandler{}

func (h FinalizeSwapHandler) Check(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &tokenswap.CheckResult{GasAllocated: settleSwapCost}, nil
}

func (h FinalizeSwapHandler) Deliver(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.DeliverResult, error) {
	msg, record, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	// all three legs settle or none does; a failure unwinds the whole
	// invocation at the transaction boundary
	if err := h.ledgers.TransferFrom(db, record.LedgerRecipient, record.AgentRecipient, CustodyAddr(), CustodyAddr(), record.AmountRecipient); err != nil {
		return nil, errors.Wrap(err, "cannot take recipient custody")
	}
	if err := h.ledgers.Transfer(db, record.LedgerRecipient, CustodyAddr(), record.AgentSender, record.AmountRecipient); err != nil {
		return nil, errors.Wrap(err, "cannot forward recipient value")
	}
	if err := h.ledgers.Transfer(db, record.LedgerSender, CustodyAddr(), record.AgentRecipient, record.AmountSender); err != nil {
		return nil, errors.Wrap(err, "cannot release custody")
	}

	record.State = swap.Finalized
	if err := saveSwap(db, msg.SwapID, record); err != nil {
		return nil, err
	}
	return &tokenswap.DeliverResult{}, nil
}

func (h FinalizeSwapHandler) validate(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*FinalizeSwapMsg, *Swap, error) {
	var msg FinalizeSwapMsg
	if err := tokenswap.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}
	record, err := loadSwap(db, msg.SwapID)
	if err != nil {
		return nil, nil, err
	}
	if err := swap.EnsureOpen(record.State); err != nil {
		return nil, nil, err
	}

	allowed, err := h.ledgers.Allowance(db, record.LedgerRecipient, record.AgentRecipient, CustodyAddr())
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot query allowance")
	}
	if allowed < record.AmountRecipient {
		return nil, nil, errors.Wrap(errors.ErrAmount, "contract is not allowed to transfer the specified amount of tokens")
	}
	if swap.IsClosed(ctx, record.WhenStarted, record.DurationOpen) {
		return nil, nil, errors.Wrap(errors.ErrExpired, "swap is not open anymore")
	}
	return &msg, record, nil
}
