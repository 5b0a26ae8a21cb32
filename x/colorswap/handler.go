package colorswap

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/coin"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/x"
	"github.com/iov-one/tokenswap/x/bank"
	"github.com/iov-one/tokenswap/x/swap"
)

const (
	startSwapCost  int64 = 300
	settleSwapCost int64 = 100
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r tokenswap.Registry, auth x.Authenticator, cash bank.CoinMover) {
	r.Handle(StartSwapMsg{}.Path(), StartSwapHandler{auth, cash})
	r.Handle(CancelSwapMsg{}.Path(), CancelSwapHandler{auth, cash})
	r.Handle(FinalizeSwapMsg{}.Path(), FinalizeSwapHandler{auth, cash})
}

// RegisterQuery registers the raw swap record query.
func RegisterQuery(qr tokenswap.QueryRouter) {
	swaps.Register("colorswaps", qr)
}

// StartSwapHandler takes custody of the attached deposit and creates the
// swap record.
type StartSwapHandler struct {
	auth x.Authenticator
	cash bank.CoinMover
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
	deposit := coin.NewCoin(msg.ColorSender, msg.AmountSender)
	if err := h.cash.MoveCoins(db, sender, SwapAddr(msg.SwapID), deposit); err != nil {
		return nil, errors.Wrap(err, "cannot take custody")
	}

	blockTime, err := tokenswap.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	record := &Swap{
		ColorSender:      msg.ColorSender,
		ColorRecipient:   msg.ColorRecipient,
		AmountSender:     msg.AmountSender,
		AmountRecipient:  msg.AmountRecipient,
		AddressSender:    sender,
		AddressRecipient: msg.AddressRecipient,
		WhenStarted:      tokenswap.AsUnixTime(blockTime),
		DurationOpen:     msg.Duration,
		State:            swap.Open,
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

	attached := bank.Attached(ctx)
	if len(attached) > 1 {
		return nil, errors.Wrap(errors.ErrInput, "more than one token color attached")
	}
	if attached.AmountOf(msg.ColorSender) != msg.AmountSender {
		return nil, errors.Wrap(errors.ErrAmount, "transferred balance of color does not match amount parameter")
	}
	return &msg, nil
}

// CancelSwapHandler returns the escrowed deposit to the sender. There is
// no window check: the sender may reclaim any time before a finalize.
type CancelSwapHandler struct {
	auth x.Authenticator
	cash bank.CoinMover
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

	refund := coin.NewCoin(record.ColorSender, record.AmountSender)
	if err := h.cash.MoveCoins(db, SwapAddr(msg.SwapID), record.AddressSender, refund); err != nil {
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
	if !h.auth.HasAddress(ctx, record.AddressSender) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "only the sender is able to cancel the swap")
	}
	return &msg, record, nil
}

// FinalizeSwapHandler settles the swap with a double transfer: the
// recipient's attached deposit goes to the sender and the custodied
// deposit goes to the recipient.
type FinalizeSwapHandler struct {
	auth x.Authenticator
	cash bank.CoinMover
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

	counter := coin.NewCoin(record.ColorRecipient, record.AmountRecipient)
	if err := h.cash.MoveCoins(db, record.AddressRecipient, record.AddressSender, counter); err != nil {
		return nil, errors.Wrap(err, "cannot forward recipient deposit")
	}
	deposit := coin.NewCoin(record.ColorSender, record.AmountSender)
	if err := h.cash.MoveCoins(db, SwapAddr(msg.SwapID), record.AddressRecipient, deposit); err != nil {
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
	if !h.auth.HasAddress(ctx, record.AddressRecipient) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "only the recipient is able to finalize the swap")
	}
	if swap.IsClosed(ctx, record.WhenStarted, record.DurationOpen) {
		return nil, nil, errors.Wrap(errors.ErrExpired, "swap is not open anymore")
	}

	attached := bank.Attached(ctx)
	if len(attached) > 1 {
		return nil, nil, errors.Wrap(errors.ErrInput, "more than one token color attached")
	}
	if attached.AmountOf(record.ColorRecipient) != record.AmountRecipient {
		return nil, nil, errors.Wrap(errors.ErrAmount, "transferred balance of color does not match amount parameter")
	}
	return &msg, record, nil
}
