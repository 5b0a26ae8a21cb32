package swaptest

import (
	"sync/atomic"

	"github.com/iov-one/tokenswap"
)

// Handler implements a mock handler with configurable results and call
// counters.
type Handler struct {
	checkCall   int64
	deliverCall int64

	// CheckResult is returned by the Check call.
	CheckResult tokenswap.CheckResult
	// CheckErr if set is returned by the Check call.
	CheckErr error

	// DeliverResult is returned by the Deliver call.
	DeliverResult tokenswap.DeliverResult
	// DeliverErr if set is returned by the Deliver call.
	DeliverErr error
}

var _ tokenswap.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.CheckResult, error) {
	atomic.AddInt64(&h.checkCall, 1)
	return &h.CheckResult, h.CheckErr
}

func (h *Handler) Deliver(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.DeliverResult, error) {
	atomic.AddInt64(&h.deliverCall, 1)
	return &h.DeliverResult, h.DeliverErr
}

// CheckCallCount returns the number of times Check was called.
func (h *Handler) CheckCallCount() int {
	return int(atomic.LoadInt64(&h.checkCall))
}

// DeliverCallCount returns the number of times Deliver was called.
func (h *Handler) DeliverCallCount() int {
	return int(atomic.LoadInt64(&h.deliverCall))
}

// CallCount returns the total number of calls.
func (h *Handler) CallCount() int {
	return h.CheckCallCount() + h.DeliverCallCount()
}
