/*
Package swap holds the pieces shared by all swap engine variants: the
tagged terminal state and the validity window arithmetic.

Every swap follows the same tiny state machine

	Open -> Cancelled
	Open -> Finalized

with both outcomes terminal. Once terminal, a record is immutable; any
further cancel or finalize is rejected.
*/
package swap

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
)

// State is the lifecycle position of a swap record. Unlike a plain
// finished flag it preserves how the swap ended, so observers can tell a
// cancelled swap from a settled one.
type State uint8

const (
	// Open means the swap can still be cancelled or finalized.
	Open State = iota
	// Cancelled means the sender reclaimed the escrowed value.
	Cancelled
	// Finalized means the swap settled and both parties were paid.
	Finalized
)

// Terminal returns true once the swap reached an end state.
func (s State) Terminal() bool {
	return s != Open
}

// Validate returns an error for values outside the known set.
func (s State) Validate() error {
	if s > Finalized {
		return errors.Wrapf(errors.ErrState, "unknown state %d", s)
	}
	return nil
}

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case Cancelled:
		return "cancelled"
	case Finalized:
		return "finalized"
	default:
		return "invalid"
	}
}

// EnsureOpen returns an error unless the swap can still transition.
func EnsureOpen(s State) error {
	if s.Terminal() {
		return errors.Wrap(errors.ErrState, "swap is already finished")
	}
	return nil
}

// WindowEnd returns the last moment at which a finalize is still allowed.
func WindowEnd(started tokenswap.UnixTime, open tokenswap.UnixDuration) tokenswap.UnixTime {
	return started + tokenswap.UnixTime(open)
}

// IsClosed returns true once the block time passed the swap validity
// window. The window is inclusive on both ends: a finalize at exactly the
// window end is still accepted. Finalize requires the window to be open;
// the hash-locked cancel requires it to be closed.
//
// This function panics if the block time is not provided in the context.
func IsClosed(ctx tokenswap.Context, started tokenswap.UnixTime, open tokenswap.UnixDuration) bool {
	blockNow, err := tokenswap.BlockTime(ctx)
	if err != nil {
		panic("block time is not present")
	}
	return tokenswap.AsUnixTime(blockNow) > WindowEnd(started, open)
}
