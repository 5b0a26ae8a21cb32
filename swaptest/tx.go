package swaptest

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
)

// Tx is a minimal transaction implementation wrapping a single message.
type Tx struct {
	// Msg is the message that transaction is carrying.
	Msg tokenswap.Msg

	// Err if set is returned by any method call.
	Err error
}

var _ tokenswap.Tx = (*Tx)(nil)

// GetMsg returns the wrapped message.
func (tx *Tx) GetMsg() (tokenswap.Msg, error) {
	if tx.Err != nil {
		return nil, tx.Err
	}
	return tx.Msg, nil
}

// Marshal serializes the wrapped message.
func (tx *Tx) Marshal() ([]byte, error) {
	if tx.Err != nil {
		return nil, tx.Err
	}
	return tx.Msg.Marshal()
}

// Unmarshal is not usable as the wrapped message type is unknown.
func (tx *Tx) Unmarshal([]byte) error {
	if tx.Err != nil {
		return tx.Err
	}
	return errors.Wrap(errors.ErrHuman, "cannot unmarshal into a mock")
}
