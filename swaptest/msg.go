package swaptest

import (
	"github.com/iov-one/tokenswap"
)

// Msg is a mock message with a configurable path and payload.
type Msg struct {
	// Serialized is returned by Marshal.
	Serialized []byte

	// RoutePath is returned by Path.
	RoutePath string

	// Err if set is returned by every method that can fail.
	Err error
}

var _ tokenswap.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}

func (m *Msg) Marshal() ([]byte, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Serialized, nil
}

func (m *Msg) Unmarshal(raw []byte) error {
	if m.Err != nil {
		return m.Err
	}
	m.Serialized = raw
	return nil
}
