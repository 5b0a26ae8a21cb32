package tokenswap

import (
	"reflect"

	"github.com/iov-one/tokenswap/errors"
)

// Marshaller is anything that can be represented in binary
//
// Marshall may validate the data before serializing it and unless you
// previously validated the struct, errors should be expected.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent supports Marshal and Unmarshal
//
// This is separated from Marshal, as this almost always requires
// a pointer, and functions that only need to marshal bytes can
// use the Marshaller interface to access non-pointers.
//
// As with Marshaller, this may do internal validation on the data
// and errors should be expected.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Msg is a request for the engine to take an action (make a state
// transition). It is just the request, and must be validated by the
// Handlers.
type Msg interface {
	Persistent

	// Validate enforces the basic sanity rules on the message content,
	// most notably that every mandatory field is present.
	Validate() error

	// Path returns the message path.
	// This is used by the Router to locate the proper Handler.
	// Msg should be created alongside the Handler that corresponds to
	// them.
	//
	// Must be alphanumeric [0-9A-Za-z_\-/]+
	Path() string
}

// Tx represents one engine invocation as sent by the host. It includes the
// actual message, and is the place where the host attaches anything else
// that must pass through middleware.
type Tx interface {
	Persistent

	// GetMsg returns the action we wish to communicate
	GetMsg() (Msg, error)
}

// LoadMsg extracts the message from given transaction, ensures the
// message content is valid and stores the result in the destination.
// Destination must be a pointer to a message instance.
func LoadMsg(tx Tx, destination Msg) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get message")
	}
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}

	dval := reflect.ValueOf(destination)
	if dval.Kind() != reflect.Ptr {
		return errors.Wrapf(errors.ErrType, "destination must be a pointer, got %T", destination)
	}
	mval := reflect.ValueOf(msg)
	if mval.Type() != dval.Type() {
		return errors.Wrapf(errors.ErrType, "want %T message, got %T", destination, msg)
	}
	dval.Elem().Set(mval.Elem())
	return nil
}
