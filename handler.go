package tokenswap

// CheckResult captures the output of a dry-run invocation. Nothing is
// persisted; only the cost of the operation is reported.
type CheckResult struct {
	// GasAllocated is the maximum units of work we allow this operation
	// to perform.
	GasAllocated int64

	// Data is a machine-parseable return value, like the id of a newly
	// created swap.
	Data []byte
}

// DeliverResult captures any non-error output of an executed invocation.
type DeliverResult struct {
	// Data is a machine-parseable return value, like the id of a newly
	// created swap.
	Data []byte

	// Log is human readable
	Log string
}

// Handler is a core engine that can process a few specific messages.
// This could represent "start a swap", or "finalize a swap".
type Handler interface {
	Checker
	Deliverer
}

// Checker is a subset of Handler to verify the validity of an invocation
// without applying it. It is its own interface to allow better type
// controls in the next arguments in Decorator.
type Checker interface {
	Check(ctx Context, store KVStore, tx Tx) (*CheckResult, error)
}

// Deliverer is a subset of Handler to execute an invocation. It is its own
// interface to allow better type controls in the next arguments in
// Decorator.
type Deliverer interface {
	Deliver(ctx Context, store KVStore, tx Tx) (*DeliverResult, error)
}

// Registry is an interface to register your handler,
// the setup side of a Router
type Registry interface {
	Handle(path string, h Handler)
}
