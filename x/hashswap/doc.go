/*
Package hashswap implements the hash-locked asynchronous swap variant, a
classic hash-time-lock over an external ledger.

The sender's tokens are pulled from its ledger into the engine's custody
at start, locked under a commitment. Whoever reveals the matching secret
within the validity window releases the tokens to the recipient; once the
window expired, and only then, the sender may reclaim them. The revealed
secret is stored in the record and becomes publicly readable, which is
how the counterparty learns it for the matching swap on another ledger.
*/
package hashswap
