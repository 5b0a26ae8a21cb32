/*
Package syncswap implements the synchronous bilateral swap variant.

Each party's tokens live in its own external ledger. The sender's tokens
are pulled into custody at start; a single finalize later pulls the
recipient's counter-value in and redistributes both sides in one atomic
sequence. A failure in any leg unwinds the whole finalize, so partial
settlement is never observable. The sender may cancel and reclaim its
custodied tokens at any time before the finalize.
*/
package syncswap
