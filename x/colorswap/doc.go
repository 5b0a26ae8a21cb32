/*
Package colorswap implements the direct-deposit swap variant.

Both parties deposit colored tokens straight into the engine's custody:
the sender attaches its tokens when starting the swap, the recipient
attaches the counter-value when finalizing, and settlement is a double
transfer within that same finalize. The sender may reclaim its deposit at
any time before the recipient finalizes.
*/
package colorswap
