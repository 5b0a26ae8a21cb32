/*
Package bank keeps track of colored-token wallets and moves value between
them. It is the native settlement layer the direct swap variant escrows
into: every wallet is addressed by a tokenswap.Address, including the
per-swap escrow accounts derived from conditions.

The package also carries the attached-funds context: the colored value the
host attached to the current invocation, which the direct variant checks
against the declared amounts before taking custody.
*/
package bank
