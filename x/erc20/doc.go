/*
Package erc20 models the external ledger contracts the ledger-backed swap
variants settle through. Each ledger is addressed by name and keeps its
own balances and allowances; the swap engines talk to it through the
Gateway interface only.

Calls are synchronous: the caller blocks until the ledger answers, and an
error aborts the whole invocation. The engines never retry — unwinding is
left to the transaction boundary of the dispatcher.
*/
package erc20
