/*
Package tokenswap defines the common interfaces that tie the swap engine
together: the key-value store with its cache-wrap transaction boundary,
messages and handlers, addresses and conditions, and the block-time clock
every swap window is measured against.

The swap state machines live under x/. Infrastructure that backs them (the
in-memory store, the swap registry, the error codes) lives in store/,
registry/ and errors/.
*/
package tokenswap
