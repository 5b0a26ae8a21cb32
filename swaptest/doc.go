/*
Package swaptest provides mocks and helpers for testing the swap engine
handlers without a hosting system: a transaction wrapper around a single
message, a context backed authenticator, and condition generators.
*/
package swaptest
