/*
Package std assembles the complete swap engine: all three protocol
variants routed behind one message router and one query router, backed by
the shared bank and ledger controllers. This is what a hosting system
embeds.
*/
package std

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/app"
	"github.com/iov-one/tokenswap/x"
	"github.com/iov-one/tokenswap/x/bank"
	"github.com/iov-one/tokenswap/x/colorswap"
	"github.com/iov-one/tokenswap/x/erc20"
	"github.com/iov-one/tokenswap/x/hashswap"
	"github.com/iov-one/tokenswap/x/syncswap"
)

// Router returns the message router with all swap variant handlers
// registered.
func Router(auth x.Authenticator, cash bank.CoinMover, ledgers erc20.Gateway) *app.Router {
	r := app.NewRouter()
	colorswap.RegisterRoutes(r, auth, cash)
	hashswap.RegisterRoutes(r, auth, ledgers)
	syncswap.RegisterRoutes(r, auth, ledgers)
	return r
}

// QueryRouter returns the query router with all read-only swap queries
// registered.
func QueryRouter() tokenswap.QueryRouter {
	qr := tokenswap.NewQueryRouter()
	colorswap.RegisterQuery(qr)
	hashswap.RegisterQuery(qr)
	syncswap.RegisterQuery(qr)
	return qr
}
