// Package investfolio provides the domain types and the trade recording
// workflow of the invest-ai terminal client. The backend owns all durable
// state (assets, transactions, holdings, analysis narratives); this package
// models the client side of that contract:
//
//   - Trade capture: turning a user-entered (ticker, category, type, date,
//     quantity, price) form into a validated trade, with decimal semantics
//     for quantity and price and calendar-date semantics for the trade date.
//   - Asset resolution: mapping a ticker and category to a durable backend
//     identifier, with an explicit tagged outcome for the "already exists"
//     answer that carries no identifier.
//   - The recording workflow: a small state machine that resolves the asset
//     and only then records the transaction, invalidating the portfolio view
//     on success.
//
// The api package implements the resolver and recorder against the REST
// backend, session holds the bearer credential, and cmd exposes the whole
// thing as the `ifo` command-line tool.
package investfolio
