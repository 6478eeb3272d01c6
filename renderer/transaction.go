package renderer

import (
	"fmt"
	"strings"

	investfolio "github.com/vtorres/investfolio"
)

// Receipt renders the confirmation of a recorded trade.
func Receipt(trade investfolio.Trade) string {
	var b strings.Builder
	verb := "Bought"
	if trade.Type == investfolio.Sell {
		verb = "Sold"
	}
	fmt.Fprintf(&b, "%s **%s %s** at %s on %s (%s).\n",
		verb,
		trade.Quantity,
		escape(trade.Ticker),
		trade.Price,
		trade.Date,
		trade.Category.Label(),
	)
	return b.String()
}
