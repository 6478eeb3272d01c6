package renderer

import (
	"fmt"
	"strings"

	investfolio "github.com/vtorres/investfolio"
)

// Holdings renders the portfolio aggregates as a markdown table, followed by
// the total equity and asset count.
func Holdings(holdings []investfolio.Holding, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio\n\n")

	if len(holdings) == 0 {
		fmt.Fprintln(&b, "No holdings yet. Record a trade with `ifo buy`.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Ticker | Category | Quantity | Avg Price | Value |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|")
	for _, h := range holdings {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			escape(h.Ticker),
			h.Category.Label(),
			h.Quantity,
			h.AveragePrice,
			h.Value(currency),
		)
	}

	fmt.Fprintf(&b, "\nTotal equity: **%s** across %d assets.\n",
		investfolio.TotalEquity(holdings, currency), len(holdings))
	return b.String()
}
