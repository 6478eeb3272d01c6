package investfolio

// Holding is the backend-computed aggregate position for one asset. The
// client never derives it locally: it is fetched ready-made and displayed.
type Holding struct {
	ID           string   `json:"id"`
	Ticker       string   `json:"ticker"`
	Category     Category `json:"category"`
	Quantity     Quantity `json:"total_quantity"`
	AveragePrice Price    `json:"average_price"`
}

// Value returns the position value (quantity at average price) in the given
// currency.
func (h Holding) Value(currency string) Money {
	return h.AveragePrice.Mul(h.Quantity, currency)
}

// TotalEquity sums the value of all holdings in the given currency.
func TotalEquity(holdings []Holding, currency string) Money {
	total := Money{cur: currency}
	for _, h := range holdings {
		total = total.Add(h.Value(currency))
	}
	return total
}
