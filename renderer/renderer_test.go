package renderer

import (
	"strings"
	"testing"

	investfolio "github.com/vtorres/investfolio"
)

func TestHoldings(t *testing.T) {
	holdings := []investfolio.Holding{
		{Ticker: "PETR4", Category: investfolio.BRStocks, Quantity: investfolio.Q(100), AveragePrice: investfolio.P(31.2)},
		{Ticker: "AAPL", Category: investfolio.USStocks, Quantity: investfolio.Q(2), AveragePrice: investfolio.P(190)},
	}
	md := Holdings(holdings, "BRL")

	for _, want := range []string{
		"| PETR4 | Ações BR | 100 | 31.2 | R$3.120,00 |",
		"| AAPL | Stocks | 2 | 190 | R$380,00 |",
		"Total equity: **R$3.500,00** across 2 assets.",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Holdings() missing %q in:\n%s", want, md)
		}
	}
}

func TestHoldingsEmpty(t *testing.T) {
	md := Holdings(nil, "BRL")
	if !strings.Contains(md, "No holdings yet") {
		t.Errorf("Holdings(nil) = %q, want empty-portfolio message", md)
	}
}

func TestReceipt(t *testing.T) {
	trade := investfolio.Trade{
		Ticker:   "PETR4",
		Category: investfolio.BRStocks,
		Type:     investfolio.Buy,
		Date:     investfolio.Today(),
		Quantity: investfolio.Q(100),
		Price:    investfolio.P(31.2),
	}
	md := Receipt(trade)
	if !strings.Contains(md, "Bought **100 PETR4** at 31.2") {
		t.Errorf("Receipt() = %q, unexpected", md)
	}

	trade.Type = investfolio.Sell
	if md := Receipt(trade); !strings.Contains(md, "Sold **100 PETR4**") {
		t.Errorf("Receipt() = %q, want sell wording", md)
	}
}
