package investfolio

import "testing"

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Category
	}{
		{name: "backend code", in: "BR_STOCKS", want: BRStocks},
		{name: "backend code lower case", in: "crypto", want: Crypto},
		{name: "display label", in: "Ações BR", want: BRStocks},
		{name: "display label unaccented", in: "acoes br", want: BRStocks},
		{name: "display label fiis", in: "FIIs", want: FIIs},
		{name: "display label stocks", in: "Stocks", want: USStocks},
		{name: "display label cripto", in: "Cripto", want: Crypto},
		{name: "display label renda fixa", in: "Renda Fixa", want: FixedIncome},
		{name: "fallback code", in: "OUTROS", want: Other},
		{name: "unknown falls back", in: "Collectibles", want: Other},
		{name: "empty falls back", in: "", want: Other},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseCategory(tt.in); got != tt.want {
				t.Errorf("ParseCategory(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCategoryLabelRoundTrip(t *testing.T) {
	for _, c := range Categories() {
		if got := ParseCategory(c.Label()); got != c {
			t.Errorf("ParseCategory(%q) = %v, want %v", c.Label(), got, c)
		}
	}
}
