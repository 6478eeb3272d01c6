package investfolio

import "strings"

// Category is an asset category code accepted by the backend.
type Category string

const (
	BRStocks    Category = "BR_STOCKS"
	FIIs        Category = "FIIS"
	USStocks    Category = "US_STOCKS"
	Crypto      Category = "CRYPTO"
	FixedIncome Category = "FIXED_INCOME"
	Other       Category = "OUTROS"
)

// categoryLabels maps the display labels of the original dashboard to the
// backend codes.
var categoryLabels = map[string]Category{
	"ações br":   BRStocks,
	"acoes br":   BRStocks,
	"fiis":       FIIs,
	"stocks":     USStocks,
	"cripto":     Crypto,
	"renda fixa": FixedIncome,
}

// Label returns the display label of the category.
func (c Category) Label() string {
	switch c {
	case BRStocks:
		return "Ações BR"
	case FIIs:
		return "FIIs"
	case USStocks:
		return "Stocks"
	case Crypto:
		return "Cripto"
	case FixedIncome:
		return "Renda Fixa"
	default:
		return "Outros"
	}
}

func (c Category) String() string { return string(c) }

// Categories lists every category the backend accepts, fallback last.
func Categories() []Category {
	return []Category{BRStocks, FIIs, USStocks, Crypto, FixedIncome, Other}
}

// ParseCategory maps user input to a backend category. It accepts both the
// backend codes and the display labels, case-insensitively. Anything it does
// not recognize falls back to the generic Other bucket; that fallback is part
// of the contract, not an error.
func ParseCategory(s string) Category {
	s = strings.TrimSpace(s)
	switch code := Category(strings.ToUpper(s)); code {
	case BRStocks, FIIs, USStocks, Crypto, FixedIncome, Other:
		return code
	}
	if c, ok := categoryLabels[strings.ToLower(s)]; ok {
		return c
	}
	return Other
}
