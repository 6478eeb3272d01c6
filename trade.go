package investfolio

import (
	"errors"
	"fmt"
	"strings"
)

// TradeType is the direction of a trade.
type TradeType string

const (
	Buy  TradeType = "BUY"
	Sell TradeType = "SELL"
)

// ParseTradeType maps user input to a trade type.
func ParseTradeType(s string) (TradeType, error) {
	switch t := TradeType(strings.ToUpper(strings.TrimSpace(s))); t {
	case Buy, Sell:
		return t, nil
	}
	return "", fmt.Errorf("invalid trade type %q: must be BUY or SELL", s)
}

// Asset is a tradable instrument as known by the backend. The identifier is
// assigned server-side and opaque to the client.
type Asset struct {
	ID       string   `json:"id"`
	Ticker   string   `json:"ticker"`
	Category Category `json:"category"`
	Name     string   `json:"name"`
}

// FieldError is a validation failure attached to a single form field. It is
// resolved locally: a trade form that fails validation never reaches the
// network.
type FieldError struct {
	Field string
	Msg   string
}

func (e FieldError) Error() string { return e.Field + ": " + e.Msg }

// TradeForm is the raw trade entry as typed by the user. Quantity and price
// are kept as text until validation.
type TradeForm struct {
	Ticker   string
	Category string
	Type     string
	Date     string
	Quantity string
	Price    string
}

// Trade is a validated trade, ready for the recording workflow.
type Trade struct {
	Ticker   string
	Category Category
	Type     TradeType
	Date     Date
	Quantity Quantity
	Price    Price
}

// Validate checks every field of the form and returns the validated trade.
// The ticker is normalized to upper case, the category mapped to the backend
// enumeration (unknown labels fall back to Other). All field failures are
// reported together, joined; callers can pick them apart with errors.As on
// FieldError.
func (f TradeForm) Validate() (Trade, error) {
	var errs []error
	var trade Trade

	trade.Ticker = strings.ToUpper(strings.TrimSpace(f.Ticker))
	if trade.Ticker == "" {
		errs = append(errs, FieldError{Field: "ticker", Msg: "ticker is required"})
	}

	if strings.TrimSpace(f.Category) == "" {
		errs = append(errs, FieldError{Field: "category", Msg: "category is required"})
	} else {
		trade.Category = ParseCategory(f.Category)
	}

	typ, err := ParseTradeType(f.Type)
	if err != nil {
		errs = append(errs, FieldError{Field: "type", Msg: err.Error()})
	} else {
		trade.Type = typ
	}

	if strings.TrimSpace(f.Date) == "" {
		trade.Date = Today()
	} else {
		day, err := ParseDate(f.Date)
		if err != nil {
			errs = append(errs, FieldError{Field: "date", Msg: err.Error()})
		} else {
			trade.Date = day
		}
	}

	qty, err := ParseQuantity(f.Quantity)
	if err != nil {
		errs = append(errs, FieldError{Field: "quantity", Msg: err.Error()})
	} else {
		trade.Quantity = qty
	}

	price, err := ParsePrice(f.Price)
	if err != nil {
		errs = append(errs, FieldError{Field: "price", Msg: err.Error()})
	} else {
		trade.Price = price
	}

	if len(errs) > 0 {
		return Trade{}, errors.Join(errs...)
	}
	return trade, nil
}

// Record is the trade as submitted to the backend ledger, bound to a
// resolved asset identifier. Immutable once created: the client never updates
// or deletes transactions.
type Record struct {
	AssetID  string    `json:"asset_id"`
	Type     TradeType `json:"type"`
	Quantity Quantity  `json:"quantity"`
	Price    Price     `json:"price"`
	Date     Date      `json:"date"`
}
