package investfolio

import (
	"errors"
	"testing"
	"time"
)

func validForm() TradeForm {
	return TradeForm{
		Ticker:   "aapl",
		Category: "Stocks",
		Type:     "buy",
		Date:     "2024-03-15",
		Quantity: "10",
		Price:    "187.50",
	}
}

func TestTradeFormValidate(t *testing.T) {
	trade, err := validForm().Validate()
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if trade.Ticker != "AAPL" {
		t.Errorf("Ticker = %q, want upper-cased %q", trade.Ticker, "AAPL")
	}
	if trade.Category != USStocks {
		t.Errorf("Category = %v, want %v", trade.Category, USStocks)
	}
	if trade.Type != Buy {
		t.Errorf("Type = %v, want %v", trade.Type, Buy)
	}
	if want := NewDate(2024, time.March, 15); trade.Date != want {
		t.Errorf("Date = %v, want %v", trade.Date, want)
	}
	if trade.Quantity.String() != "10" || trade.Price.String() != "187.5" {
		t.Errorf("Quantity/Price = %s/%s, want 10/187.5", trade.Quantity, trade.Price)
	}
}

func TestTradeFormValidateDateDefaultsToToday(t *testing.T) {
	form := validForm()
	form.Date = ""
	trade, err := form.Validate()
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if trade.Date != Today() {
		t.Errorf("Date = %v, want today %v", trade.Date, Today())
	}
}

func TestTradeFormValidateFieldErrors(t *testing.T) {
	tests := []struct {
		name  string
		mod   func(*TradeForm)
		field string
	}{
		{name: "empty ticker", mod: func(f *TradeForm) { f.Ticker = "  " }, field: "ticker"},
		{name: "empty category", mod: func(f *TradeForm) { f.Category = "" }, field: "category"},
		{name: "bad type", mod: func(f *TradeForm) { f.Type = "HOLD" }, field: "type"},
		{name: "bad date", mod: func(f *TradeForm) { f.Date = "15/03/2024" }, field: "date"},
		{name: "zero quantity", mod: func(f *TradeForm) { f.Quantity = "0" }, field: "quantity"},
		{name: "negative quantity", mod: func(f *TradeForm) { f.Quantity = "-1" }, field: "quantity"},
		{name: "non numeric quantity", mod: func(f *TradeForm) { f.Quantity = "ten" }, field: "quantity"},
		{name: "zero price", mod: func(f *TradeForm) { f.Price = "0" }, field: "price"},
		{name: "non numeric price", mod: func(f *TradeForm) { f.Price = "abc" }, field: "price"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mod(&form)
			_, err := form.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want field error")
			}
			var fe FieldError
			if !errors.As(err, &fe) {
				t.Fatalf("error %v is not a FieldError", err)
			}
			if fe.Field != tt.field {
				t.Errorf("FieldError.Field = %q, want %q", fe.Field, tt.field)
			}
		})
	}
}

func TestTradeFormValidateUnknownCategoryFallsBack(t *testing.T) {
	form := validForm()
	form.Category = "Collectibles"
	trade, err := form.Validate()
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if trade.Category != Other {
		t.Errorf("Category = %v, want fallback %v", trade.Category, Other)
	}
}
