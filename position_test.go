package cartera

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewPosition(t *testing.T) {
	pos, err := NewPosition("FPV Esenciales", "Lulo", "cop", "1,500,000", "")
	if err != nil {
		t.Fatalf("NewPosition() returned an unexpected error: %v", err)
	}

	if got := pos.Symbol(); got != "FPV Esenciales" {
		t.Errorf("Symbol() = %q", got)
	}
	if got := pos.Platform(); got != "Lulo" {
		t.Errorf("Platform() = %q", got)
	}
	if got := pos.Currency(); got != COP {
		t.Errorf("Currency() = %q, want normalized uppercase %q", got, COP)
	}
	if want := decimal.NewFromInt(1500000); !pos.Value().Amount().Equal(want) {
		t.Errorf("Value() = %s, want %s", pos.Value().Amount(), want)
	}
	if got := pos.AssetType(); got != DefaultAssetType {
		t.Errorf("AssetType() = %q, want default %q", got, DefaultAssetType)
	}
}

func TestNewPosition_Invalid(t *testing.T) {
	testCases := []struct {
		name                           string
		symbol, platform, currency, value string
		wantCurrencyErr, wantParseErr bool
	}{
		{name: "empty symbol", symbol: "", platform: "Trii", currency: "USD", value: "10"},
		{name: "blank platform", symbol: "VOO", platform: "  ", currency: "USD", value: "10"},
		{name: "unsupported currency", symbol: "VOO", platform: "Trii", currency: "EUR", value: "10", wantCurrencyErr: true},
		{name: "malformed value", symbol: "VOO", platform: "Trii", currency: "USD", value: "$10", wantParseErr: true},
		{name: "empty value", symbol: "VOO", platform: "Trii", currency: "USD", value: "", wantParseErr: true},
		{name: "negative value", symbol: "VOO", platform: "Trii", currency: "USD", value: "-10", wantParseErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewPosition(tc.symbol, tc.platform, tc.currency, tc.value, "")
			if err == nil {
				t.Fatal("NewPosition() should have failed")
			}
			var currencyErr *InvalidCurrencyError
			if got := errors.As(err, &currencyErr); got != tc.wantCurrencyErr {
				t.Errorf("errors.As(*InvalidCurrencyError) = %v, want %v (err: %v)", got, tc.wantCurrencyErr, err)
			}
			var parseErr *ParseError
			if got := errors.As(err, &parseErr); got != tc.wantParseErr {
				t.Errorf("errors.As(*ParseError) = %v, want %v (err: %v)", got, tc.wantParseErr, err)
			}
		})
	}
}

func TestNewPosition_AssetType(t *testing.T) {
	pos, err := NewPosition("VOO", "Trii", "USD", "150.50", "etf")
	if err != nil {
		t.Fatalf("NewPosition() returned an unexpected error: %v", err)
	}
	if got := pos.AssetType(); got != "etf" {
		t.Errorf("AssetType() = %q, want %q", got, "etf")
	}
}
