package sheets

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestPositionsFromRows(t *testing.T) {
	rows := [][]string{
		{"Activo", "Plataforma", "Moneda", "Valor"}, // header
		{"FPV Esenciales", "Lulo", "COP", "1,500,000"},
		{"VOO", "Trii", "usd", "150.50", "etf", "extra column ignored"},
		{"Broken"},                          // too few cells
		{"Bad", "Trii", "USD", "$12"},       // malformed value
		{"Worse", "Trii", "GBP", "12"},      // unsupported currency
	}

	p := PositionsFromRows(rows)

	if p.Len() != 2 {
		t.Fatalf("PositionsFromRows() kept %d positions, want 2", p.Len())
	}

	total, err := p.TotalValue(nil)
	if err != nil {
		t.Fatalf("TotalValue(): %v", err)
	}
	// 1,500,000 COP + 150.50 USD at the built-in 4000 fallback
	if want := decimal.NewFromInt(2102000); !total.Amount().Equal(want) {
		t.Errorf("TotalValue() = %s, want %s", total.Amount(), want)
	}
}

func TestPositionsFromRows_Empty(t *testing.T) {
	if p := PositionsFromRows(nil); p.Len() != 0 {
		t.Errorf("PositionsFromRows(nil) has %d positions, want 0", p.Len())
	}
}
