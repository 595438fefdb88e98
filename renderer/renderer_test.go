package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jmrios/cartera"
)

func TestAllocationMarkdown(t *testing.T) {
	alloc := map[string]decimal.Decimal{
		"Trii": decimal.RequireFromString("85.75"),
		"Lulo": decimal.RequireFromString("14.25"),
	}

	got := AllocationMarkdown("Platform", alloc)

	if !strings.Contains(got, "14.25%") || !strings.Contains(got, "85.75%") {
		t.Errorf("AllocationMarkdown() missing percentages:\n%s", got)
	}
	// the share column is right-aligned
	if !strings.Contains(got, "---:") {
		t.Errorf("AllocationMarkdown() table is not right-aligned:\n%s", got)
	}
	// groups are sorted by name for deterministic output
	if strings.Index(got, "Lulo") > strings.Index(got, "Trii") {
		t.Errorf("AllocationMarkdown() rows are not sorted:\n%s", got)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	pos, err := cartera.NewPosition("Fund1", "Lulo", "COP", "100,000", "")
	if err != nil {
		t.Fatal(err)
	}
	p := cartera.NewPortfolio(pos)
	total, err := p.TotalValue(nil)
	if err != nil {
		t.Fatal(err)
	}

	got := SummaryMarkdown(cartera.NewDate(2025, time.June, 10), p, total)

	for _, want := range []string{"Portfolio Summary on 2025-06-10", "Fund1", "Lulo", "Total value"} {
		if !strings.Contains(got, want) {
			t.Errorf("SummaryMarkdown() missing %q:\n%s", want, got)
		}
	}
}

func TestUsageMarkdown_Empty(t *testing.T) {
	got := UsageMarkdown(nil)
	if !strings.Contains(got, "No usage recorded.") {
		t.Errorf("UsageMarkdown(nil) = %q", got)
	}
}
