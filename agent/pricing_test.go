package agent

import (
	"testing"

	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

func TestPricing_Cost(t *testing.T) {
	p := Pricing{
		InputPerM:  decimal.RequireFromString("0.30"),
		OutputPerM: decimal.RequireFromString("2.50"),
	}

	usage := &genai.GenerateContentResponseUsageMetadata{
		PromptTokenCount:     1_000_000,
		CandidatesTokenCount: 100_000,
	}
	// 1M input at 0.30 plus 0.1M output at 2.50
	if got, want := p.Cost(usage), decimal.RequireFromString("0.55"); !got.Equal(want) {
		t.Errorf("Cost() = %s, want %s", got, want)
	}

	if got := p.Cost(nil); !got.IsZero() {
		t.Errorf("Cost(nil) = %s, want 0", got)
	}
}
