package agent

import (
	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

// Pricing is the USD cost per million tokens of a model.
type Pricing struct {
	InputPerM  decimal.Decimal
	OutputPerM decimal.Decimal
}

// DefaultPricing is the published gemini-2.5-flash rate.
var DefaultPricing = Pricing{
	InputPerM:  decimal.RequireFromString("0.30"),
	OutputPerM: decimal.RequireFromString("2.50"),
}

var million = decimal.NewFromInt(1_000_000)

// Cost computes the exact USD cost of one model response.
func (p Pricing) Cost(usage *genai.GenerateContentResponseUsageMetadata) decimal.Decimal {
	if usage == nil {
		return decimal.Zero
	}
	in := decimal.NewFromInt(int64(usage.PromptTokenCount))
	out := decimal.NewFromInt(int64(usage.CandidatesTokenCount))
	return in.Mul(p.InputPerM).Div(million).Add(out.Mul(p.OutputPerM).Div(million))
}
