package agent

import (
	"context"
	"time"

	"google.golang.org/genai"

	"github.com/jmrios/cartera"
	"github.com/jmrios/cartera/renderer"
)

const model = "gemini-2.5-flash"

// NewAnalyst creates the portfolio analyst expert. Its tools answer from the
// already-loaded portfolio, rate table, usage ledger, and budget policy; the
// model never touches raw data directly.
func NewAnalyst(p cartera.Portfolio, rates cartera.RateTable, ledger *cartera.UsageLedger, policy cartera.BudgetPolicy) *Expert {
	lib := analystTools(p, rates, ledger, policy)

	return &Expert{
		Name: "Analyst",
		Description: `The Analyst knows the user's investment portfolio and the
		assistant's own spending budget. Ask it for valuations, allocation
		breakdowns, and budget status.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a financial analyst for a personal investment portfolio held
			on Colombian platforms. All aggregate figures are in Colombian pesos
			(COP); the assistant's own API budget is tracked in US dollars.

			Use the available tools to answer; never invent figures. When the
			user asks about concentration or diversification, use the
			allocation tool with the relevant grouping. Answer in the language
			the user writes in.
		`}}},
		},
		Library: NewLibrary(lib),
	}
}

func analystTools(p cartera.Portfolio, rates cartera.RateTable, ledger *cartera.UsageLedger, policy cartera.BudgetPolicy) []Function {
	output := func(id, name, text string) *genai.FunctionResponse {
		return &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{"output": text}}
	}
	fail := func(id, name string, err error) *genai.FunctionResponse {
		return &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{"error": err.Error()}}
	}

	summary := &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "portfolio_summary",
			Description: "List every position and the total portfolio value in COP.",
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			total, err := p.TotalValue(rates)
			if err != nil {
				return fail(id, "portfolio_summary", err)
			}
			return output(id, "portfolio_summary", renderer.SummaryMarkdown(cartera.Today(), p, total))
		},
	}

	allocation := &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "allocation",
			Description: "Percentage allocation of the portfolio value, grouped by platform, currency, or asset type.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"by": {
						Type:        genai.TypeString,
						Description: "Grouping key: platform, currency, or type.",
						Enum:        []string{"platform", "currency", "type"},
					},
				},
				Required: []string{"by"},
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			by, _ := args["by"].(string)
			var key func(cartera.Position) string
			switch by {
			case "currency":
				key = cartera.Position.Currency
			case "type":
				key = cartera.Position.AssetType
			default:
				by = "platform"
				key = cartera.Position.Platform
			}
			alloc, err := p.AllocationBy(key, rates)
			if err != nil {
				return fail(id, "allocation", err)
			}
			return output(id, "allocation", renderer.AllocationMarkdown(by, alloc))
		},
	}

	budget := &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "budget_status",
			Description: "Current assistant spending against the total and daily budget limits, with the alert level.",
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			status := policy.Status(ledger, cartera.Today())
			return output(id, "budget_status", renderer.BudgetMarkdown(status))
		},
	}

	history := &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "usage_history",
			Description: "Assistant API calls and their cost over the last N days.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"days": {
						Type:        genai.TypeInteger,
						Description: "How many days back to report. Defaults to 7.",
					},
				},
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			days := 7
			if v, ok := args["days"].(float64); ok && v > 0 {
				days = int(v)
			}
			since := time.Now().AddDate(0, 0, -days)
			return output(id, "usage_history", renderer.UsageMarkdown(ledger.History(since)))
		},
	}

	return []Function{summary, allocation, budget, history}
}
