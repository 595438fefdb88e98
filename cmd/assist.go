package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/jmrios/cartera"
	"github.com/jmrios/cartera/agent"
)

type assistCmd struct {
	offline bool
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI analyst" }
func (*assistCmd) Usage() string {
	return `cartera assist [question...]

  Starts an interactive session with the AI analyst. Every answer's
  token usage is charged to the usage ledger; the session is refused
  when the budget is exhausted.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.offline, "offline", false, "Skip the rate fetch and use the built-in USD→COP rate.")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	policy, err := LoadPolicy()
	if err != nil {
		return fail(err)
	}
	ledger, err := OpenLedger()
	if err != nil {
		return fail(err)
	}
	if policy.Level(ledger, cartera.Today()) == cartera.LevelExceeded {
		fmt.Fprintln(os.Stderr, "budget exceeded, assistant unavailable. See 'cartera budget'.")
		return subcommands.ExitFailure
	}

	p, err := LoadPortfolio(ctx)
	if err != nil {
		return fail(err)
	}
	var rates cartera.RateTable
	if !c.offline {
		rates = cartera.FetchRates()
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	analyst := agent.NewAnalyst(p, rates, ledger, policy)
	analyst.OnUsage = func(usage *genai.GenerateContentResponseUsageMetadata) {
		rec := cartera.NewUsageRecord(agent.DefaultPricing.Cost(usage), map[string]string{
			"model":        analyst.ModelName,
			"inputTokens":  strconv.Itoa(int(usage.PromptTokenCount)),
			"outputTokens": strconv.Itoa(int(usage.CandidatesTokenCount)),
			"queryType":    "assist",
		})
		if err := ledger.Append(rec); err != nil {
			log.Printf("cannot record usage: %v", err)
		}
	}

	a := agent.New(os.Stdout, os.Stdin, analyst)
	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
