package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/jmrios/cartera"
	"github.com/jmrios/cartera/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	offline bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display all positions and the total value in COP" }
func (*summaryCmd) Usage() string {
	return `cartera summary [-offline]

  Reads the positions sheet, converts every position into COP using today's
  USD→COP rate, and displays the portfolio with its total value.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.offline, "offline", false, "Skip the rate fetch and use the built-in USD→COP rate.")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := LoadPortfolio(ctx)
	if err != nil {
		return fail(err)
	}

	var rates cartera.RateTable
	if !c.offline {
		rates = cartera.FetchRates()
	}

	total, err := p.TotalValue(rates)
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.SummaryMarkdown(cartera.Today(), p, total))
	return subcommands.ExitSuccess
}
