package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/google/subcommands"

	"github.com/jmrios/cartera"
	"github.com/jmrios/cartera/renderer"
)

type positionsCmd struct {
	platform string
	currency string
	offline  bool
}

func (*positionsCmd) Name() string     { return "positions" }
func (*positionsCmd) Synopsis() string { return "list positions, optionally filtered" }
func (*positionsCmd) Usage() string {
	return `cartera positions [-platform <name>] [-currency COP|USD]

  Lists positions from the sheet. Filters combine: -platform keeps one
  venue (case-insensitive), -currency keeps one denomination.
`
}

func (c *positionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.platform, "platform", "", "Keep only positions held on this platform.")
	f.StringVar(&c.currency, "currency", "", "Keep only positions denominated in this currency.")
	f.BoolVar(&c.offline, "offline", false, "Skip the rate fetch and use the built-in USD→COP rate.")
}

func (c *positionsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := LoadPortfolio(ctx)
	if err != nil {
		return fail(err)
	}

	if c.platform != "" {
		p = p.FilterByPlatform(c.platform)
	}
	if c.currency != "" {
		code := strings.ToUpper(c.currency)
		if err := cartera.ValidateCurrency(code); err != nil {
			return fail(err)
		}
		p = cartera.NewPortfolio(p.PositionsInCurrency(code)...)
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
