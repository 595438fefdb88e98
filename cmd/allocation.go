package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/jmrios/cartera"
	"github.com/jmrios/cartera/renderer"
)

type allocationCmd struct {
	by      string
	offline bool
}

func (*allocationCmd) Name() string     { return "allocation" }
func (*allocationCmd) Synopsis() string { return "display the percentage allocation of the portfolio" }
func (*allocationCmd) Usage() string {
	return `cartera allocation [-by platform|currency|type]

  Groups the portfolio value by the chosen key and displays each group's
  share of the total, in percent.
`
}

func (c *allocationCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.by, "by", "platform", "Grouping key: platform, currency, or type.")
	f.BoolVar(&c.offline, "offline", false, "Skip the rate fetch and use the built-in USD→COP rate.")
}

func (c *allocationCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var key func(cartera.Position) string
	switch c.by {
	case "platform":
		key = cartera.Position.Platform
	case "currency":
		key = cartera.Position.Currency
	case "type":
		key = cartera.Position.AssetType
	default:
		return fail(fmt.Errorf("unknown grouping %q: want platform, currency, or type", c.by))
	}

	p, err := LoadPortfolio(ctx)
	if err != nil {
		return fail(err)
	}

	var rates cartera.RateTable
	if !c.offline {
		rates = cartera.FetchRates()
	}

	alloc, err := p.AllocationBy(key, rates)
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.AllocationMarkdown(c.by, alloc))
	return subcommands.ExitSuccess
}
