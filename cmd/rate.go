package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/jmrios/cartera"
)

type rateCmd struct{}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "show the USD→COP conversion rate" }
func (*rateCmd) Usage() string {
	return `cartera rate

  Fetches today's USD→COP rate. Falls back to the built-in rate when
  the provider is unreachable.
`
}

func (c *rateCmd) SetFlags(f *flag.FlagSet) {}

func (c *rateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rates := cartera.FetchRates()
	rate := rates[cartera.Pair{From: cartera.USD, To: cartera.COP}]
	fmt.Printf("1 USD = %s COP\n", rate.StringFixed(2))
	return subcommands.ExitSuccess
}
