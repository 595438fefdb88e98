package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/jmrios/cartera"
	"github.com/jmrios/cartera/renderer"
)

type budgetCmd struct{}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "report spending against the budget" }
func (*budgetCmd) Usage() string {
	return `cartera budget

  Reports total and daily assistant spending against the configured
  limits, with the current alert level.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {}

func (c *budgetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	policy, err := LoadPolicy()
	if err != nil {
		return fail(err)
	}
	ledger, err := OpenLedger()
	if err != nil {
		return fail(err)
	}

	status := policy.Status(ledger, cartera.Today())
	printMarkdown(renderer.BudgetMarkdown(status))
	return subcommands.ExitSuccess
}
