package cmd

import (
	"context"
	"flag"
	"time"

	"github.com/google/subcommands"

	"github.com/jmrios/cartera"
	"github.com/jmrios/cartera/renderer"
)

type usageCmd struct {
	days  int
	since string
}

func (*usageCmd) Name() string     { return "usage" }
func (*usageCmd) Synopsis() string { return "show recent assistant usage" }
func (*usageCmd) Usage() string {
	return `cartera usage [-days <n>] [-since <yyyy-mm-dd>]

  Prints usage records from the ledger, oldest first. By default the
  last 7 days; -since overrides -days.
`
}

func (c *usageCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", 7, "Show records from the last n days.")
	f.StringVar(&c.since, "since", "", "Show records on or after this date.")
}

func (c *usageCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := OpenLedger()
	if err != nil {
		return fail(err)
	}

	var day cartera.Date
	if c.since != "" {
		day, err = cartera.ParseDate(c.since)
		if err != nil {
			return fail(err)
		}
	} else {
		day = cartera.Today().Add(-c.days)
	}
	since := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.Local)

	printMarkdown(renderer.UsageMarkdown(ledger.History(since)))
	return subcommands.ExitSuccess
}
