// Package cmd implements the CLI application to manage a portfolio and its
// assistant budget.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/jmrios/cartera"
	"github.com/jmrios/cartera/sheets"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&summaryCmd{}, "portfolio")
	c.Register(&allocationCmd{}, "portfolio")
	c.Register(&positionsCmd{}, "portfolio")
	c.Register(&rateCmd{}, "portfolio")

	c.Register(&budgetCmd{}, "budget")
	c.Register(&usageCmd{}, "budget")

	c.Register(&assistCmd{}, "assistant")

	c.Register(&loginCmd{}, "setup")
	c.Register(&topicCmd{}, "setup")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var usageFile = flag.String("usage-file", "usage.jsonl", "Path to the usage ledger file (JSONL format)")
var sheetFlag = flag.String("sheet-id", "", "Google Sheet id holding the positions. Defaults to the CARTERA_SHEET_ID environment variable.")
var tokenFile = flag.String("token-file", "token.json", "Path to the Google OAuth token file")

// sheetID resolves the sheet id from the flag or the environment.
func sheetID() string {
	if *sheetFlag != "" {
		return *sheetFlag
	}
	return os.Getenv("CARTERA_SHEET_ID")
}

// OpenLedger loads the usage ledger from the app usage file.
func OpenLedger() (*cartera.UsageLedger, error) {
	return cartera.OpenUsageLedger(*usageFile)
}

// Budget limits default to a deliberately tight personal allowance.
const (
	defaultTotalBudget = "5.0"
	defaultDailyBudget = "0.25"
)

// LoadPolicy builds the budget policy from the environment.
func LoadPolicy() (cartera.BudgetPolicy, error) {
	total, err := budgetEnv("CARTERA_TOTAL_BUDGET", defaultTotalBudget)
	if err != nil {
		return cartera.BudgetPolicy{}, err
	}
	day, err := budgetEnv("CARTERA_DAILY_BUDGET", defaultDailyBudget)
	if err != nil {
		return cartera.BudgetPolicy{}, err
	}
	return cartera.NewBudgetPolicy(total, day)
}

func budgetEnv(name, fallback string) (decimal.Decimal, error) {
	s := os.Getenv(name)
	if s == "" {
		s = fallback
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return d, nil
}

// LoadPortfolio reads the current positions from the configured sheet.
func LoadPortfolio(ctx context.Context) (cartera.Portfolio, error) {
	client, err := sheets.NewClient(ctx, sheetID(), *tokenFile)
	if err != nil {
		return cartera.Portfolio{}, err
	}
	return client.ReadPositions(ctx)
}

// fail prints the error and returns the failure status, the common exit of
// every subcommand.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, err)
	return subcommands.ExitFailure
}
