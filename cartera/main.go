// Command cartera tracks a personal investment portfolio held in a Google
// Sheet and keeps its AI assistant within a spending budget.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/jmrios/cartera/cmd"
)

func main() {
	// Secrets (API keys, sheet id) usually live in a local .env file.
	godotenv.Load()

	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion registers shell completion and exits when invoked by the shell.
func completion() {
	offline := map[string]complete.Predictor{"offline": predict.Nothing}
	c := &complete.Command{
		Flags: map[string]complete.Predictor{
			"usage-file": predict.Files("*.jsonl"),
			"sheet-id":   predict.Nothing,
			"token-file": predict.Files("*.json"),
		},
		Sub: map[string]*complete.Command{
			"summary":   {Flags: offline},
			"positions": {Flags: offline},
			"allocation": {Flags: map[string]complete.Predictor{
				"by":      predict.Set{"platform", "currency", "type"},
				"offline": predict.Nothing,
			}},
			"rate":   {},
			"budget": {},
			"usage": {Flags: map[string]complete.Predictor{
				"days":  predict.Something,
				"since": predict.Something,
			}},
			"assist": {Flags: offline},
			"login":  {},
			"topic":  {Args: predict.Set{"readme", "budget", "ledger", "sheets"}},
		},
	}
	c.Complete("cartera")
}
