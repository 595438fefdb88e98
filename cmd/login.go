package cmd

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/jmrios/cartera/sheets"
)

type loginCmd struct{}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "authorize access to the positions sheet" }
func (*loginCmd) Usage() string {
	return `cartera login

  Runs the Google OAuth flow and saves the token to the token file.
  Requires GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET in the environment.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {}

func (c *loginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := sheets.Login(ctx, os.Stdout, os.Stdin, *tokenFile); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
