package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type logoutCmd struct{}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "discard the stored session credential" }
func (*logoutCmd) Usage() string {
	return `ifo logout

  Removes the stored session credential. Subsequent commands require a new
  login.
`
}

func (*logoutCmd) SetFlags(_ *flag.FlagSet) {}

func (c *logoutCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if !store.Authenticated() {
		fmt.Println("Not logged in.")
		return subcommands.ExitSuccess
	}
	if err := store.Clear(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("Logged out.")
	return subcommands.ExitSuccess
}
