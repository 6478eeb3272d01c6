package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type signupCmd struct {
	fullName string
	email    string
	password string
}

func (*signupCmd) Name() string     { return "signup" }
func (*signupCmd) Synopsis() string { return "create a new account on the backend" }
func (*signupCmd) Usage() string {
	return `ifo signup -n <full name> -e <email> -p <password>

  Creates a new account. Log in afterwards with 'ifo login'.
`
}

func (c *signupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fullName, "n", "", "Full name")
	f.StringVar(&c.email, "e", "", "Account email")
	f.StringVar(&c.password, "p", "", "Account password")
}

func (c *signupCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.fullName == "" || c.email == "" || c.password == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	store, err := OpenSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	client, err := NewClient(store)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := client.Signup(ctx, c.fullName, c.email, c.password); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Account created for %s. Log in with 'ifo login -u %s -p <password>'.\n", c.email, c.email)
	return subcommands.ExitSuccess
}
