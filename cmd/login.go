package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/vtorres/investfolio/api"
	"github.com/vtorres/investfolio/session"
)

type loginCmd struct {
	username string
	password string
	google   bool
	timeout  time.Duration
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "authenticate against the backend and store the session" }
func (*loginCmd) Usage() string {
	return `ifo login -u <email> -p <password>
ifo login -google

  Authenticates against the invest-ai backend. With -u/-p the credentials
  are exchanged directly for a session token. With -google a local callback
  server is started and the Google login URL is printed; completing the
  login in a browser hands the issued token back to this command.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Account email")
	f.StringVar(&c.password, "p", "", "Account password")
	f.BoolVar(&c.google, "google", false, "Log in with Google instead of a password")
	f.DurationVar(&c.timeout, "timeout", 3*time.Minute, "How long to wait for the Google login callback")
}

func (c *loginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := session.NewGate(store).RequireAnonymous(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	client, err := NewClient(store)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.google {
		return c.googleLogin(ctx, store, client)
	}

	if c.username == "" || c.password == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	token, err := client.Login(ctx, c.username, c.password)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.Set(token); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Logged in as %s.\n", c.username)
	return subcommands.ExitSuccess
}

func (c *loginCmd) googleLogin(ctx context.Context, store *session.Store, client *api.Client) subcommands.ExitStatus {
	srv, err := session.NewCallbackServer(store)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Println("Open this URL in your browser to log in with Google:")
	fmt.Println()
	fmt.Println("  " + client.GoogleLoginURL(srv.URL()))
	fmt.Println()
	fmt.Println("Waiting for the login to complete...")

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	if _, err := srv.Wait(ctx); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			fmt.Fprintln(os.Stderr, "Timed out waiting for the login callback.")
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return subcommands.ExitFailure
	}
	fmt.Println("Logged in with Google.")
	return subcommands.ExitSuccess
}
