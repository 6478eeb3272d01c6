// Package cmd implements the CLI application to operate an invest-ai
// account: session lifecycle, trade recording and portfolio views.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/vtorres/investfolio/api"
	"github.com/vtorres/investfolio/session"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&loginCmd{}, "session")
	c.Register(&logoutCmd{}, "session")
	c.Register(&signupCmd{}, "session")

	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")

	c.Register(&holdingCmd{}, "portfolio")
	c.Register(&analyzeCmd{}, "portfolio")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var apiURL = flag.String("api-url", defaultBaseURL(), "Base URL of the invest-ai backend")
var sessionFile = flag.String("session-file", "", "Path to the session credential file (defaults to the user config dir)")

func defaultBaseURL() string {
	if v := os.Getenv("INVESTFOLIO_API_URL"); v != "" {
		return v
	}
	return api.DefaultBaseURL
}

// OpenSession is the central function to open the credential store.
func OpenSession() (*session.Store, error) {
	path := *sessionFile
	if path == "" {
		path = session.DefaultPath()
	}
	return session.Open(path)
}

// NewClient builds the gateway client bound to the given store.
func NewClient(store *session.Store) (*api.Client, error) {
	return api.New(*apiURL, store)
}

// openProtected opens the store and builds a client for a protected
// command, turning unauthenticated invocations away toward login.
func openProtected() (*session.Store, *api.Client, error) {
	store, err := OpenSession()
	if err != nil {
		return nil, nil, err
	}
	if err := session.NewGate(store).Require(); err != nil {
		return nil, nil, err
	}
	client, err := NewClient(store)
	if err != nil {
		return nil, nil, err
	}
	return store, client, nil
}

// printMarkdown renders markdown on the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
