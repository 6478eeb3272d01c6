package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/vtorres/investfolio/api"
	"github.com/vtorres/investfolio/renderer"
)

// holdingCmd holds the flags for the 'holding' subcommand.
type holdingCmd struct {
	currency string
}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "display the portfolio aggregates" }
func (*holdingCmd) Usage() string {
	return `ifo holding [-c <currency>]

  Displays the backend-computed holdings: quantity, average price and value
  per asset, with the total equity.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "BRL", "Display currency for position values")
}

func (c *holdingCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, client, err := openProtected()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	holdings, err := api.NewPortfolioView(client).Holdings(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Holdings(holdings, c.currency))
	return subcommands.ExitSuccess
}
