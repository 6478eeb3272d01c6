package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	investfolio "github.com/vtorres/investfolio"
	"github.com/vtorres/investfolio/api"
	"github.com/vtorres/investfolio/renderer"
)

// submitTrade runs the two-step recording workflow for a filled form and
// reports the outcome to the user. Field-level validation happens before any
// network call; the asset-exists dead-end gets its own wording.
func submitTrade(ctx context.Context, form investfolio.TradeForm) subcommands.ExitStatus {
	trade, err := form.Validate()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Invalid trade:")
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	_, client, err := openProtected()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	view := api.NewPortfolioView(client)
	workflow := investfolio.NewWorkflow(client, client, view.Invalidate)
	if err := workflow.Run(ctx, form); err != nil {
		if errors.Is(err, investfolio.ErrAssetExists) {
			fmt.Fprintf(os.Stderr, "Asset %s already exists on the backend, which cannot return its identifier on conflict. The trade was not recorded.\n", trade.Ticker)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Receipt(trade))
	return subcommands.ExitSuccess
}

// tradeFlags are the common flags of the buy and sell commands. Quantity and
// price stay text until validation.
type tradeFlags struct {
	ticker   string
	category string
	date     string
	quantity string
	price    string
}

func (c *tradeFlags) set(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Asset ticker")
	f.StringVar(&c.category, "c", "", "Asset category (Ações BR, FIIs, Stocks, Cripto, Renda Fixa; anything else lands in Outros)")
	f.StringVar(&c.date, "d", investfolio.Today().String(), "Trade date (YYYY-MM-DD)")
	f.StringVar(&c.quantity, "q", "", "Number of shares or units")
	f.StringVar(&c.price, "p", "", "Price per unit")
}

func (c *tradeFlags) form(typ investfolio.TradeType) investfolio.TradeForm {
	return investfolio.TradeForm{
		Ticker:   c.ticker,
		Category: c.category,
		Type:     string(typ),
		Date:     c.date,
		Quantity: c.quantity,
		Price:    c.price,
	}
}

// --- Buy Command ---

type buyCmd struct {
	tradeFlags
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a purchase on the backend ledger" }
func (*buyCmd) Usage() string {
	return `ifo buy -t <ticker> -c <category> -q <quantity> -p <price> [-d <date>]

  Records a purchase. The asset is created on the backend first when it does
  not exist yet, then the trade is written to the ledger.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) { c.set(f) }

func (c *buyCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return submitTrade(ctx, c.form(investfolio.Buy))
}

// --- Sell Command ---

type sellCmd struct {
	tradeFlags
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale on the backend ledger" }
func (*sellCmd) Usage() string {
	return `ifo sell -t <ticker> -c <category> -q <quantity> -p <price> [-d <date>]

  Records a sale of an asset.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) { c.set(f) }

func (c *sellCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return submitTrade(ctx, c.form(investfolio.Sell))
}
