package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/vtorres/investfolio/api"
)

type analyzeCmd struct {
	language string
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "generate an AI narrative analysis of the portfolio" }
func (*analyzeCmd) Usage() string {
	return `ifo analyze [-lang <language>]

  Asks the backend to generate a narrative analysis of the current
  portfolio and renders it on the terminal.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.language, "lang", "pt", "Language of the generated analysis (e.g. pt, en)")
}

func (c *analyzeCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, client, err := openProtected()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Fprintln(os.Stderr, "Generating analysis...")
	narrative, err := client.GenerateAnalysis(ctx, c.language)
	if errors.Is(err, api.ErrQuota) {
		fmt.Fprintln(os.Stderr, "Analysis quota exceeded. Try again later.")
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(narrative)
	return subcommands.ExitSuccess
}
