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
	"github.com/vtorres/investfolio/cmd"
)

func main() {
	// A .env next to the working directory can set INVESTFOLIO_API_URL
	// and INVESTFOLIO_SESSION. Absence is not an error.
	_ = godotenv.Load()

	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion answers shell completion requests and returns otherwise.
func completion() {
	sub := func() *complete.Command { return &complete.Command{} }
	ifo := &complete.Command{
		Sub: map[string]*complete.Command{
			"login": {Flags: map[string]complete.Predictor{
				"u":       predict.Something,
				"p":       predict.Nothing,
				"google":  predict.Nothing,
				"timeout": predict.Something,
			}},
			"logout": sub(),
			"signup": sub(),
			"buy":    tradeCompletion(),
			"sell":   tradeCompletion(),
			"holding": {Flags: map[string]complete.Predictor{
				"c": predict.Set{"BRL", "USD", "EUR"},
			}},
			"analyze": {Flags: map[string]complete.Predictor{
				"lang": predict.Set{"pt", "en"},
			}},
			"topic": sub(),
		},
		Flags: map[string]complete.Predictor{
			"api-url":      predict.Something,
			"session-file": predict.Files("*"),
		},
	}
	ifo.Complete("ifo")
}

func tradeCompletion() *complete.Command {
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"t": predict.Something,
			"c": predict.Set{"BR_STOCKS", "FIIS", "US_STOCKS", "CRYPTO", "FIXED_INCOME"},
			"q": predict.Something,
			"p": predict.Something,
			"d": predict.Something,
		},
	}
}
