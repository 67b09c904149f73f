package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/etnz/carteira/renderer"
)

type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search tickers and asset names" }
func (*searchCmd) Usage() string {
	return `mc search <term>

  Asks the backend's market-data autocomplete for matches.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {}

func (c *searchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a search term is required.")
		return subcommands.ExitUsageError
	}
	term := strings.Join(f.Args(), " ")

	client, err := newClient()
	if err != nil {
		return reportErr(err)
	}
	results, err := client.Search(ctx, term)
	if err != nil {
		return reportErr(err)
	}
	printMarkdown(renderer.SearchMarkdown(term, results))
	return subcommands.ExitSuccess
}

type priceCmd struct{}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "look up the current quote of a ticker" }
func (*priceCmd) Usage() string {
	return `mc price <ticker>

  Looks up the current price of a single ticker.
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {}

func (c *priceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one ticker is required.")
		return subcommands.ExitUsageError
	}

	client, err := newClient()
	if err != nil {
		return reportErr(err)
	}
	quote, err := client.Price(ctx, f.Arg(0))
	if err != nil {
		return reportErr(err)
	}
	printMarkdown(renderer.QuoteMarkdown(quote))
	return subcommands.ExitSuccess
}
