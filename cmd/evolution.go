package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/carteira/api"
	"github.com/etnz/carteira/renderer"
)

type evolutionCmd struct {
	mwr      bool
	twr      bool
	category string
	astype   string
	ticker   string
}

func (*evolutionCmd) Name() string     { return "evolution" }
func (*evolutionCmd) Synopsis() string { return "display the net-worth evolution series" }
func (*evolutionCmd) Usage() string {
	return `mc evolution [-mwr | -twr] [-category <c>] [-type <t>] [-ticker <t>]

  Displays the monthly net-worth series with the derived capital gain and the
  trailing-period return. Filters are applied server-side: each filter change
  is a new request, never a local recomputation.
`
}

func (c *evolutionCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.mwr, "mwr", false, "money-weighted return series")
	f.BoolVar(&c.twr, "twr", false, "time-weighted return series")
	f.StringVar(&c.category, "category", "", "filter by category")
	f.StringVar(&c.astype, "type", "", "filter by asset type")
	f.StringVar(&c.ticker, "ticker", "", "filter by ticker")
}

func (c *evolutionCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.mwr && c.twr {
		fmt.Fprintln(os.Stderr, "-mwr and -twr cannot be used together")
		return subcommands.ExitUsageError
	}

	client, err := newClient()
	if err != nil {
		return reportErr(err)
	}

	filter := api.EvolutionFilter{Category: c.category, AssetType: c.astype, Ticker: c.ticker}

	title := "Evolução do Patrimônio"
	fetch := client.Evolution
	switch {
	case c.mwr:
		title = "Evolução do Patrimônio (MWR)"
		fetch = client.EvolutionMWR
	case c.twr:
		title = "Evolução do Patrimônio (TWR)"
		fetch = client.EvolutionTWR
	}

	points, err := fetch(ctx, filter)
	if err != nil {
		return reportErr(err)
	}
	printMarkdown(renderer.EvolutionMarkdown(title, points))
	return subcommands.ExitSuccess
}
