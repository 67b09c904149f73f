package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/etnz/carteira"
	"github.com/etnz/carteira/renderer"
)

type assetsCmd struct {
	category string
}

func (*assetsCmd) Name() string     { return "assets" }
func (*assetsCmd) Synopsis() string { return "list the positions grouped by category" }
func (*assetsCmd) Usage() string {
	return `mc assets [-c <category>]

  Lists every position the way the dashboard groups them: one section per
  category (brazil, usa, crypto), one table per asset type. Fixed income gets
  the simplified columns.
`
}

func (c *assetsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", "", "show a single category (e.g. brazil, usa, crypto)")
}

func (c *assetsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := newClient()
	if err != nil {
		return reportErr(err)
	}
	dashboard, err := client.Dashboard(ctx)
	if err != nil {
		return reportErr(err)
	}

	assets := dashboard.Assets
	if c.category != "" {
		assets = map[string][]carteira.AssetGroup{}
		for key, groups := range dashboard.Assets {
			if carteira.Translate(key) == carteira.Translate(c.category) {
				assets[key] = groups
			}
		}
	}

	printMarkdown(renderer.AssetsMarkdown(assets))
	return subcommands.ExitSuccess
}
