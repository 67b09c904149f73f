package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/etnz/carteira/renderer"
)

type investedCmd struct{}

func (*investedCmd) Name() string     { return "invested" }
func (*investedCmd) Synopsis() string { return "display the invested value per asset" }
func (*investedCmd) Usage() string {
	return `mc invested

  Displays how much was invested into each asset.
`
}

func (c *investedCmd) SetFlags(f *flag.FlagSet) {}

func (c *investedCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := newClient()
	if err != nil {
		return reportErr(err)
	}
	details, err := client.InvestedDetails(ctx)
	if err != nil {
		return reportErr(err)
	}
	printMarkdown(renderer.InvestedMarkdown(details))
	return subcommands.ExitSuccess
}
