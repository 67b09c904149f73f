package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/etnz/carteira/renderer"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio headline figures" }
func (*summaryCmd) Usage() string {
	return `mc summary

  Displays total heritage, total invested, and profitability as reported by
  the backend.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := newClient()
	if err != nil {
		return reportErr(err)
	}
	dashboard, err := client.Dashboard(ctx)
	if err != nil {
		return reportErr(err)
	}
	printMarkdown(renderer.SummaryMarkdown(dashboard.Summary))
	return subcommands.ExitSuccess
}
