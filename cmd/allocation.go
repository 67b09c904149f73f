package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/google/subcommands"

	"github.com/etnz/carteira"
	"github.com/etnz/carteira/renderer"
)

type allocationCmd struct {
	path string
}

func (*allocationCmd) Name() string     { return "allocation" }
func (*allocationCmd) Synopsis() string { return "display the allocation breakdown" }
func (*allocationCmd) Usage() string {
	return `mc allocation [-path <key/key/...>]

  Displays one level of the allocation tree. -path drills into nested levels
  using the raw backend keys, e.g. -path brazil or -path brazil/ações.
  Use 'mc dash' for the interactive drill-down.
`
}

func (c *allocationCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.path, "path", "", "drill path of raw keys separated by /")
}

func (c *allocationCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := newClient()
	if err != nil {
		return reportErr(err)
	}
	dashboard, err := client.Dashboard(ctx)
	if err != nil {
		return reportErr(err)
	}

	view := carteira.NewAllocationView()
	if c.path != "" {
		for _, key := range strings.Split(c.path, "/") {
			view.Drill(dashboard.Percentages, key)
		}
	}

	printMarkdown(renderer.AllocationMarkdown(view, dashboard.Percentages))
	return subcommands.ExitSuccess
}
