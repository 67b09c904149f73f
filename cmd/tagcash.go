package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type tagCashCmd struct {
	assetType string
}

func (*tagCashCmd) Name() string     { return "tag-cash" }
func (*tagCashCmd) Synopsis() string { return "toggle the cash-equivalent tag on an asset" }
func (*tagCashCmd) Usage() string {
	return `mc tag-cash [-type <assetType>] <ticker-or-name>

  Toggles the cash-equivalent marker on an asset. Cash equivalents are
  counted as reserve rather than invested capital in the dashboard.

Usage Examples:
$ mc tag-cash "Tesouro Selic"
`
}

func (c *tagCashCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.assetType, "type", "", "asset type hint (e.g. FIXED_INCOME)")
}

func (c *tagCashCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one ticker or name is required")
		return subcommands.ExitUsageError
	}
	identifier := f.Arg(0)

	client, err := newClient()
	if err != nil {
		return reportErr(err)
	}
	if err := client.TagCashEquivalent(ctx, identifier, c.assetType); err != nil {
		return reportErr(err)
	}
	fmt.Printf("Marcador de caixa alternado para %s.\n", identifier)
	return subcommands.ExitSuccess
}
