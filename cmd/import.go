package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	"github.com/etnz/carteira/renderer"
)

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "bulk-import transactions from a CSV file" }
func (*importCmd) Usage() string {
	return `mc import <file.csv>

  Uploads a CSV of transactions. The backend processes rows independently
  and reports how many succeeded. A partial import is not a failure: the
  rows that parsed are kept.

Usage Examples:
$ mc import extrato-corretora.csv
`
}
func (*importCmd) SetFlags(f *flag.FlagSet) {}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one CSV file is required")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)

	file, err := os.Open(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	client, err := newClient()
	if err != nil {
		return reportErr(err)
	}
	report, err := client.ImportTransactions(ctx, filepath.Base(name), file)
	if err != nil {
		return reportErr(err)
	}

	printMarkdown(renderer.ImportReportMarkdown(report))
	if report.SuccessCount == 0 && report.ErrorCount > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
