package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export all transactions as CSV" }
func (*exportCmd) Usage() string {
	return `mc export [-o <file.csv>]

  Downloads the full transaction history as CSV. Without -o the CSV is
  written to stdout, so it pipes cleanly.

Usage Examples:
$ mc export -o backup.csv
$ mc export | head
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "output file (default: stdout)")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := newClient()
	if err != nil {
		return reportErr(err)
	}

	out := os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		out = file
	}

	if err := client.ExportTransactions(ctx, out); err != nil {
		return reportErr(err)
	}
	if c.output != "" {
		fmt.Fprintf(os.Stderr, "Transações exportadas para %s.\n", c.output)
	}
	return subcommands.ExitSuccess
}
