package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type deleteCmd struct {
	assetType string
	yes       bool
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete an asset and all its transactions" }
func (*deleteCmd) Usage() string {
	return `mc delete [-type <assetType>] [-y] <ticker-or-name>

  Deletes an asset from the portfolio, removing its whole transaction
  history. Fixed-income positions are identified by name; pass the name
  quoted.

Usage Examples:
$ mc delete BTC
$ mc delete -type FIXED_INCOME "CDB Banco X"
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.assetType, "type", "", "asset type hint (e.g. CRYPTO, STOCK, FIXED_INCOME)")
	f.BoolVar(&c.yes, "y", false, "skip the confirmation prompt")
}

func (c *deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one ticker or name is required")
		return subcommands.ExitUsageError
	}
	identifier := f.Arg(0)

	if !c.yes && !confirm(fmt.Sprintf("Remover %q e todo o seu histórico? [y/N] ", identifier)) {
		fmt.Println("Cancelado.")
		return subcommands.ExitSuccess
	}

	client, err := newClient()
	if err != nil {
		return reportErr(err)
	}
	if err := client.DeleteAsset(ctx, identifier, c.assetType); err != nil {
		return reportErr(err)
	}
	fmt.Printf("%s removido.\n", identifier)
	return subcommands.ExitSuccess
}

// confirm reads a single line from stdin and treats y/yes (any case) as assent.
func confirm(prompt string) bool {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "s", "sim":
		return true
	}
	return false
}
