package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/etnz/carteira"
)

// txFlags are the fields shared by buy and sell.
type txFlags struct {
	ticker   string
	category string
	quantity float64
	price    float64
	date     string
	costs    float64
}

func (c *txFlags) set(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "ticker (e.g. BTC, PETR4, IVVB11, AAPL, SPY)")
	f.StringVar(&c.category, "c", "CRYPTO", "asset category: CRYPTO, STOCK_B3, ETF_B3, STOCK_US, ETF_US")
	f.Float64Var(&c.quantity, "q", 0, "quantity")
	f.Float64Var(&c.price, "p", 0, "price per unit")
	f.StringVar(&c.date, "d", carteira.Today().String(), "transaction date (YYYY-MM-DD)")
	f.Float64Var(&c.costs, "costs", 0, "other costs, e.g. brokerage fees (optional)")
}

// request validates the flags and builds the backend payload.
func (c *txFlags) request(txType string) (carteira.TransactionRequest, error) {
	on, err := carteira.ParseDate(c.date)
	if err != nil {
		return carteira.TransactionRequest{}, err
	}

	// "STOCK_B3" style categories split into asset type and market.
	assetType, market, _ := strings.Cut(c.category, "_")

	req := carteira.TransactionRequest{
		Ticker:          strings.ToUpper(c.ticker),
		AssetType:       assetType,
		Market:          market,
		TransactionType: txType,
		Quantity:        c.quantity,
		PricePerUnit:    c.price,
		TransactionDate: on,
	}
	if c.costs > 0 {
		req.OtherCosts = &c.costs
	}
	return req, req.Validate()
}

func (c *txFlags) execute(ctx context.Context, txType string) subcommands.ExitStatus {
	// validation happens before any network call
	req, err := c.request(txType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	client, err := newClient()
	if err != nil {
		return reportErr(err)
	}
	if err := client.AddTransaction(ctx, req); err != nil {
		return reportErr(err)
	}
	fmt.Printf("Transação %s de %s registrada.\n", strings.ToLower(txType), req.Ticker)
	return subcommands.ExitSuccess
}

type buyCmd struct{ txFlags }

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a buy transaction" }
func (*buyCmd) Usage() string {
	return `mc buy -t <ticker> -q <quantity> -p <price> [-c <category>] [-d <date>] [-costs <fees>]

  Records a buy. The backend recomputes the portfolio afterwards.

Usage Examples:
$ mc buy -t BTC -q 0.05 -p 350000
$ mc buy -t PETR4 -c STOCK_B3 -q 100 -p 37.52 -d 2024-05-10
`
}
func (c *buyCmd) SetFlags(f *flag.FlagSet) { c.set(f) }
func (c *buyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.execute(ctx, "BUY")
}

type sellCmd struct{ txFlags }

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sell transaction" }
func (*sellCmd) Usage() string {
	return `mc sell -t <ticker> -q <quantity> -p <price> [-c <category>] [-d <date>] [-costs <fees>]

  Records a sell.
`
}
func (c *sellCmd) SetFlags(f *flag.FlagSet) { c.set(f) }
func (c *sellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.execute(ctx, "SELL")
}
