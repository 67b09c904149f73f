package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/PaesslerAG/jsonpath"

	"github.com/etnz/carteira"
)

// Price looks up the current quote for a ticker. The payload is shaped by
// whichever market-data provider the backend proxies, so the fields are
// plucked with jsonpath instead of a fixed struct.
func (c *Client) Price(ctx context.Context, ticker string) (carteira.Quote, error) {
	var jobj any
	if err := c.getJSON(ctx, "/api/market-data/price/"+url.PathEscape(ticker), nil, &jobj); err != nil {
		return carteira.Quote{}, err
	}

	price, err := pluckNumber(jobj, "$.price")
	if err != nil {
		return carteira.Quote{}, fmt.Errorf("quote for %q: %w", ticker, err)
	}

	quote := carteira.Quote{Ticker: ticker, Price: price, Currency: carteira.DefaultCurrency}
	if cur, err := pluckString(jobj, "$.currency"); err == nil && cur != "" {
		quote.Currency = cur
	}
	if tk, err := pluckString(jobj, "$.ticker"); err == nil && tk != "" {
		quote.Ticker = tk
	}
	return quote, nil
}

// pluckNumber reads a numeric value at path, tolerating providers that quote
// numbers as strings.
func pluckNumber(jobj any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("missing %q: %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of 1 answer or a
	// single answer; keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	switch v := jval.(type) {
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("%q is not a number at %q", v, path)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("unexpected %T at %q", jval, path)
	}
}

func pluckString(jobj any, path string) (string, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", err
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("unexpected %T at %q", jval, path)
	}
	return s, nil
}
