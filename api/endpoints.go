package api

import (
	"context"
	"net/url"

	"github.com/etnz/carteira"
)

// Dashboard fetches the summary, the allocation tree, and the asset lists in
// one call.
func (c *Client) Dashboard(ctx context.Context) (*carteira.Dashboard, error) {
	var d carteira.Dashboard
	if err := c.getJSON(ctx, "/api/portfolio/dashboard", nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// EvolutionFilter narrows the evolution series server-side. A filter change
// is a new fetch, never a local recomputation.
type EvolutionFilter struct {
	Category  string
	AssetType string
	Ticker    string
}

func (f EvolutionFilter) query() url.Values {
	q := url.Values{}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.AssetType != "" {
		q.Set("assetType", f.AssetType)
	}
	if f.Ticker != "" {
		q.Set("ticker", f.Ticker)
	}
	return q
}

// evolutionPayload is the wire envelope of the evolution endpoints.
type evolutionPayload struct {
	Evolution []carteira.EvolutionPoint `json:"evolution"`
}

// Evolution fetches the chronological net-worth series.
func (c *Client) Evolution(ctx context.Context, f EvolutionFilter) ([]carteira.EvolutionPoint, error) {
	var payload evolutionPayload
	if err := c.getJSON(ctx, "/api/portfolio/evolution", f.query(), &payload); err != nil {
		return nil, err
	}
	return payload.Evolution, nil
}

// EvolutionMWR fetches the money-weighted variant of the series.
func (c *Client) EvolutionMWR(ctx context.Context, f EvolutionFilter) ([]carteira.EvolutionPoint, error) {
	var payload evolutionPayload
	if err := c.getJSON(ctx, "/api/portfolio/evolution/mwr", f.query(), &payload); err != nil {
		return nil, err
	}
	return payload.Evolution, nil
}

// EvolutionTWR fetches the time-weighted variant of the series.
func (c *Client) EvolutionTWR(ctx context.Context, f EvolutionFilter) ([]carteira.EvolutionPoint, error) {
	var payload evolutionPayload
	if err := c.getJSON(ctx, "/api/portfolio/evolution/twr", f.query(), &payload); err != nil {
		return nil, err
	}
	return payload.Evolution, nil
}

// Refresh triggers the asynchronous server-side quote refresh job. The call
// returns before the job finishes; callers poll the dashboard afterwards.
func (c *Client) Refresh(ctx context.Context) error {
	return c.postJSON(ctx, "/api/portfolio/refresh", nil, nil)
}

// InvestedDetails fetches the per-asset invested-value breakdown.
func (c *Client) InvestedDetails(ctx context.Context) ([]carteira.InvestedDetail, error) {
	var details []carteira.InvestedDetail
	if err := c.getJSON(ctx, "/api/portfolio/invested-details", nil, &details); err != nil {
		return nil, err
	}
	return details, nil
}

// TagCashEquivalent marks an asset as cash-equivalent in the user's
// preferences.
func (c *Client) TagCashEquivalent(ctx context.Context, identifier, assetType string) error {
	payload := struct {
		Identifier string `json:"identifier"`
		AssetType  string `json:"assetType"`
	}{identifier, assetType}
	return c.postJSON(ctx, "/api/portfolio/preferences/tag-asset", payload, nil)
}

// DeleteAsset removes every transaction of an asset.
func (c *Client) DeleteAsset(ctx context.Context, identifier, assetType string) error {
	q := url.Values{}
	if assetType != "" {
		q.Set("assetType", assetType)
	}
	return c.delete(ctx, "/api/portfolio/assets/"+url.PathEscape(identifier), q)
}

// AddTransaction records a buy or a sell. The request must already be valid.
func (c *Client) AddTransaction(ctx context.Context, tx carteira.TransactionRequest) error {
	return c.postJSON(ctx, "/api/transactions", tx, nil)
}

// AddFixedIncome records a fixed-income position.
func (c *Client) AddFixedIncome(ctx context.Context, fi carteira.FixedIncomeRequest) error {
	return c.postJSON(ctx, "/api/fixed-income", fi, nil)
}

// Search asks the backend for ticker/name autocomplete matches.
func (c *Client) Search(ctx context.Context, term string) ([]carteira.SearchResult, error) {
	var results []carteira.SearchResult
	if err := c.getJSON(ctx, "/api/market-data/search/"+url.PathEscape(term), nil, &results); err != nil {
		return nil, err
	}
	return results, nil
}
