package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/etnz/carteira/api"
	"github.com/etnz/carteira/renderer"
)

// declarations lists the portfolio tools exposed to the model. Each one maps
// to a read-only backend endpoint; the assistant never mutates the portfolio.
func declarations() []*genai.FunctionDeclaration {
	return []*genai.FunctionDeclaration{
		{
			Name: "Dashboard",
			Description: `Dashboard returns the current state of the portfolio: total heritage,
invested amount, overall profitability, the allocation tree and every asset
grouped by category, as markdown tables.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "Markdown tables with the portfolio summary, allocation and assets.",
			},
		},
		{
			Name: "Evolution",
			Description: `Evolution returns the monthly history of the portfolio: invested
amount and total value per month, plus the return over the period. The
optional filters narrow the series down to a category, asset type or ticker.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"category": {
						Type:        genai.TypeString,
						Description: "Optional category filter (brazil, usa, crypto).",
					},
					"assetType": {
						Type:        genai.TypeString,
						Description: "Optional asset type filter (STOCK, ETF, CRYPTO, FIXED_INCOME).",
					},
					"ticker": {
						Type:        genai.TypeString,
						Description: "Optional ticker filter (e.g. BTC, PETR4).",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of the monthly evolution.",
			},
		},
		{
			Name: "Invested",
			Description: `Invested breaks down the invested amount per asset, as a markdown
table. Useful to answer where the user's money actually is.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of invested value per asset.",
			},
		},
	}
}

// call dispatches a model function call to the backend.
func (a *Advisor) call(ctx context.Context, fc *genai.FunctionCall) *genai.FunctionResponse {
	fresp := &genai.FunctionResponse{
		ID:   fc.ID,
		Name: fc.Name,
	}

	output, err := a.dispatch(ctx, fc)
	if err != nil {
		fresp.Response = map[string]any{"error": err.Error()}
		return fresp
	}
	fresp.Response = map[string]any{"output": output}
	return fresp
}

func (a *Advisor) dispatch(ctx context.Context, fc *genai.FunctionCall) (string, error) {
	switch fc.Name {
	case "Dashboard":
		dash, err := a.client.Dashboard(ctx)
		if err != nil {
			return "", err
		}
		return renderer.SummaryMarkdown(dash.Summary) + "\n" + renderer.AssetsMarkdown(dash.Assets), nil

	case "Evolution":
		points, err := a.client.Evolution(ctx, evolutionFilter(fc.Args))
		if err != nil {
			return "", err
		}
		return renderer.EvolutionMarkdown("Evolução", points), nil

	case "Invested":
		details, err := a.client.InvestedDetails(ctx)
		if err != nil {
			return "", err
		}
		return renderer.InvestedMarkdown(details), nil
	}
	return "", fmt.Errorf("unknown tool %q", fc.Name)
}

func evolutionFilter(args map[string]any) api.EvolutionFilter {
	str := func(key string) string {
		s, _ := args[key].(string)
		return s
	}
	return api.EvolutionFilter{
		Category:  str("category"),
		AssetType: str("assetType"),
		Ticker:    str("ticker"),
	}
}
