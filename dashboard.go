package carteira

import "fmt"

// Summary is the headline figures block of the dashboard payload.
type Summary struct {
	TotalHeritage float64 `json:"totalHeritage"`
	TotalInvested float64 `json:"totalInvested"`
	Profitability float64 `json:"profitability"`
}

// Asset is one leaf display record of a position. Fixed-income rows carry
// Name instead of Ticker and no price fields.
type Asset struct {
	Ticker              string  `json:"ticker,omitempty"`
	Name                string  `json:"name,omitempty"`
	TotalQuantity       float64 `json:"totalQuantity"`
	AveragePrice        float64 `json:"averagePrice"`
	CurrentPrice        float64 `json:"currentPrice"`
	CurrentValue        float64 `json:"currentValue"`
	Profitability       float64 `json:"profitability"`
	PortfolioPercentage float64 `json:"portfolioPercentage"`
}

// DisplayName returns the ticker, or the free-form name for fixed income.
func (a Asset) DisplayName() string {
	if a.Ticker != "" {
		return a.Ticker
	}
	return a.Name
}

// AssetGroup is one accordion section: an asset-type grouping inside a
// category tab, with its aggregate value.
type AssetGroup struct {
	CategoryName string  `json:"categoryName"`
	TotalValue   float64 `json:"totalValue"`
	Assets       []Asset `json:"assets"`
}

// IsFixedIncome reports whether the group renders with the simplified
// fixed-income columns.
func (g AssetGroup) IsFixedIncome() bool {
	return Translate(g.CategoryName) == "Renda Fixa"
}

// Dashboard is the full `/api/portfolio/dashboard` payload: summary cards,
// allocation tree, and the per-category asset lists.
type Dashboard struct {
	Summary     Summary                   `json:"summary"`
	Percentages map[string]AllocationNode `json:"percentages"`
	Assets      map[string][]AssetGroup   `json:"assets"`
}

// InvestedDetail is one row of the per-asset invested-value breakdown.
type InvestedDetail struct {
	Name          string  `json:"name"`
	InvestedValue float64 `json:"investedValue"`
}

// SearchResult is one autocomplete match from the market-data search.
type SearchResult struct {
	Ticker   string  `json:"ticker"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Market   string  `json:"market"`
	Currency string  `json:"currency"`
	Price    float64 `json:"price"`
}

// Quote is a current price lookup for a single ticker.
type Quote struct {
	Ticker   string
	Price    float64
	Currency string
}

// TransactionRequest is the `/api/transactions` payload for a buy or a sell.
type TransactionRequest struct {
	Ticker          string   `json:"ticker"`
	AssetType       string   `json:"assetType"`
	Market          string   `json:"market,omitempty"`
	TransactionType string   `json:"transactionType"` // "BUY" or "SELL"
	Quantity        float64  `json:"quantity"`
	PricePerUnit    float64  `json:"pricePerUnit"`
	TransactionDate Date     `json:"transactionDate"`
	OtherCosts      *float64 `json:"otherCosts"`
}

// Validate checks the required fields before any network call.
func (r TransactionRequest) Validate() error {
	switch {
	case r.Ticker == "":
		return fmt.Errorf("ticker is required")
	case r.TransactionType != "BUY" && r.TransactionType != "SELL":
		return fmt.Errorf("transaction type must be BUY or SELL, got %q", r.TransactionType)
	case r.Quantity <= 0:
		return fmt.Errorf("quantity must be positive")
	case r.PricePerUnit <= 0:
		return fmt.Errorf("price per unit must be positive")
	case r.TransactionDate.IsZero():
		return fmt.Errorf("transaction date is required")
	}
	return nil
}

// FixedIncomeRequest is the `/api/fixed-income` payload. ContractedRate is
// optional; nil means the backend infers it.
type FixedIncomeRequest struct {
	Name           string   `json:"name"`
	InvestedAmount float64  `json:"investedAmount"`
	InvestmentDate Date     `json:"investmentDate"`
	IsDailyLiquid  bool     `json:"isDailyLiquid"`
	MaturityDate   Date     `json:"maturityDate"`
	IndexType      string   `json:"indexType"` // CDI, IPCA, SELIC, PRE_FIXED
	ContractedRate *float64 `json:"contractedRate"`
}

// Validate checks the required fields before any network call.
func (r FixedIncomeRequest) Validate() error {
	switch {
	case r.Name == "":
		return fmt.Errorf("name is required")
	case r.InvestedAmount <= 0:
		return fmt.Errorf("invested amount must be positive")
	case r.InvestmentDate.IsZero():
		return fmt.Errorf("investment date is required")
	case r.MaturityDate.IsZero():
		return fmt.Errorf("maturity date is required")
	case r.MaturityDate.Before(r.InvestmentDate):
		return fmt.Errorf("maturity date precedes the investment date")
	}
	return nil
}

// ImportReport is the structured result of a bulk CSV import. A non-zero
// ErrorCount is partial success, not a hard failure.
type ImportReport struct {
	SuccessCount int      `json:"successCount"`
	ErrorCount   int      `json:"errorCount"`
	Errors       []string `json:"errors"`
}

// CappedErrors returns at most max error messages, appending a "+N more"
// marker when the list is truncated.
func (r ImportReport) CappedErrors(max int) []string {
	if len(r.Errors) <= max {
		return r.Errors
	}
	capped := append([]string(nil), r.Errors[:max]...)
	return append(capped, fmt.Sprintf("+%d more", len(r.Errors)-max))
}
