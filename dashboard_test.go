package carteira

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestDashboard_DecodePayload(t *testing.T) {
	payload := `{
		"summary": {"totalHeritage": 12500.50, "totalInvested": 10000, "profitability": 25.0},
		"percentages": {
			"brazil": {"percentage": 60, "children": {"ações": {"percentage": 100}}},
			"crypto": {"percentage": 40}
		},
		"assets": {
			"brazil": [
				{"categoryName": "ações", "totalValue": 7500.30, "assets": [
					{"ticker": "PETR4", "totalQuantity": 100, "averagePrice": 30,
					 "currentPrice": 37.5, "currentValue": 3750,
					 "profitability": 25, "portfolioPercentage": 30}
				]},
				{"categoryName": "renda fixa", "totalValue": 1000, "assets": [
					{"name": "CDB PicPay 105%", "currentValue": 1000,
					 "profitability": 5, "portfolioPercentage": 8}
				]}
			]
		}
	}`

	var d Dashboard
	if err := json.Unmarshal([]byte(payload), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if d.Summary.TotalHeritage != 12500.50 {
		t.Errorf("totalHeritage = %v", d.Summary.TotalHeritage)
	}
	if d.Percentages["brazil"].Children["ações"].Percentage != 100 {
		t.Errorf("nested allocation not decoded: %+v", d.Percentages)
	}
	if d.Percentages["crypto"].IsLeaf() != true {
		t.Error("crypto should decode as a leaf")
	}
	groups := d.Assets["brazil"]
	if len(groups) != 2 || groups[0].Assets[0].DisplayName() != "PETR4" {
		t.Fatalf("asset groups = %+v", groups)
	}
	if !groups[1].IsFixedIncome() || groups[0].IsFixedIncome() {
		t.Error("fixed-income group detection failed")
	}
	if groups[1].Assets[0].DisplayName() != "CDB PicPay 105%" {
		t.Errorf("fixed-income display name = %q", groups[1].Assets[0].DisplayName())
	}
}

func TestTransactionRequest_Validate(t *testing.T) {
	valid := TransactionRequest{
		Ticker:          "PETR4",
		AssetType:       "STOCK",
		Market:          "B3",
		TransactionType: "BUY",
		Quantity:        10,
		PricePerUnit:    35.2,
		TransactionDate: NewDate(2024, 5, 10),
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*TransactionRequest)
	}{
		{"missing ticker", func(r *TransactionRequest) { r.Ticker = "" }},
		{"bad type", func(r *TransactionRequest) { r.TransactionType = "HOLD" }},
		{"zero quantity", func(r *TransactionRequest) { r.Quantity = 0 }},
		{"negative price", func(r *TransactionRequest) { r.PricePerUnit = -1 }},
		{"missing date", func(r *TransactionRequest) { r.TransactionDate = Date{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			if err := r.Validate(); err == nil {
				t.Error("want validation error, got nil")
			}
		})
	}
}

func TestFixedIncomeRequest_Validate(t *testing.T) {
	valid := FixedIncomeRequest{
		Name:           "CDB PicPay 105%",
		InvestedAmount: 1000,
		InvestmentDate: NewDate(2024, 1, 2),
		MaturityDate:   NewDate(2026, 1, 2),
		IndexType:      "CDI",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	inverted := valid
	inverted.MaturityDate = NewDate(2023, 1, 2)
	if err := inverted.Validate(); err == nil {
		t.Error("maturity before investment should be rejected")
	}
	unnamed := valid
	unnamed.Name = ""
	if err := unnamed.Validate(); err == nil {
		t.Error("missing name should be rejected")
	}
}

func TestImportReport_CappedErrors(t *testing.T) {
	r := ImportReport{
		SuccessCount: 10,
		ErrorCount:   7,
		Errors:       []string{"e1", "e2", "e3", "e4", "e5", "e6", "e7"},
	}
	got := r.CappedErrors(5)
	want := []string{"e1", "e2", "e3", "e4", "e5", "+2 more"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CappedErrors = %v, want %v", got, want)
	}

	short := ImportReport{Errors: []string{"only"}}
	if got := short.CappedErrors(5); !reflect.DeepEqual(got, []string{"only"}) {
		t.Errorf("short list should pass through, got %v", got)
	}
}
