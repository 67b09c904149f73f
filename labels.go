package carteira

import "strings"

// labelMap is the single source of truth for translating the raw keys used by
// the backend (category keys of the allocation tree, asset-type names) into
// the display names used everywhere: chart legends, report tables, titles.
// Keys are lower case; lookup is case-insensitive.
var labelMap = map[string]string{
	// categories
	"brazil": "Brasil",
	"brasil": "Brasil",
	"usa":    "EUA",
	"eua":    "EUA",
	"crypto": "Cripto",
	"cripto": "Cripto",

	// asset types
	"ações":        "Ações",
	"stock":        "Ações",
	"etf":          "ETFs",
	"etfs":         "ETFs",
	"renda fixa":   "Renda Fixa",
	"fixed_income": "Renda Fixa",
	"criptomoedas": "Criptomoedas",
}

// Translate returns the display name for a raw backend key.
// Unknown keys pass through unchanged.
func Translate(label string) string {
	if label == "" {
		return ""
	}
	if friendly, ok := labelMap[strings.ToLower(label)]; ok {
		return friendly
	}
	return label
}
