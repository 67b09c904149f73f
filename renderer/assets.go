package renderer

import (
	"bytes"
	"sort"

	md "github.com/nao1215/markdown"

	"github.com/etnz/carteira"
)

// AssetsMarkdown renders the positions grouped the way the dashboard does:
// one section per category, one sub-section per asset-type accordion.
// Fixed-income groups get the simplified column set.
func AssetsMarkdown(assets map[string][]carteira.AssetGroup) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Meus Ativos")
	if len(assets) == 0 {
		doc.PlainText("Nenhum ativo na carteira para exibir.")
		return doc.String()
	}

	categories := make([]string, 0, len(assets))
	for cat := range assets {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	for _, cat := range categories {
		doc.H2(carteira.Translate(cat))
		groups := assets[cat]
		if len(groups) == 0 {
			doc.PlainText("Nenhum ativo para exibir nesta categoria.")
			continue
		}
		for _, group := range groups {
			doc.H3(carteira.Translate(group.CategoryName) + " — " + money(group.TotalValue))
			if len(group.Assets) == 0 {
				doc.PlainText("Nenhum ativo nesta categoria.")
				continue
			}
			if group.IsFixedIncome() {
				doc.Table(fixedIncomeTable(group.Assets))
			} else {
				doc.Table(assetTable(group.Assets))
			}
		}
	}

	return doc.String()
}

func assetTable(assets []carteira.Asset) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight,
			md.AlignRight, md.AlignRight, md.AlignRight,
		},
		Header: []string{"Ativo", "Qtde", "Preço Médio", "Preço Atual", "Variação", "% da Carteira", "Valor Total"},
		Rows:   [][]string{},
	}
	for _, a := range assets {
		table.Rows = append(table.Rows, []string{
			a.DisplayName(),
			quantity(a.TotalQuantity),
			money(a.AveragePrice),
			money(a.CurrentPrice),
			percent(a.Profitability),
			percent(a.PortfolioPercentage),
			money(a.CurrentValue),
		})
	}
	return table
}

func fixedIncomeTable(assets []carteira.Asset) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Ativo", "Variação", "% da Carteira", "Valor Total"},
		Rows:      [][]string{},
	}
	for _, a := range assets {
		table.Rows = append(table.Rows, []string{
			a.DisplayName(),
			percent(a.Profitability),
			percent(a.PortfolioPercentage),
			money(a.CurrentValue),
		})
	}
	return table
}
