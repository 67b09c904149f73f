package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	"github.com/etnz/carteira"
)

// SummaryMarkdown renders the three headline cards of the dashboard.
func SummaryMarkdown(s carteira.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Minha Carteira")

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", ""},
		Rows: [][]string{
			{"Patrimônio Total", money(s.TotalHeritage)},
			{"Valor Investido", money(s.TotalInvested)},
			{"Rentabilidade", percent(s.Profitability)},
		},
	}
	doc.Table(table)

	return doc.String()
}

// InvestedMarkdown renders the per-asset invested-value breakdown.
func InvestedMarkdown(details []carteira.InvestedDetail) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Valor Investido por Ativo")
	if len(details) == 0 {
		doc.PlainText("Nenhum dado de ativo disponível.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Ativo", "Valor Investido"},
		Rows:      [][]string{},
	}
	for _, d := range details {
		table.Rows = append(table.Rows, []string{d.Name, money(d.InvestedValue)})
	}
	doc.Table(table)

	return doc.String()
}
