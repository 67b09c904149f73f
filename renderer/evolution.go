package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	"github.com/etnz/carteira"
)

// EvolutionMarkdown renders the shaped net-worth series with the trailing
// return annotation. An undefined return renders as absent, never as zero.
func EvolutionMarkdown(title string, points []carteira.EvolutionPoint) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)

	entries := carteira.Shape(points)
	if len(entries) == 0 {
		doc.PlainText("Adicione transações para ver a evolução do seu patrimônio.")
		return doc.String()
	}

	if r, ok := carteira.TrailingReturn(carteira.Dedupe(points)); ok {
		doc.PlainText("Retorno no período: " + r.SignedString())
	} else {
		doc.PlainText("Retorno no período: —")
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Mês", "Valor Aplicado", "Ganho Capital", "Patrimônio"},
		Rows:      [][]string{},
	}
	for _, e := range entries {
		table.Rows = append(table.Rows, []string{
			e.Date,
			money(e.InvestedAmount),
			signedMoney(e.CapitalGain),
			money(e.TotalValue),
		})
	}
	doc.Table(table)

	return doc.String()
}
