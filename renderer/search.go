package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/etnz/carteira"
)

// SearchMarkdown renders autocomplete matches for a search term.
func SearchMarkdown(term string, results []carteira.SearchResult) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Resultados para %q", term))
	if len(results) == 0 {
		doc.PlainText("Nenhum resultado encontrado.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"Ticker", "Nome", "Tipo", "Mercado", "Preço"},
		Rows:      [][]string{},
	}
	for _, r := range results {
		price := ""
		if r.Price > 0 {
			price = carteira.M(r.Price, r.Currency).String()
		}
		table.Rows = append(table.Rows, []string{
			r.Ticker,
			r.Name,
			carteira.Translate(r.Type),
			r.Market,
			price,
		})
	}
	doc.Table(table)

	return doc.String()
}

// QuoteMarkdown renders a single price lookup.
func QuoteMarkdown(q carteira.Quote) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(q.Ticker)
	doc.PlainText("Cotação atual: " + carteira.M(q.Price, q.Currency).String())
	return doc.String()
}
