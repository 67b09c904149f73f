package renderer

import (
	"bytes"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/etnz/carteira"
)

// AllocationMarkdown renders the current level of the drill-down view: title,
// breadcrumb of the drill path, and one row per slice with a proportional bar.
func AllocationMarkdown(view *carteira.AllocationView, tree map[string]carteira.AllocationNode) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(view.Title())

	if path := view.Path(); len(path) > 0 {
		crumbs := make([]string, 0, len(path)+1)
		crumbs = append(crumbs, "Categorias")
		for _, key := range path {
			crumbs = append(crumbs, carteira.Translate(key))
		}
		doc.PlainText(strings.Join(crumbs, " › "))
	}

	node, colorKey := view.Resolve(tree)
	slices := carteira.Slices(node, colorKey)
	if len(slices) == 0 {
		doc.PlainText("Adicione ativos para ver a alocação.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"Fatia", "%", ""},
		Rows:      [][]string{},
	}
	for _, s := range slices {
		label := s.Label
		if !node[s.Key].IsLeaf() {
			label += " ▸" // drillable
		}
		table.Rows = append(table.Rows, []string{
			label,
			s.Percent.String(),
			bar(float64(s.Percent), 20),
		})
	}
	doc.Table(table)

	return doc.String()
}
