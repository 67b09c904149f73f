package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/etnz/carteira"
)

// maxImportErrors caps the per-row error list; beyond it a "+N more" marker
// is shown.
const maxImportErrors = 5

// ImportReportMarkdown renders the partial-success result of a CSV import.
func ImportReportMarkdown(r *carteira.ImportReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Importação de Transações")
	doc.PlainText(fmt.Sprintf("%d importadas, %d com erro.", r.SuccessCount, r.ErrorCount))

	if capped := r.CappedErrors(maxImportErrors); len(capped) > 0 {
		doc.H2("Erros")
		doc.BulletList(capped...)
	}

	return doc.String()
}
