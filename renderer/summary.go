package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/jmrios/cartera"
)

// SummaryMarkdown renders the portfolio's positions and total value in the
// reporting currency.
func SummaryMarkdown(on cartera.Date, p cartera.Portfolio, total cartera.Money) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio Summary on %s", on))

	var rows [][]string
	for pos := range p.Positions() {
		rows = append(rows, []string{
			pos.Symbol(),
			pos.Platform(),
			pos.AssetType(),
			pos.Currency(),
			pos.Value().String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Asset", "Platform", "Type", "Currency", "Value"},
		Rows:   rows,
	})

	doc.PlainText(fmt.Sprintf("Total value: **%s** (%s)", total, total.Currency()))

	return doc.String()
}
