package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// AllocationMarkdown renders one allocation breakdown as a two-column table,
// groups sorted by name.
func AllocationMarkdown(title string, alloc map[string]decimal.Decimal) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Allocation by %s", title))

	var rows [][]string
	for _, k := range sortedKeys(alloc) {
		rows = append(rows, []string{k, percent(alloc[k])})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{title, "Share"},
		Rows:      rows,
	})

	return doc.String()
}
