package renderer

import (
	"bytes"
	"fmt"
	"time"

	md "github.com/nao1215/markdown"

	"github.com/jmrios/cartera"
)

// UsageMarkdown renders the usage history in append order.
func UsageMarkdown(records []cartera.UsageRecord) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Usage History")

	if len(records) == 0 {
		doc.PlainText("No usage recorded.")
		return doc.String()
	}

	var rows [][]string
	for _, rec := range records {
		rows = append(rows, []string{
			rec.Timestamp.Local().Format(time.DateTime),
			"$" + rec.Cost.StringFixed(4),
			rec.Metadata["model"],
			rec.Metadata["queryType"],
		})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft, md.AlignLeft},
		Header:    []string{"When", "Cost", "Model", "Query"},
		Rows:      rows,
	})

	doc.PlainText(fmt.Sprintf("%d calls.", len(records)))

	return doc.String()
}
