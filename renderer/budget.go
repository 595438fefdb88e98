package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/jmrios/cartera"
)

// BudgetMarkdown renders the budget status report for one day.
func BudgetMarkdown(s cartera.Status) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Budget Status on %s", s.Day))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Scope", "Spent", "Limit", "Remaining"},
		Rows: [][]string{
			{"Total", "$" + s.TotalSpent.StringFixed(4), "$" + s.TotalLimit.StringFixed(2), "$" + s.Remaining().StringFixed(4)},
			{"Today", "$" + s.DailySpent.StringFixed(4), "$" + s.DailyLimit.StringFixed(2), "$" + s.DailyRemaining().StringFixed(4)},
		},
	})

	doc.PlainText(fmt.Sprintf("Alert level: **%s**", s.Level))

	return doc.String()
}
