package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	"github.com/sgrall/berrytally"
)

// SalesMarkdown renders the sales ledger view: every sold event matching the
// filter, followed by the totals and the per-month and per-item breakdowns.
func SalesMarkdown(view berrytally.SalesView) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Sales")

	if len(view.Rows) == 0 {
		doc.PlainText("No sales recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Date", "What", "Product", "Weight", "Price/kg", "Value", "Note"},
	}
	for _, row := range view.Rows {
		table.Rows = append(table.Rows, []string{
			row.Date.String(),
			row.Label,
			string(row.Product),
			row.Kg.String() + " kg",
			row.UnitPrice.Short(),
			row.Value.Short(),
			row.Note,
		})
	}
	table.Rows = append(table.Rows, []string{
		md.Bold("Total"), "", "",
		md.Bold(view.TotalKg.String() + " kg"), "",
		md.Bold(view.TotalValue.String()), "",
	})
	doc.Table(table)

	doc.H2("By Month")
	doc.Table(breakdownTable(view.ByMonth))

	doc.H2("By Item")
	doc.Table(breakdownTable(view.ByLabel))

	return doc.String()
}

func breakdownTable(totals map[string]berrytally.SalesTotal) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Bucket", "Weight", "Value"},
	}
	for _, key := range sortedKeys(totals) {
		t := totals[key]
		table.Rows = append(table.Rows, []string{
			key,
			t.Kg.String() + " kg",
			t.Value.Short(),
		})
	}
	return table
}
