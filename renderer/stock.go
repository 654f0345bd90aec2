// Package renderer turns berrytally views into markdown reports.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/sgrall/berrytally"
)

// StockMarkdown renders the bulk stock report: one row per catalog item with
// its frozen and fresh weight, valuation and harvest recency.
func StockMarkdown(views map[berrytally.Item]berrytally.StockView) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Storage")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Item", "Frozen", "Fresh", "Value", "Last Harvest"},
	}
	for item := range berrytally.Items() {
		v := views[item]
		last := "never"
		if v.Harvested {
			last = fmt.Sprintf("%s (%s)", v.LastDate, daysAgo(v.DaysSince))
		}
		table.Rows = append(table.Rows, []string{
			string(item),
			v.FrozenKg.String() + " kg",
			v.FreshKg.String() + " kg",
			v.Value.Short(),
			last,
		})
	}
	frozen, fresh, value := berrytally.StockTotals(views)
	table.Rows = append(table.Rows, []string{
		md.Bold("Total"),
		md.Bold(frozen.String() + " kg"),
		md.Bold(fresh.String() + " kg"),
		md.Bold(value.Short()),
		"",
	})
	doc.Table(table)

	return doc.String()
}

func daysAgo(days int) string {
	switch days {
	case 0:
		return "today"
	case 1:
		return "yesterday"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}
