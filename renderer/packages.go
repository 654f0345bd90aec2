package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/sgrall/berrytally"
)

// PackagesMarkdown renders the packaged inventory: one row per package group,
// drained groups included.
func PackagesMarkdown(groups []berrytally.PackageGroup) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Packages")

	if len(groups) == 0 {
		doc.PlainText("No packages created yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Product", "Size", "Mix", "Available", "Cost/Bag"},
	}
	for _, g := range groups {
		table.Rows = append(table.Rows, []string{
			g.Date.String(),
			string(g.Product),
			fmt.Sprintf("%d g", g.SizeGrams),
			g.Mix.Label(),
			fmt.Sprintf("%d", g.AvailableCount),
			g.CostPerBag.Short(),
		})
	}
	doc.Table(table)

	return doc.String()
}
