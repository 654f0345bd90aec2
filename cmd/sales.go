package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sgrall/berrytally"
	"github.com/sgrall/berrytally/renderer"
)

// salesCmd holds the flags for the 'sales' subcommand.
type salesCmd struct {
	month string
	item  string
}

func (*salesCmd) Name() string     { return "sales" }
func (*salesCmd) Synopsis() string { return "display the sales report" }
func (*salesCmd) Usage() string {
	return `bt sales [-m <YYYY-MM>] [-i <item|packaged>]

  Displays every sold event, bulk and packaged, with totals and
  per-month and per-item breakdowns. Filter by month, by item, or by
  the pseudo-item "packaged" for all packaged sales.
`
}

func (c *salesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Restrict to one month, e.g. 2025-07")
	f.StringVar(&c.item, "i", "", "Restrict to one item, or \"packaged\"")
}

func (c *salesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.item != "" && c.item != berrytally.PackagedLabel {
		if _, err := berrytally.ParseItem(c.item); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	view := ledger.Sales(berrytally.SalesFilter{Month: c.month, Selector: c.item})
	printMarkdown(renderer.SalesMarkdown(view))
	return subcommands.ExitSuccess
}
