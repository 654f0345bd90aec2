package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sgrall/berrytally"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	what   string
	month  string
	item   string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export harvests or sales as CSV" }
func (*exportCmd) Usage() string {
	return `bt export -what <harvests|sales> [-m <YYYY-MM>] [-i <item|packaged>] [-o <file>]

  Writes a CSV for spreadsheet work. The sales export honors the same
  filters as the sales report. Without -o the CSV goes to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.what, "what", "", "What to export: harvests or sales")
	f.StringVar(&c.month, "m", "", "Sales only: restrict to one month, e.g. 2025-07")
	f.StringVar(&c.item, "i", "", "Sales only: restrict to one item, or \"packaged\"")
	f.StringVar(&c.output, "o", "", "Output file, stdout by default")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	out := os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		out = file
	}

	switch c.what {
	case "harvests":
		err = ledger.ExportHarvestsCSV(out)
	case "sales":
		view := ledger.Sales(berrytally.SalesFilter{Month: c.month, Selector: c.item})
		err = berrytally.ExportSalesCSV(out, view)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown export %q, want harvests or sales\n", c.what)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
