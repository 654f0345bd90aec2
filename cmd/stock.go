package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sgrall/berrytally/renderer"
)

type stockCmd struct{}

func (*stockCmd) Name() string     { return "stock" }
func (*stockCmd) Synopsis() string { return "display the bulk stock report" }
func (*stockCmd) Usage() string {
	return `bt stock

  Displays the current bulk stock of every item: frozen and fresh
  weight, valuation at current prices, and days since the last harvest.
`
}

func (c *stockCmd) SetFlags(f *flag.FlagSet) {}

func (c *stockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.StockMarkdown(ledger.Stock()))
	return subcommands.ExitSuccess
}
