package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sgrall/berrytally"
)

// packCmd holds the flags for the 'pack' subcommand.
type packCmd struct {
	product string
	size    string
	count   int
	mix     string
}

func (*packCmd) Name() string     { return "pack" }
func (*packCmd) Synopsis() string { return "turn bulk stock into packaged bags" }
func (*packCmd) Usage() string {
	return `bt pack -size <grams> -count <n> -mix <item:grams,...> [-p <product>]

  Creates a batch of identical bags. The mix grams must sum to the bag
  size, and each mix item's bulk stock is debited by its grams times
  the bag count. The package record and the stock debits are written
  together or not at all.

Usage Examples:
# 4 frozen 500g bags, 300g blueberries + 200g raspberries each.
$ bt pack -size 500 -count 4 -mix blueberries:300,raspberries:200
`
}

func (c *packCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.product, "p", string(berrytally.Frozen), "Product packaged: fresh or frozen")
	f.StringVar(&c.size, "size", "", "Bag size in grams, e.g. 500")
	f.IntVar(&c.count, "count", 1, "Number of bags in the batch")
	f.StringVar(&c.mix, "mix", "", "Per-bag composition, comma-separated item:grams pairs")
}

func (c *packCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	product, err := berrytally.ParseProduct(c.product)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	size, err := berrytally.ParseGrams(c.size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	mix, err := parseMix(c.mix)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	id, err := ledger.CreatePackages(size, mix, c.count, product)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created package batch %s: %d x %s bags (%s) of %s\n", id, c.count, size, product, mix.Label())
	return subcommands.ExitSuccess
}
