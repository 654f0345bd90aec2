package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sgrall/berrytally"
)

// priceCmd holds the flags for the 'price' subcommand.
type priceCmd struct {
	item   string
	fresh  string
	frozen string
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "set or show per-kilogram prices" }
func (*priceCmd) Usage() string {
	return `bt price [-i <item>] [-fresh <pyg>] [-frozen <pyg>]

  Without -fresh or -frozen, prints the price table. With them, sets
  the item's per-kilogram price. Input accepts the k/m shorthand and
  is rounded to the 5000 PYG step; unparseable input becomes 0 (unset).

Usage Examples:
# 82300 is rounded down to the nearest step.
$ bt price -i blueberries -frozen 82.3k

# Show the whole table.
$ bt price
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.item, "i", "", "Item to price, e.g. blueberries")
	f.StringVar(&c.fresh, "fresh", "", "Fresh price per kilogram in PYG")
	f.StringVar(&c.frozen, "frozen", "", "Frozen price per kilogram in PYG")
}

func (c *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.fresh == "" && c.frozen == "" {
		for item := range berrytally.Items() {
			fmt.Printf("%-14s fresh %-12s frozen %s\n", item,
				ledger.Prices().Price(item, berrytally.Fresh),
				ledger.Prices().Price(item, berrytally.Frozen))
		}
		return subcommands.ExitSuccess
	}

	item, err := berrytally.ParseItem(c.item)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.fresh != "" {
		p := ledger.SetPrice(item, berrytally.Fresh, c.fresh)
		fmt.Printf("Set %s fresh price to %s\n", item, p)
	}
	if c.frozen != "" {
		p := ledger.SetPrice(item, berrytally.Frozen, c.frozen)
		fmt.Printf("Set %s frozen price to %s\n", item, p)
	}
	if err := saveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
