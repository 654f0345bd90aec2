package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sgrall/berrytally"
)

// bulkCmd holds the flags for the 'bulk' subcommand.
type bulkCmd struct {
	item    string
	product string
	action  string
	weight  string
	note    string
}

func (*bulkCmd) Name() string     { return "bulk" }
func (*bulkCmd) Synopsis() string { return "remove or sell bulk stock" }
func (*bulkCmd) Usage() string {
	return `bt bulk -i <item> -a <remove|sold> -w <kg> [-p <product>] [-note <text>]

  Records a withdrawal from bulk stock, dated today. A sold action
  snapshots the item's current price on the record.

Usage Examples:
# Sell 2 kg of frozen blueberries at the current price.
$ bt bulk -i blueberries -a sold -w 2

# Throw away 0.3 kg of fresh raspberries.
$ bt bulk -i raspberries -p fresh -a remove -w 0.3 -note "rained on"
`
}

func (c *bulkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.item, "i", "", "Item to act on, e.g. blueberries")
	f.StringVar(&c.product, "p", string(berrytally.Frozen), "Store to act on: fresh or frozen")
	f.StringVar(&c.action, "a", "", "Action: remove or sold")
	f.StringVar(&c.weight, "w", "", "Weight in kilograms, e.g. 0.5")
	f.StringVar(&c.note, "note", "", "Free-form note")
}

func (c *bulkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	item, err := berrytally.ParseItem(c.item)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	product, err := berrytally.ParseProduct(c.product)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	kind, err := berrytally.ParseActionKind(c.action)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	weight, err := berrytally.ParseKg(c.weight)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	id, err := ledger.AppendBulkAction(item, product, kind, weight, c.note)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s %s: %s kg of %s (%s)\n", kind, id, weight.Kg(), item, product)
	return subcommands.ExitSuccess
}
