package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sgrall/berrytally"
)

// harvestCmd holds the flags for the 'harvest' subcommand.
type harvestCmd struct {
	date    string
	item    string
	product string
	weight  string
	picker  string
	note    string
}

func (*harvestCmd) Name() string     { return "harvest" }
func (*harvestCmd) Synopsis() string { return "record a day's harvest of one item" }
func (*harvestCmd) Usage() string {
	return `bt harvest -i <item> -w <kg> [-d <date>] [-p <product>] [-picker <pyg>] [-note <text>]

  Records a harvest. The weight goes into the store selected by -p
  (frozen by default). The date defaults to today and cannot be in
  the future.

Usage Examples:
# 1.8 kg of blueberries into the freezer, picked today.
$ bt harvest -i blueberries -w 1.8

# 0.9 kg of raspberries sold fresh, picked two days ago, 25000 PYG picker salary.
$ bt harvest -i raspberries -w 0.9 -p fresh -d 2025-07-12 -picker 25k
`
}

func (c *harvestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", berrytally.Today().String(), "Harvest date (YYYY-MM-DD)")
	f.StringVar(&c.item, "i", "", "Harvested item, e.g. blueberries")
	f.StringVar(&c.product, "p", string(berrytally.Frozen), "Destination store: fresh or frozen")
	f.StringVar(&c.weight, "w", "", "Harvested weight in kilograms, e.g. 1.8")
	f.StringVar(&c.picker, "picker", "", "Picker salary in PYG, shorthand accepted, e.g. 25k")
	f.StringVar(&c.note, "note", "", "Free-form note")
}

func (c *harvestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := berrytally.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
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
	rec := berrytally.NewHarvest(day, item, product, weight, berrytally.ParsePYG(c.picker), c.note)
	id, err := ledger.AppendHarvest(rec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded harvest %s: %s kg of %s (%s) on %s\n", id, weight.Kg(), item, product, day)
	return subcommands.ExitSuccess
}
