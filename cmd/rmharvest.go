package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmHarvestCmd struct{}

func (*rmHarvestCmd) Name() string     { return "rmharvest" }
func (*rmHarvestCmd) Synopsis() string { return "delete a harvest record by id" }
func (*rmHarvestCmd) Usage() string {
	return `bt rmharvest <id>

  Deletes the harvest with the given id. Harvests are the only records
  that can be deleted; every report is recomputed from the remaining log.
`
}

func (c *rmHarvestCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmHarvestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one harvest id\n")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := ledger.DeleteHarvest(id); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted harvest %s\n", id)
	return subcommands.ExitSuccess
}
