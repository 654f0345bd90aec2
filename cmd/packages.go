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

type packagesCmd struct{}

func (*packagesCmd) Name() string     { return "packages" }
func (*packagesCmd) Synopsis() string { return "display the packaged inventory" }
func (*packagesCmd) Usage() string {
	return `bt packages

  Displays every package group with its mix, available bag count and
  per-bag cost. Groups drained to zero stay listed.
`
}

func (c *packagesCmd) SetFlags(f *flag.FlagSet) {}

func (c *packagesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	groups := berrytally.SortedPackageGroups(ledger.PackageGroups())
	printMarkdown(renderer.PackagesMarkdown(groups))
	return subcommands.ExitSuccess
}
