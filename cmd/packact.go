package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sgrall/berrytally"
)

// packActCmd holds the flags for the 'packact' subcommand.
type packActCmd struct {
	group  string
	action string
	count  int
	note   string
}

func (*packActCmd) Name() string     { return "packact" }
func (*packActCmd) Synopsis() string { return "remove or sell packaged bags" }
func (*packActCmd) Usage() string {
	return `bt packact -g <product|size|mix> -a <remove|sold> [-count <n>] [-note <text>]

  Consumes bags from a package group, dated today. The group key is
  shown by 'bt packages'. Asking for more bags than the group holds is
  rejected with the available count.

Usage Examples:
# Sell two bags from the 500g frozen blueberry/raspberry group.
$ bt packact -g 'frozen|500|blueberries:300|raspberries:200' -a sold -count 2
`
}

func (c *packActCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.group, "g", "", "Package group key: product|size|mix signature")
	f.StringVar(&c.action, "a", "", "Action: remove or sold")
	f.IntVar(&c.count, "count", 1, "Number of bags to consume")
	f.StringVar(&c.note, "note", "", "Free-form note")
}

func (c *packActCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	key, err := berrytally.ParseGroupKey(c.group)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	kind, err := berrytally.ParseActionKind(c.action)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	id, err := ledger.AppendPackageAction(key, kind, c.count, c.note)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s %s: %d bag(s) from %s\n", kind, id, c.count, key)
	return subcommands.ExitSuccess
}
