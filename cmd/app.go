// Package cmd implements the CLI application to manage a berry ledger.
package cmd

import (
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/sgrall/berrytally"
)

// Commands lists every subcommand of the bt binary. A main package registers
// them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&harvestCmd{},
	&rmHarvestCmd{},
	&bulkCmd{},
	&packCmd{},
	&packActCmd{},
	&priceCmd{},

	&stockCmd{},
	&packagesCmd{},
	&salesCmd{},
	&analyticsCmd{},

	&exportCmd{},
	&backupCmd{},
	&restoreCmd{},
	&seedCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var dataDir = flag.String("data", ".berrytally", "Path to the data directory holding the event log and price table")

// loadLedger reads the ledger from the app data directory. A missing
// directory yields an empty ledger.
func loadLedger() (*berrytally.Ledger, error) {
	return berrytally.Load(*dataDir)
}

// saveLedger persists the ledger back to the app data directory.
func saveLedger(l *berrytally.Ledger) error {
	return berrytally.Save(*dataDir, l)
}

// parseMix parses the CLI mix syntax, comma-separated "item:grams" pairs,
// e.g. "blueberries:300,raspberries:200".
func parseMix(s string) (berrytally.Mix, error) {
	mix, err := berrytally.ParseMixSignature(strings.ReplaceAll(s, ",", "|"))
	if err != nil {
		return nil, fmt.Errorf("invalid mix %q: %w", s, err)
	}
	return mix, nil
}
