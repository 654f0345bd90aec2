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

// analyticsCmd holds the flags for the 'analytics' subcommand.
type analyticsCmd struct {
	window string
	from   string
	to     string
	period string
	item   string
}

func (*analyticsCmd) Name() string     { return "analytics" }
func (*analyticsCmd) Synopsis() string { return "display harvest analytics over a window" }
func (*analyticsCmd) Usage() string {
	return `bt analytics [-w <7|30|90|ytd>] [-from <date> -to <date>] [-period <week|month|year>] [-i <item>]

  Displays the harvest time series over a window: daily weights, the
  7-day moving average, bucket totals and summary figures. Both window
  boundaries are inclusive. -from/-to override -w.

Usage Examples:
# Last 30 days, bucketed by week.
$ bt analytics -w 30

# July, blueberries only, bucketed by month.
$ bt analytics -from 2025-07-01 -to 2025-07-31 -period month -i blueberries
`
}

func (c *analyticsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.window, "w", "30", "Window: last 7, 30 or 90 days, or ytd")
	f.StringVar(&c.from, "from", "", "Explicit window start (YYYY-MM-DD)")
	f.StringVar(&c.to, "to", "", "Explicit window end (YYYY-MM-DD)")
	f.StringVar(&c.period, "period", "week", "Bucket granularity: week, month or year")
	f.StringVar(&c.item, "i", "", "Restrict to one item")
}

func (c *analyticsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	window, err := c.parseWindow()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	period, err := berrytally.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	var item *berrytally.Item
	if c.item != "" {
		parsed, err := berrytally.ParseItem(c.item)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		item = &parsed
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	view := ledger.Analytics(window, period, item)
	printMarkdown(renderer.AnalyticsMarkdown(view, period, item))
	return subcommands.ExitSuccess
}

func (c *analyticsCmd) parseWindow() (berrytally.Range, error) {
	if c.from != "" || c.to != "" {
		from, err := berrytally.ParseDate(c.from)
		if err != nil {
			return berrytally.Range{}, err
		}
		to, err := berrytally.ParseDate(c.to)
		if err != nil {
			return berrytally.Range{}, err
		}
		return berrytally.NewRange(from, to), nil
	}
	switch c.window {
	case "7":
		return berrytally.LastDays(7), nil
	case "30":
		return berrytally.LastDays(30), nil
	case "90":
		return berrytally.LastDays(90), nil
	case "ytd":
		return berrytally.YearToDate(), nil
	}
	return berrytally.Range{}, fmt.Errorf("unknown window %q, want 7, 30, 90 or ytd", c.window)
}
