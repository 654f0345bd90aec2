package renderer

import (
	"bytes"
	"fmt"
	"maps"
	"slices"

	md "github.com/nao1215/markdown"
	"github.com/sgrall/berrytally"
)

// AnalyticsMarkdown renders the harvest analytics report: summary KPIs, the
// per-bucket totals and the daily series with its 7-day moving average.
func AnalyticsMarkdown(view berrytally.AnalyticsView, granularity berrytally.Period, item *berrytally.Item) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := "Harvest Analytics"
	if item != nil {
		title = fmt.Sprintf("Harvest Analytics: %s", *item)
	}
	doc.H1(title)

	if len(view.Days) > 0 {
		doc.PlainText(fmt.Sprintf("Window: %s to %s", view.Days[0], view.Days[len(view.Days)-1]))
	}

	kpis := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Harvests", fmt.Sprintf("%d", view.Count)},
			{"Total", view.TotalKg.String() + " kg"},
			{"Average per harvest", view.AvgKg.String() + " kg"},
			{"Picker salaries", view.PickerCost.Short()},
		},
	}
	if view.Count > 0 {
		kpis.Rows = append(kpis.Rows,
			[]string{"First harvest", view.First.String()},
			[]string{"Last harvest", view.Last.String()},
		)
	}
	doc.Table(kpis)

	if len(view.Buckets) > 0 {
		doc.H2(fmt.Sprintf("Per %s", granularity))
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Bucket", "Harvested"},
		}
		for _, b := range view.Buckets {
			table.Rows = append(table.Rows, []string{b.Key, b.Kg.String() + " kg"})
		}
		doc.Table(table)
	}

	doc.H2("Daily")
	daily := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Day", "Harvested", "7-day avg"},
	}
	for i, day := range view.Days {
		avg := ""
		if view.MovingAvg[i] != nil {
			avg = view.MovingAvg[i].String() + " kg"
		}
		daily.Rows = append(daily.Rows, []string{
			day.String(),
			view.DailyKg[i].String() + " kg",
			avg,
		})
	}
	doc.Table(daily)

	return doc.String()
}

// sortedKeys returns the map keys in ascending order.
func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
