package berrytally

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Period is the bucket granularity of the harvest analytics aggregation.
type Period int

const (
	Weekly Period = iota
	Monthly
	Yearly
)

func (p Period) String() string {
	switch p {
	case Weekly:
		return "week"
	case Monthly:
		return "month"
	case Yearly:
		return "year"
	default:
		return "unknown"
	}
}

// ParsePeriod parses a bucket granularity.
func ParsePeriod(s string) (Period, error) {
	switch s {
	case "week":
		return Weekly, nil
	case "month":
		return Monthly, nil
	case "year":
		return Yearly, nil
	default:
		return 0, fmt.Errorf("unknown period %q, want week, month or year", s)
	}
}

// Range is an inclusive date window.
type Range struct {
	From, To Date
}

// NewRange builds a window, swapping the bounds when given backwards.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains reports whether d falls within the window, both ends included.
func (r Range) Contains(d Date) bool { return !d.Before(r.From) && !d.After(r.To) }

// LastDays returns the window ending today covering the last n days.
func LastDays(n int) Range {
	today := Today()
	return Range{From: today.Add(-(n - 1)), To: today}
}

// YearToDate returns the window from January 1st through today.
func YearToDate() Range {
	today := Today()
	return Range{From: NewDate(today.Year(), 1, 1), To: today}
}

// movingAverageWindow is the trailing window of the daily moving average.
const movingAverageWindow = 7

// BucketTotal is one aggregation bucket of the analytics view.
type BucketTotal struct {
	Key string
	Kg  Kilograms
}

// AnalyticsView is the derived harvest time series over one window.
type AnalyticsView struct {
	Days    []Date      // every day of the window, in order
	DailyKg []Kilograms // harvested kg per day, zero-filled
	// MovingAvg is the 7-day trailing average of DailyKg; entries before the
	// window is full (the first six days) are nil.
	MovingAvg []*Kilograms
	Buckets   []BucketTotal // week/month/year totals, sorted by key

	Count      int       // harvest events in range
	TotalKg    Kilograms // total harvested weight in range
	AvgKg      Kilograms // average weight per harvest event
	First      Date      // first harvest date in range, zero when Count == 0
	Last       Date      // last harvest date in range, zero when Count == 0
	PickerCost PYG       // summed picker salaries in range
}

// Analytics folds the harvest log over the window into a contiguous daily
// series, its moving average, granularity buckets and summary KPIs. Both
// window boundaries are inclusive. A nil item keeps every item; otherwise
// only that item's harvests count.
func (l *Ledger) Analytics(window Range, granularity Period, item *Item) AnalyticsView {
	var view AnalyticsView
	view.Days = window.From.Days(window.To)
	if len(view.Days) == 0 {
		return view
	}

	perDay := make(map[Date]Grams, len(view.Days))
	for _, h := range l.Harvests() {
		if item != nil && h.Item != *item {
			continue
		}
		if !window.Contains(h.Date) {
			continue
		}
		perDay[h.Date] += h.TotalGrams
		view.Count++
		view.PickerCost += h.PickerCost
		if view.First.IsZero() || h.Date.Before(view.First) {
			view.First = h.Date
		}
		if h.Date.After(view.Last) {
			view.Last = h.Date
		}
	}

	view.DailyKg = make([]Kilograms, len(view.Days))
	for i, day := range view.Days {
		view.DailyKg[i] = perDay[day].Kg()
		view.TotalKg = view.TotalKg.Add(view.DailyKg[i])
	}
	if view.Count > 0 {
		view.AvgKg = KgOf(view.TotalKg.Decimal().Div(intDecimal(view.Count)))
	}

	view.MovingAvg = movingAverage(view.DailyKg, movingAverageWindow)

	totals := map[string]Kilograms{}
	for i, day := range view.Days {
		var key string
		switch granularity {
		case Monthly:
			key = day.MonthKey()
		case Yearly:
			key = day.YearKey()
		default:
			key = day.WeekKey()
		}
		totals[key] = totals[key].Add(view.DailyKg[i])
	}
	for key, kg := range totals {
		view.Buckets = append(view.Buckets, BucketTotal{Key: key, Kg: kg})
	}
	sort.Slice(view.Buckets, func(i, j int) bool {
		return view.Buckets[i].Key < view.Buckets[j].Key
	})
	return view
}

// movingAverage computes the trailing average over win points. The first
// win-1 entries have no value.
func movingAverage(series []Kilograms, win int) []*Kilograms {
	out := make([]*Kilograms, len(series))
	sum := decimal.Zero
	for i := range series {
		sum = sum.Add(series[i].Decimal())
		if i >= win {
			sum = sum.Sub(series[i-win].Decimal())
		}
		if i >= win-1 {
			avg := KgOf(sum.Div(intDecimal(win)))
			out[i] = &avg
		}
	}
	return out
}
