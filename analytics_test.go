package berrytally

import (
	"testing"
	"time"
)

func TestAnalyticsWindow(t *testing.T) {
	l := testLedger()
	from := NewDate(2025, time.July, 1)
	to := NewDate(2025, time.July, 10)
	harvestOn(l, from.Add(-1), Blueberries, Frozen, 999)  // day before, excluded
	harvestOn(l, from, Blueberries, Frozen, 1000)         // boundary, included
	harvestOn(l, to, Blueberries, Frozen, 2000)           // boundary, included
	harvestOn(l, to.Add(1), Blueberries, Frozen, 999)     // day after, excluded

	view := l.Analytics(NewRange(from, to), Weekly, nil)
	if len(view.Days) != 10 {
		t.Fatalf("window has %d days, want 10", len(view.Days))
	}
	if view.Count != 2 {
		t.Errorf("Count = %d, want 2", view.Count)
	}
	if !view.TotalKg.Equal(kg(3000)) {
		t.Errorf("TotalKg = %s, want 3.00", view.TotalKg)
	}
	if !view.AvgKg.Equal(kg(1500)) {
		t.Errorf("AvgKg = %s, want 1.50", view.AvgKg)
	}
	if view.First != from || view.Last != to {
		t.Errorf("First/Last = %v/%v, want %v/%v", view.First, view.Last, from, to)
	}
	if !view.DailyKg[0].Equal(kg(1000)) || !view.DailyKg[9].Equal(kg(2000)) {
		t.Errorf("daily series = %v", view.DailyKg)
	}
	// In-between days are zero-filled.
	for i := 1; i < 9; i++ {
		if !view.DailyKg[i].IsZero() {
			t.Errorf("DailyKg[%d] = %s, want 0", i, view.DailyKg[i])
		}
	}
}

func TestAnalyticsMovingAverage(t *testing.T) {
	l := testLedger()
	from := NewDate(2025, time.July, 1)
	// 1 kg every day for ten days.
	for i := 0; i < 10; i++ {
		harvestOn(l, from.Add(i), Blueberries, Frozen, 1000)
	}

	view := l.Analytics(NewRange(from, from.Add(9)), Weekly, nil)
	for i := 0; i < 6; i++ {
		if view.MovingAvg[i] != nil {
			t.Errorf("MovingAvg[%d] = %s, want undefined before day 7", i, *view.MovingAvg[i])
		}
	}
	for i := 6; i < 10; i++ {
		if view.MovingAvg[i] == nil {
			t.Fatalf("MovingAvg[%d] undefined", i)
		}
		if !view.MovingAvg[i].Equal(kg(1000)) {
			t.Errorf("MovingAvg[%d] = %s, want 1.00", i, *view.MovingAvg[i])
		}
	}
}

func TestAnalyticsItemFilter(t *testing.T) {
	l := testLedger()
	day := NewDate(2025, time.July, 5)
	harvestOn(l, day, Blueberries, Frozen, 1000)
	harvestOn(l, day, Raspberries, Frozen, 2000)

	item := Blueberries
	view := l.Analytics(NewRange(day, day), Weekly, &item)
	if view.Count != 1 || !view.TotalKg.Equal(kg(1000)) {
		t.Errorf("filtered view counts %d harvests, %s kg", view.Count, view.TotalKg)
	}
}

func TestAnalyticsBuckets(t *testing.T) {
	l := testLedger()
	harvestOn(l, NewDate(2025, time.June, 30), Blueberries, Frozen, 1000)
	harvestOn(l, NewDate(2025, time.July, 1), Blueberries, Frozen, 2000)

	view := l.Analytics(NewRange(NewDate(2025, time.June, 30), NewDate(2025, time.July, 1)), Monthly, nil)
	if len(view.Buckets) != 2 {
		t.Fatalf("got %d buckets, want 2: %v", len(view.Buckets), view.Buckets)
	}
	if view.Buckets[0].Key != "2025-06" || !view.Buckets[0].Kg.Equal(kg(1000)) {
		t.Errorf("bucket[0] = %+v", view.Buckets[0])
	}
	if view.Buckets[1].Key != "2025-07" || !view.Buckets[1].Kg.Equal(kg(2000)) {
		t.Errorf("bucket[1] = %+v", view.Buckets[1])
	}
}

func TestAnalyticsPickerCost(t *testing.T) {
	l := testLedger()
	day := NewDate(2025, time.July, 5)
	h := NewHarvest(day, Blueberries, Frozen, 1000, 25000, "")
	l.harvests = append(l.harvests, h)
	h2 := NewHarvest(day.Add(1), Raspberries, Frozen, 1000, 30000, "")
	l.harvests = append(l.harvests, h2)

	view := l.Analytics(NewRange(day, day.Add(1)), Weekly, nil)
	if view.PickerCost != 55000 {
		t.Errorf("PickerCost = %d, want 55000", view.PickerCost)
	}
}

func TestAnalyticsEmptyWindow(t *testing.T) {
	l := testLedger()
	view := l.Analytics(NewRange(NewDate(2025, time.July, 1), NewDate(2025, time.July, 7)), Weekly, nil)
	if view.Count != 0 || !view.TotalKg.IsZero() || !view.AvgKg.IsZero() {
		t.Errorf("empty log produced %+v", view)
	}
	if !view.First.IsZero() || !view.Last.IsZero() {
		t.Errorf("First/Last set on empty window: %v/%v", view.First, view.Last)
	}
}

func TestRange(t *testing.T) {
	from := NewDate(2025, time.July, 1)
	to := NewDate(2025, time.July, 10)
	r := NewRange(to, from) // backwards, must swap
	if r.From != from || r.To != to {
		t.Errorf("NewRange did not swap: %+v", r)
	}
	if !r.Contains(from) || !r.Contains(to) {
		t.Error("boundaries not contained")
	}
	if r.Contains(from.Add(-1)) || r.Contains(to.Add(1)) {
		t.Error("outside days contained")
	}
	if n := len(LastDays(7).From.Days(LastDays(7).To)); n != 7 {
		t.Errorf("LastDays(7) spans %d days", n)
	}
}

func TestParsePeriod(t *testing.T) {
	for input, want := range map[string]Period{"week": Weekly, "month": Monthly, "year": Yearly} {
		got, err := ParsePeriod(input)
		if err != nil || got != want {
			t.Errorf("ParsePeriod(%q) = %v, %v", input, got, err)
		}
	}
	if _, err := ParsePeriod("decade"); err == nil {
		t.Error("unknown period accepted")
	}
}
