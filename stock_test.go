package berrytally

import (
	"testing"
	"time"
)

func TestStockConservation(t *testing.T) {
	l := testLedger()
	day := NewDate(2025, time.July, 1)
	harvestOn(l, day, Blueberries, Frozen, 1800)
	harvestOn(l, day.Add(1), Blueberries, Frozen, 1200)
	harvestOn(l, day.Add(1), Blueberries, Fresh, 500)
	bulkOn(l, day.Add(2), Blueberries, Frozen, Sold, 1000, 70000)
	bulkOn(l, day.Add(3), Blueberries, Frozen, Remove, 500, 0)

	v := l.Stock()[Blueberries]
	if !v.FrozenKg.Equal(kg(1500)) {
		t.Errorf("frozen = %s kg, want 1.50", v.FrozenKg)
	}
	if !v.FreshKg.Equal(kg(500)) {
		t.Errorf("fresh = %s kg, want 0.50", v.FreshKg)
	}
	// 1.5 kg frozen at 70000 + 0.5 kg fresh at 80000.
	if v.Value != 105000+40000 {
		t.Errorf("value = %d, want 145000", v.Value)
	}
}

func TestStockClampsAtZero(t *testing.T) {
	l := testLedger()
	day := NewDate(2025, time.July, 1)
	harvestOn(l, day, Raspberries, Frozen, 500)
	bulkOn(l, day.Add(1), Raspberries, Frozen, Remove, 2000, 0)

	v := l.Stock()[Raspberries]
	if !v.FrozenKg.IsZero() {
		t.Errorf("over-withdrawal left %s kg, want 0", v.FrozenKg)
	}
	if v.Value != 0 {
		t.Errorf("value = %d, want 0", v.Value)
	}
}

func TestStockIsPure(t *testing.T) {
	l := testLedger()
	day := NewDate(2025, time.July, 1)
	harvestOn(l, day, Mulberries, Fresh, 800)
	bulkOn(l, day, Mulberries, Fresh, Sold, 300, 60000)

	first := l.Stock()[Mulberries]
	second := l.Stock()[Mulberries]
	if !first.FreshKg.Equal(second.FreshKg) || first.Value != second.Value {
		t.Errorf("two projections of the same log differ: %+v vs %+v", first, second)
	}
}

func TestStockCoversWholeCatalog(t *testing.T) {
	l := testLedger()
	views := l.Stock()
	for item := range Items() {
		v, ok := views[item]
		if !ok {
			t.Errorf("missing view for %s", item)
			continue
		}
		if v.Harvested {
			t.Errorf("%s reports a harvest on an empty log", item)
		}
		if !v.FrozenKg.IsZero() || !v.FreshKg.IsZero() {
			t.Errorf("%s has non-zero stock on an empty log", item)
		}
	}
}

func TestStockLastHarvest(t *testing.T) {
	l := testLedger()
	old := Today().Add(-10)
	recent := Today().Add(-2)
	harvestOn(l, old, Blackberries, Frozen, 600)
	harvestOn(l, recent, Blackberries, Fresh, 600)

	v := l.Stock()[Blackberries]
	if !v.Harvested {
		t.Fatal("Harvested = false")
	}
	if v.LastDate != recent {
		t.Errorf("LastDate = %v, want %v", v.LastDate, recent)
	}
	if v.DaysSince != 2 {
		t.Errorf("DaysSince = %d, want 2", v.DaysSince)
	}
}

func TestStockTotals(t *testing.T) {
	l := testLedger()
	day := NewDate(2025, time.July, 1)
	harvestOn(l, day, Blueberries, Frozen, 1000)
	harvestOn(l, day, Raspberries, Fresh, 500)

	frozen, fresh, value := StockTotals(l.Stock())
	if !frozen.Equal(kg(1000)) || !fresh.Equal(kg(500)) {
		t.Errorf("totals = %s frozen, %s fresh", frozen, fresh)
	}
	// 1 kg frozen blueberries at 70000 + 0.5 kg fresh raspberries at 90000.
	if value != 70000+45000 {
		t.Errorf("value = %d, want 115000", value)
	}
}
