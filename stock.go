package berrytally

// StockView is the derived bulk stock position of one item: what is on hand
// in each store, what it is worth at current prices, and how stale it is.
type StockView struct {
	Item      Item
	FrozenKg  Kilograms
	FreshKg   Kilograms
	Value     PYG
	LastDate  Date // day of the most recent harvest, zero when none recorded
	DaysSince int  // calendar days from LastDate to today, meaningful only when Harvested
	Harvested bool // false when no harvest was ever recorded for the item
}

// Stock folds the harvest and bulk action logs into the current bulk stock of
// every catalog item. Harvests add weight; every bulk action, whatever its
// kind, subtracts it.
//
// Subtraction is clamped at zero grams per item/product: an over-withdrawal
// in an inconsistent log can empty a store but never drive it negative. The
// clamp is a floor on the projection, not a validation gate at entry time.
//
// Stock is a pure function of the log and the price table: calling it twice
// on an unchanged ledger yields identical views.
func (l *Ledger) Stock() map[Item]StockView {
	type tally struct {
		frozen Grams
		fresh  Grams
		last   Date
	}
	tallies := map[Item]*tally{}
	for item := range Items() {
		tallies[item] = &tally{}
	}
	for _, h := range l.Harvests() {
		t := tallies[h.Item]
		t.frozen += h.FrozenGrams
		t.fresh += h.FreshGrams
		if h.Date.After(t.last) {
			t.last = h.Date
		}
	}
	for _, a := range l.BulkActions() {
		t, ok := tallies[a.Item]
		if !ok {
			continue
		}
		if a.Product == Frozen {
			t.frozen = max(0, t.frozen-a.AmountGrams)
		} else {
			t.fresh = max(0, t.fresh-a.AmountGrams)
		}
	}

	today := Today()
	views := make(map[Item]StockView, len(tallies))
	for item, t := range tallies {
		v := StockView{
			Item:     item,
			FrozenKg: t.frozen.Kg(),
			FreshKg:  t.fresh.Kg(),
		}
		value := l.prices.Price(item, Frozen).MulKg(v.FrozenKg) +
			l.prices.Price(item, Fresh).MulKg(v.FreshKg)
		v.Value = max(0, value)
		if !t.last.IsZero() {
			v.Harvested = true
			v.LastDate = t.last
			v.DaysSince = max(0, today.Sub(t.last))
		}
		views[item] = v
	}
	return views
}

// StockTotals sums the per-item views into overall frozen kg, fresh kg and
// value. Used by the storage report footer.
func StockTotals(views map[Item]StockView) (frozen, fresh Kilograms, value PYG) {
	for _, v := range views {
		frozen = frozen.Add(v.FrozenKg)
		fresh = fresh.Add(v.FreshKg)
		value += v.Value
	}
	return frozen, fresh, value
}
