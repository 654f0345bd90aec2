package berrytally

// helpers shared by the tests of the root package.

// testLedger builds a ledger with prices preset for every item, so valuation
// paths are exercised by default.
func testLedger() *Ledger {
	l := NewLedger()
	l.prices = Prices{
		Blueberries:  {Fresh: 80000, Frozen: 70000},
		Mulberries:   {Fresh: 60000, Frozen: 50000},
		Raspberries:  {Fresh: 90000, Frozen: 80000},
		Blackberries: {Fresh: 85000, Frozen: 75000},
	}
	return l
}

// harvestOn appends a harvest record directly, bypassing the "no future
// dates" gate so tests can build logs at fixed dates.
func harvestOn(l *Ledger, day Date, item Item, product Product, weight Grams) HarvestRecord {
	h := NewHarvest(day, item, product, weight, 0, "")
	l.harvests = append(l.harvests, h)
	sortByDate(l.harvests)
	return h
}

// bulkOn appends a bulk action record directly at a fixed date.
func bulkOn(l *Ledger, day Date, item Item, product Product, kind ActionKind, amount Grams, snapshot PYG) BulkActionRecord {
	a := BulkActionRecord{
		ID: "test-" + string(item), Date: day,
		Item: item, Product: product, Kind: kind,
		AmountGrams: amount, PriceSnapshot: snapshot,
	}
	l.bulkActions = append(l.bulkActions, a)
	sortByDate(l.bulkActions)
	return a
}

// kg builds a Kilograms literal from grams for expectations.
func kg(grams int64) Kilograms { return Grams(grams).Kg() }
