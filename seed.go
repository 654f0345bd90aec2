package berrytally

import "github.com/google/uuid"

// SeedDemo populates an empty ledger with a few days of plausible data:
// starter prices, a week of harvests and two bulk actions. It refuses to
// touch a ledger that already holds anything.
func (l *Ledger) SeedDemo() error {
	if !l.IsEmpty() {
		return invalidf("seed", "ledger is not empty")
	}

	seedPrices := map[Item]ItemPrices{
		Blueberries:  {Fresh: 80000, Frozen: 70000},
		Mulberries:   {Fresh: 60000, Frozen: 50000},
		Raspberries:  {Fresh: 90000, Frozen: 80000},
		Blackberries: {Fresh: 85000, Frozen: 75000},
	}
	for item, p := range seedPrices {
		l.prices[item] = p
	}

	today := Today()
	seedHarvests := []struct {
		daysAgo int
		item    Item
		product Product
		weight  Grams
	}{
		{8, Blueberries, Frozen, 1800},
		{5, Mulberries, Frozen, 1400},
		{5, Mulberries, Fresh, 800},
		{2, Raspberries, Frozen, 1500},
		{1, Blackberries, Frozen, 600},
		{1, Blackberries, Fresh, 600},
		{0, Mulberries, Frozen, 2000},
		{0, Blueberries, Fresh, 900},
	}
	for _, s := range seedHarvests {
		l.harvests = append(l.harvests, NewHarvest(today.Add(-s.daysAgo), s.item, s.product, s.weight, 0, ""))
	}
	sortByDate(l.harvests)

	l.bulkActions = append(l.bulkActions,
		BulkActionRecord{
			ID: uuid.NewString(), Date: today.Add(-1),
			Item: Blueberries, Product: Frozen, Kind: Remove, AmountGrams: 500,
		},
		BulkActionRecord{
			ID: uuid.NewString(), Date: today,
			Item: Blackberries, Product: Fresh, Kind: Sold, AmountGrams: 300,
			PriceSnapshot: l.prices.Price(Blackberries, Fresh),
		},
	)
	sortByDate(l.bulkActions)
	l.mutated()
	return nil
}
