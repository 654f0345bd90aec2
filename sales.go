package berrytally

import "sort"

// PackagedLabel is the selector and breakdown label grouping all packaged
// sales, as opposed to sales of one bulk item.
const PackagedLabel = "packaged"

// SalesFilter narrows the sales view. Zero values mean "all".
type SalesFilter struct {
	// Month restricts to one calendar month bucket, e.g. "2025-07".
	Month string
	// Selector is an item name to keep only that item's bulk sales, or
	// PackagedLabel to keep only packaged sales.
	Selector string
}

// SaleRow is one sold event, bulk or packaged, in the unified sales view.
type SaleRow struct {
	Date      Date
	Label     string // item name for bulk sales, PackagedLabel for packaged
	Product   Product
	Kg        Kilograms
	UnitPrice PYG // per kilogram
	Value     PYG
	Note      string
}

// SalesTotal accumulates weight and value for one breakdown bucket.
type SalesTotal struct {
	Kg    Kilograms
	Value PYG
}

// SalesView is the aggregate over all sold events matching a filter.
type SalesView struct {
	Rows       []SaleRow
	TotalKg    Kilograms
	TotalValue PYG
	ByMonth    map[string]SalesTotal
	ByLabel    map[string]SalesTotal
}

// Sales filters sold events out of both the bulk action and the package
// action logs and values each one.
//
// Unit price is the record's snapshot when one was taken, otherwise the live
// price table (for bulk) or the mix valued at current prices (for packaged).
// A snapshotless historical sale is therefore revalued whenever prices
// change; this drift is preserved deliberately, see docs/sales.md.
//
// A packaged sale weighs size/1000 x count kilograms: the bag size times
// bags sold, not the underlying mix weights individually.
func (l *Ledger) Sales(filter SalesFilter) SalesView {
	view := SalesView{
		ByMonth: map[string]SalesTotal{},
		ByLabel: map[string]SalesTotal{},
	}

	for _, a := range l.BulkActions() {
		if a.Kind != Sold {
			continue
		}
		if filter.Selector != "" && filter.Selector != string(a.Item) {
			continue
		}
		if filter.Month != "" && filter.Month != a.Date.MonthKey() {
			continue
		}
		price := a.PriceSnapshot
		if price == 0 {
			price = l.prices.Price(a.Item, a.Product)
		}
		kg := a.AmountGrams.Kg()
		view.Rows = append(view.Rows, SaleRow{
			Date:      a.Date,
			Label:     string(a.Item),
			Product:   a.Product,
			Kg:        kg,
			UnitPrice: price,
			Value:     price.MulKg(kg),
			Note:      a.Note,
		})
	}

	for _, a := range l.PackageActions() {
		if a.Kind != Sold {
			continue
		}
		if filter.Selector != "" && filter.Selector != PackagedLabel {
			continue
		}
		if filter.Month != "" && filter.Month != a.Date.MonthKey() {
			continue
		}
		price := a.PriceSnapshot
		if price == 0 {
			if mix, err := ParseMixSignature(a.MixSignature); err == nil {
				price = l.prices.PerKg(mix, a.Product)
			}
		}
		kg := KgOf(a.SizeGrams.Kg().Decimal().Mul(intDecimal(a.Count)))
		view.Rows = append(view.Rows, SaleRow{
			Date:      a.Date,
			Label:     PackagedLabel,
			Product:   a.Product,
			Kg:        kg,
			UnitPrice: price,
			Value:     price.MulKg(kg),
			Note:      a.Note,
		})
	}

	sort.SliceStable(view.Rows, func(i, j int) bool {
		return view.Rows[i].Date.Before(view.Rows[j].Date)
	})

	for _, row := range view.Rows {
		view.TotalKg = view.TotalKg.Add(row.Kg)
		view.TotalValue += row.Value

		m := view.ByMonth[row.Date.MonthKey()]
		m.Kg = m.Kg.Add(row.Kg)
		m.Value += row.Value
		view.ByMonth[row.Date.MonthKey()] = m

		b := view.ByLabel[row.Label]
		b.Kg = b.Kg.Add(row.Kg)
		b.Value += row.Value
		view.ByLabel[row.Label] = b
	}
	return view
}

// SaleMonths lists the month buckets that hold at least one sold event,
// newest first. Used to populate the month filter.
func (l *Ledger) SaleMonths() []string {
	seen := map[string]struct{}{}
	for _, a := range l.BulkActions() {
		if a.Kind == Sold {
			seen[a.Date.MonthKey()] = struct{}{}
		}
	}
	for _, a := range l.PackageActions() {
		if a.Kind == Sold {
			seen[a.Date.MonthKey()] = struct{}{}
		}
	}
	months := make([]string, 0, len(seen))
	for m := range seen {
		months = append(months, m)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return months
}
