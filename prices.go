package berrytally

import "github.com/shopspring/decimal"

// ItemPrices holds the current per-kilogram unit prices of one item in both
// product states.
type ItemPrices struct {
	Fresh  PYG `json:"fresh_pyg_kg"`
	Frozen PYG `json:"frozen_pyg_kg"`
}

// Prices maps every catalog item to its current unit prices. Prices are
// quoted per kilogram in multiples of PriceStep; a missing entry means the
// price is simply 0, never an error.
type Prices map[Item]ItemPrices

// NewPrices returns a table with every catalog item set to zero.
func NewPrices() Prices {
	p := Prices{}
	for item := range Items() {
		p[item] = ItemPrices{}
	}
	return p
}

// Price returns the current unit price for item/product, 0 when unset.
func (p Prices) Price(item Item, product Product) PYG {
	entry, ok := p[item]
	if !ok {
		return 0
	}
	if product == Fresh {
		return entry.Fresh
	}
	return entry.Frozen
}

// set stores an already-normalized price.
func (p Prices) set(item Item, product Product, price PYG) {
	entry := p[item]
	if product == Fresh {
		entry.Fresh = price
	} else {
		entry.Frozen = price
	}
	p[item] = entry
}

// normalize rounds every stored price to the price step. Tables written by
// older versions can carry unrounded amounts; reading them through normalize
// keeps every valuation on the step grid.
func (p Prices) normalize() {
	for item, entry := range p {
		entry.Fresh = entry.Fresh.RoundToStep(PriceStep)
		entry.Frozen = entry.Frozen.RoundToStep(PriceStep)
		p[item] = entry
	}
}

// BagCost values one bag of the given mix at the current prices of product:
// sum over the mix of grams/1000 x unit price, rounded to the guaraní.
func (p Prices) BagCost(mix Mix, product Product) PYG {
	var cost PYG
	for item, grams := range mix {
		cost += p.Price(item, product).MulKg(grams.Kg())
	}
	return cost
}

// PerKg values one kilogram of the given mix at the current prices of
// product. This is the unit price snapshotted on package actions.
func (p Prices) PerKg(mix Mix, product Product) PYG {
	size := mix.Sum()
	if size <= 0 {
		return 0
	}
	cost := decimal.NewFromInt(int64(p.BagCost(mix, product)))
	return PYG(cost.Div(size.Kg().Decimal()).Round(0).IntPart())
}
