package berrytally

import (
	"fmt"
	"iter"
)

// Item identifies one produce type from the fixed catalog.
type Item string

// The catalog is closed: records referencing any other value are rejected at
// construction time.
const (
	Blueberries  Item = "blueberries"
	Mulberries   Item = "mulberries"
	Raspberries  Item = "raspberries"
	Blackberries Item = "blackberries"
)

var items = []Item{Blueberries, Mulberries, Raspberries, Blackberries}

// Items iterates over the catalog in its fixed display order.
func Items() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for _, it := range items {
			if !yield(it) {
				return
			}
		}
	}
}

func (i Item) String() string { return string(i) }

// ParseItem parses an item identifier.
func ParseItem(s string) (Item, error) {
	for _, it := range items {
		if string(it) == s {
			return it, nil
		}
	}
	return "", fmt.Errorf("unknown item %q", s)
}

// Product is the storage state of an item's stock.
type Product string

const (
	Fresh  Product = "fresh"
	Frozen Product = "frozen"
)

func (p Product) String() string { return string(p) }

// ParseProduct parses a product state.
func ParseProduct(s string) (Product, error) {
	switch Product(s) {
	case Fresh:
		return Fresh, nil
	case Frozen:
		return Frozen, nil
	}
	return "", fmt.Errorf("unknown product %q, want %q or %q", s, Fresh, Frozen)
}
