package berrytally

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// RecordType is a typed string identifying a record kind in the log.
type RecordType string

const (
	RecHarvest       RecordType = "harvest"
	RecBulkAction    RecordType = "bulk-action"
	RecPackage       RecordType = "package"
	RecPackageAction RecordType = "package-action"
)

// Record is the common interface of the four log record kinds.
type Record interface {
	What() RecordType // What returns the record kind, e.g. "harvest".
	When() Date       // When returns the calendar day of the record.
}

// ActionKind discriminates why bulk stock or packaged stock decreased.
type ActionKind string

const (
	// Remove is a withdrawal without a sale (own consumption, spoilage...).
	Remove ActionKind = "remove"
	// Sold is a sale; records of this kind feed the sales aggregation.
	Sold ActionKind = "sold"
	// Pack marks bulk stock converted into packages. Emitted only by
	// CreatePackages, never entered directly.
	Pack ActionKind = "pack"
)

// ParseActionKind parses a user-entered action kind. Pack is not accepted
// here: it is reserved for package creation.
func ParseActionKind(s string) (ActionKind, error) {
	switch ActionKind(s) {
	case Remove:
		return Remove, nil
	case Sold:
		return Sold, nil
	}
	return "", fmt.Errorf("unknown action %q, want %q or %q", s, Remove, Sold)
}

// HarvestRecord is the only source of positive bulk stock: a day's pick of
// one item, split between the fresh and frozen stores.
type HarvestRecord struct {
	ID          string
	Date        Date
	Item        Item
	TotalGrams  Grams
	FreshGrams  Grams
	FrozenGrams Grams
	PickerCost  PYG
	Note        string
}

func (h HarvestRecord) What() RecordType { return RecHarvest }
func (h HarvestRecord) When() Date       { return h.Date }

// NewHarvest builds a harvest record dated on day, putting the whole weight
// into the store selected by product.
func NewHarvest(day Date, item Item, product Product, weight Grams, pickerCost PYG, note string) HarvestRecord {
	h := HarvestRecord{
		ID:         uuid.NewString(),
		Date:       day,
		Item:       item,
		TotalGrams: weight,
		PickerCost: pickerCost,
		Note:       note,
	}
	if product == Fresh {
		h.FreshGrams = weight
	} else {
		h.FrozenGrams = weight
	}
	return h
}

// Validate checks the record invariants before it is appended.
func (h HarvestRecord) Validate() error {
	if _, err := ParseItem(string(h.Item)); err != nil {
		return invalidf("harvest item", "%v", err)
	}
	if h.Date.IsZero() {
		return invalidf("harvest date", "missing")
	}
	if h.Date.After(Today()) {
		return invalidf("harvest date", "%s is in the future", h.Date)
	}
	if h.FreshGrams < 0 || h.FrozenGrams < 0 {
		return invalidf("harvest weight", "negative split")
	}
	if h.TotalGrams <= 0 {
		return invalidf("harvest weight", "must be positive, got %s", h.TotalGrams)
	}
	if h.FreshGrams+h.FrozenGrams != h.TotalGrams {
		return invalidf("harvest weight", "fresh %s + frozen %s != total %s",
			h.FreshGrams, h.FrozenGrams, h.TotalGrams)
	}
	return nil
}

// BulkActionRecord is a negative adjustment to the bulk stock of one
// item/product. PriceSnapshot is the per-kilogram price at action time; sales
// valuation prefers it over the live price table.
type BulkActionRecord struct {
	ID            string
	Date          Date
	Item          Item
	Product       Product
	Kind          ActionKind
	AmountGrams   Grams
	Note          string
	PriceSnapshot PYG
}

func (a BulkActionRecord) What() RecordType { return RecBulkAction }
func (a BulkActionRecord) When() Date       { return a.Date }

// Validate checks the record invariants before it is appended.
func (a BulkActionRecord) Validate() error {
	if _, err := ParseItem(string(a.Item)); err != nil {
		return invalidf("action item", "%v", err)
	}
	if _, err := ParseProduct(string(a.Product)); err != nil {
		return invalidf("action product", "%v", err)
	}
	switch a.Kind {
	case Remove, Sold, Pack:
	default:
		return invalidf("action kind", "unknown kind %q", a.Kind)
	}
	if a.AmountGrams <= 0 {
		return invalidf("action amount", "must be positive, got %s", a.AmountGrams)
	}
	return nil
}

// Mix is a package composition: grams of each item in a single bag.
type Mix map[Item]Grams

// Sum returns the total grams of one bag.
func (m Mix) Sum() Grams {
	var total Grams
	for _, g := range m {
		total += g
	}
	return total
}

// Signature returns the canonical, order-independent encoding of the mix:
// "item:grams" pairs sorted by item and joined with "|". Two packages with
// the same signature (and product and size) are fungible.
func (m Mix) Signature() string {
	keys := slices.Sorted(maps.Keys(m))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s:%d", k, m[k]))
	}
	return strings.Join(parts, "|")
}

// Label returns a compact human form, e.g. "blueberries 300g, raspberries 200g".
func (m Mix) Label() string {
	keys := slices.Sorted(maps.Keys(m))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %d g", k, m[k]))
	}
	return strings.Join(parts, ", ")
}

// ParseMixSignature rebuilds a Mix from its canonical signature.
func ParseMixSignature(sig string) (Mix, error) {
	mix := Mix{}
	for part := range strings.SplitSeq(sig, "|") {
		name, grams, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("invalid mix signature part %q", part)
		}
		item, err := ParseItem(name)
		if err != nil {
			return nil, fmt.Errorf("invalid mix signature: %w", err)
		}
		g, err := ParseGrams(grams)
		if err != nil {
			return nil, fmt.Errorf("invalid mix signature: %w", err)
		}
		mix[item] = g
	}
	return mix, nil
}

// PackageRecord is the creation of count identical bags, each composed per
// Mix. CostPerBag is snapshotted from the price table at creation time.
type PackageRecord struct {
	ID         string
	Date       Date
	Product    Product
	SizeGrams  Grams
	Count      int
	Mix        Mix
	CostPerBag PYG
}

func (p PackageRecord) What() RecordType { return RecPackage }
func (p PackageRecord) When() Date       { return p.Date }

// Key returns the group key this package aggregates under.
func (p PackageRecord) Key() GroupKey {
	return GroupKey{Product: p.Product, SizeGrams: p.SizeGrams, Signature: p.Mix.Signature()}
}

// Validate checks the record invariants before it is appended.
func (p PackageRecord) Validate() error {
	if _, err := ParseProduct(string(p.Product)); err != nil {
		return invalidf("package product", "%v", err)
	}
	if p.SizeGrams <= 0 {
		return invalidf("package size", "must be positive, got %s", p.SizeGrams)
	}
	if p.Count < 1 {
		return invalidf("package count", "must be at least 1, got %d", p.Count)
	}
	if len(p.Mix) == 0 {
		return invalidf("package mix", "empty")
	}
	for item, g := range p.Mix {
		if _, err := ParseItem(string(item)); err != nil {
			return invalidf("package mix", "%v", err)
		}
		if g <= 0 {
			return invalidf("package mix", "%s amount must be positive, got %s", item, g)
		}
	}
	if sum := p.Mix.Sum(); sum != p.SizeGrams {
		return invalidf("package mix", "mix sums to %s, want bag size %s", sum, p.SizeGrams)
	}
	return nil
}

// PackageActionRecord is the consumption of count bags from one package
// group. PriceSnapshot is a per-kilogram price derived from the mix and the
// price table at action time (not a per-bag price).
type PackageActionRecord struct {
	ID            string
	Date          Date
	Product       Product
	SizeGrams     Grams
	MixSignature  string
	Kind          ActionKind
	Count         int
	Note          string
	PriceSnapshot PYG
}

func (a PackageActionRecord) What() RecordType { return RecPackageAction }
func (a PackageActionRecord) When() Date       { return a.Date }

// Key returns the group key this action applies to.
func (a PackageActionRecord) Key() GroupKey {
	return GroupKey{Product: a.Product, SizeGrams: a.SizeGrams, Signature: a.MixSignature}
}

// Validate checks the record invariants before it is appended.
func (a PackageActionRecord) Validate() error {
	if _, err := ParseProduct(string(a.Product)); err != nil {
		return invalidf("package action product", "%v", err)
	}
	switch a.Kind {
	case Remove, Sold:
	default:
		return invalidf("package action kind", "unknown kind %q", a.Kind)
	}
	if a.SizeGrams <= 0 {
		return invalidf("package action size", "must be positive, got %s", a.SizeGrams)
	}
	if a.Count < 1 {
		return invalidf("package action count", "must be at least 1, got %d", a.Count)
	}
	if _, err := ParseMixSignature(a.MixSignature); err != nil {
		return invalidf("package action mix", "%v", err)
	}
	return nil
}

// GroupKey identifies a line of fungible packaged inventory.
type GroupKey struct {
	Product   Product
	SizeGrams Grams
	Signature string
}

// String encodes the key as "product|size|signature".
func (k GroupKey) String() string {
	return fmt.Sprintf("%s|%d|%s", k.Product, k.SizeGrams, k.Signature)
}

// ParseGroupKey decodes a "product|size|signature" key.
func ParseGroupKey(s string) (GroupKey, error) {
	product, rest, ok := strings.Cut(s, "|")
	if !ok {
		return GroupKey{}, fmt.Errorf("invalid group key %q", s)
	}
	size, sig, ok := strings.Cut(rest, "|")
	if !ok {
		return GroupKey{}, fmt.Errorf("invalid group key %q", s)
	}
	p, err := ParseProduct(product)
	if err != nil {
		return GroupKey{}, fmt.Errorf("invalid group key: %w", err)
	}
	g, err := ParseGrams(size)
	if err != nil {
		return GroupKey{}, fmt.Errorf("invalid group key: %w", err)
	}
	if _, err := ParseMixSignature(sig); err != nil {
		return GroupKey{}, fmt.Errorf("invalid group key: %w", err)
	}
	return GroupKey{Product: p, SizeGrams: g, Signature: sig}, nil
}
