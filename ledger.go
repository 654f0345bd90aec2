package berrytally

import (
	"fmt"
	"iter"
	"sort"

	"github.com/google/uuid"
)

// Ledger owns the four append-only record collections and the price table.
// It is constructed once at process start and passed to every operation and
// view; there is no ambient state.
//
// Collections only grow by append (harvests additionally support explicit
// deletion by id). Within each collection records are kept in chronological
// order; records on the same day keep their insertion order.
type Ledger struct {
	harvests    []HarvestRecord
	bulkActions []BulkActionRecord
	packages    []PackageRecord
	packActions []PackageActionRecord
	prices      Prices

	onMutate func() // invoked after every committed mutation, see OnMutate
}

// NewLedger creates an empty ledger with a zeroed price table.
func NewLedger() *Ledger {
	return &Ledger{prices: NewPrices()}
}

// OnMutate registers a hook called after every committed mutation (appends,
// harvest deletion, price updates, restore). Callers can use it to persist
// the log immediately, one durable write per user action.
func (l *Ledger) OnMutate(fn func()) { l.onMutate = fn }

func (l *Ledger) mutated() {
	if l.onMutate != nil {
		l.onMutate()
	}
}

// Prices returns the live price table.
func (l *Ledger) Prices() Prices { return l.prices }

// SetPrice parses raw guaraní input, normalizes it to the price step, stores
// it and returns the normalized price. Unintelligible input soft-fails to 0.
func (l *Ledger) SetPrice(item Item, product Product, raw string) PYG {
	price := ParsePYG(raw)
	l.prices.set(item, product, price)
	l.mutated()
	return price
}

// AppendHarvest validates and appends a harvest record, returning its id.
func (l *Ledger) AppendHarvest(h HarvestRecord) (string, error) {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	if err := h.Validate(); err != nil {
		return "", err
	}
	l.harvests = append(l.harvests, h)
	sortByDate(l.harvests)
	l.mutated()
	return h.ID, nil
}

// DeleteHarvest removes the harvest with the given id. Harvests are the only
// records that support deletion; callers are expected to recompute any
// projection they hold afterwards.
func (l *Ledger) DeleteHarvest(id string) error {
	for i, h := range l.harvests {
		if h.ID == id {
			l.harvests = append(l.harvests[:i], l.harvests[i+1:]...)
			l.mutated()
			return nil
		}
	}
	return fmt.Errorf("harvest %q: %w", id, ErrNotFound)
}

// AppendBulkAction records a user-entered withdrawal or sale of bulk stock,
// dated today, with the current unit price snapshotted on the record. The
// pack kind is reserved for CreatePackages and rejected here.
func (l *Ledger) AppendBulkAction(item Item, product Product, kind ActionKind, amount Grams, note string) (string, error) {
	if kind == Pack {
		return "", invalidf("action kind", "%q is reserved for package creation", Pack)
	}
	rec := BulkActionRecord{
		ID:            uuid.NewString(),
		Date:          Today(),
		Item:          item,
		Product:       product,
		Kind:          kind,
		AmountGrams:   amount,
		Note:          note,
		PriceSnapshot: l.prices.Price(item, product),
	}
	if err := rec.Validate(); err != nil {
		return "", err
	}
	l.bulkActions = append(l.bulkActions, rec)
	sortByDate(l.bulkActions)
	l.mutated()
	return rec.ID, nil
}

// CreatePackages converts bulk stock into count identical bags of the given
// size and mix. It appends one package record carrying the per-bag cost
// snapshot plus, per mix item, one pack bulk action debiting
// grams x count from that item's bulk stock.
//
// The fan-out is atomic: every record is validated before any is appended, so
// the log never holds a package without its matching stock debits.
func (l *Ledger) CreatePackages(size Grams, mix Mix, count int, product Product) (string, error) {
	day := Today()
	pkg := PackageRecord{
		ID:         uuid.NewString(),
		Date:       day,
		Product:    product,
		SizeGrams:  size,
		Count:      count,
		Mix:        mix,
		CostPerBag: l.prices.BagCost(mix, product),
	}
	if err := pkg.Validate(); err != nil {
		return "", err
	}
	debits := make([]BulkActionRecord, 0, len(mix))
	for item, gramsPerBag := range mix {
		rec := BulkActionRecord{
			ID:          uuid.NewString(),
			Date:        day,
			Item:        item,
			Product:     product,
			Kind:        Pack,
			AmountGrams: gramsPerBag * Grams(count),
		}
		if err := rec.Validate(); err != nil {
			return "", err
		}
		debits = append(debits, rec)
	}
	l.packages = append(l.packages, pkg)
	sortByDate(l.packages)
	l.bulkActions = append(l.bulkActions, debits...)
	sortByDate(l.bulkActions)
	l.mutated()
	return pkg.ID, nil
}

// AppendPackageAction consumes count bags from the group identified by key.
// The request is gated on the group's current availability: asking for more
// bags than the group holds returns an InsufficientError carrying the actual
// available count, and the log is left untouched.
//
// The recorded price snapshot is the current per-kilogram value of the
// group's mix.
func (l *Ledger) AppendPackageAction(key GroupKey, kind ActionKind, count int, note string) (string, error) {
	group, ok := l.PackageGroups()[key]
	if !ok {
		return "", fmt.Errorf("package group %q: %w", key, ErrNotFound)
	}
	if count > group.AvailableCount {
		return "", &InsufficientError{Requested: count, Available: group.AvailableCount}
	}
	rec := PackageActionRecord{
		ID:            uuid.NewString(),
		Date:          Today(),
		Product:       key.Product,
		SizeGrams:     key.SizeGrams,
		MixSignature:  key.Signature,
		Kind:          kind,
		Count:         count,
		Note:          note,
		PriceSnapshot: l.prices.PerKg(group.Mix, key.Product),
	}
	if err := rec.Validate(); err != nil {
		return "", err
	}
	l.packActions = append(l.packActions, rec)
	sortByDate(l.packActions)
	l.mutated()
	return rec.ID, nil
}

// Harvests iterates the harvest collection in chronological order.
func (l *Ledger) Harvests() iter.Seq2[int, HarvestRecord] {
	return func(yield func(int, HarvestRecord) bool) {
		for i, h := range l.harvests {
			if !yield(i, h) {
				return
			}
		}
	}
}

// BulkActions iterates the bulk action collection in chronological order.
func (l *Ledger) BulkActions() iter.Seq2[int, BulkActionRecord] {
	return func(yield func(int, BulkActionRecord) bool) {
		for i, a := range l.bulkActions {
			if !yield(i, a) {
				return
			}
		}
	}
}

// Packages iterates the package collection in chronological order.
func (l *Ledger) Packages() iter.Seq2[int, PackageRecord] {
	return func(yield func(int, PackageRecord) bool) {
		for i, p := range l.packages {
			if !yield(i, p) {
				return
			}
		}
	}
}

// PackageActions iterates the package action collection in chronological order.
func (l *Ledger) PackageActions() iter.Seq2[int, PackageActionRecord] {
	return func(yield func(int, PackageActionRecord) bool) {
		for i, a := range l.packActions {
			if !yield(i, a) {
				return
			}
		}
	}
}

// IsEmpty reports whether the ledger holds no records and only zero prices.
func (l *Ledger) IsEmpty() bool {
	if len(l.harvests) > 0 || len(l.bulkActions) > 0 ||
		len(l.packages) > 0 || len(l.packActions) > 0 {
		return false
	}
	for item := range Items() {
		if l.prices.Price(item, Fresh) != 0 || l.prices.Price(item, Frozen) != 0 {
			return false
		}
	}
	return true
}

// sortByDate stable-sorts a record slice by date, preserving insertion order
// within a day.
func sortByDate[R Record](records []R) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].When().Before(records[j].When())
	})
}
