package berrytally

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// The event log is persisted as JSONL: one record per line, identified by a
// "record" discriminator. Lines are written through the jsonObjectWriter so
// the field order is stable and the file diffs cleanly.

// MarshalJSON implements the json.Marshaler interface for HarvestRecord.
func (h HarvestRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("record", h.What())
	w.Append("id", h.ID)
	w.Append("date", h.Date)
	w.Append("item", h.Item)
	w.Append("total_g", h.TotalGrams)
	w.Append("fresh_g", h.FreshGrams)
	w.Append("frozen_g", h.FrozenGrams)
	w.Optional("picker_pyg", h.PickerCost)
	w.Optional("note", h.Note)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for BulkActionRecord.
func (a BulkActionRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("record", a.What())
	w.Append("id", a.ID)
	w.Append("date", a.Date)
	w.Append("item", a.Item)
	w.Append("product", a.Product)
	w.Append("action", a.Kind)
	w.Append("amount_g", a.AmountGrams)
	w.Optional("note", a.Note)
	w.Optional("price_snapshot", a.PriceSnapshot)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for PackageRecord.
func (p PackageRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("record", p.What())
	w.Append("id", p.ID)
	w.Append("date", p.Date)
	w.Append("product", p.Product)
	w.Append("size_g", p.SizeGrams)
	w.Append("count", p.Count)
	w.Append("mix", p.Mix)
	w.Optional("cost_per_bag", p.CostPerBag)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for PackageActionRecord.
func (a PackageActionRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("record", a.What())
	w.Append("id", a.ID)
	w.Append("date", a.Date)
	w.Append("product", a.Product)
	w.Append("size_g", a.SizeGrams)
	w.Append("mix_sig", a.MixSignature)
	w.Append("action", a.Kind)
	w.Append("count", a.Count)
	w.Optional("note", a.Note)
	w.Optional("price_snapshot", a.PriceSnapshot)
	return w.MarshalJSON()
}

type harvestLine struct {
	ID         string `json:"id"`
	Date       Date   `json:"date"`
	Item       Item   `json:"item"`
	TotalGrams Grams  `json:"total_g"`
	FreshG     Grams  `json:"fresh_g"`
	FrozenG    Grams  `json:"frozen_g"`
	PickerPYG  PYG    `json:"picker_pyg"`
	Note       string `json:"note"`
}

type bulkActionLine struct {
	ID            string     `json:"id"`
	Date          Date       `json:"date"`
	Item          Item       `json:"item"`
	Product       Product    `json:"product"`
	Action        ActionKind `json:"action"`
	AmountGrams   Grams      `json:"amount_g"`
	Note          string     `json:"note"`
	PriceSnapshot PYG        `json:"price_snapshot"`
}

type packageLine struct {
	ID         string  `json:"id"`
	Date       Date    `json:"date"`
	Product    Product `json:"product"`
	SizeGrams  Grams   `json:"size_g"`
	Count      int     `json:"count"`
	Mix        Mix     `json:"mix"`
	CostPerBag PYG     `json:"cost_per_bag"`
}

type packageActionLine struct {
	ID            string     `json:"id"`
	Date          Date       `json:"date"`
	Product       Product    `json:"product"`
	SizeGrams     Grams      `json:"size_g"`
	MixSignature  string     `json:"mix_sig"`
	Action        ActionKind `json:"action"`
	Count         int        `json:"count"`
	Note          string     `json:"note"`
	PriceSnapshot PYG        `json:"price_snapshot"`
}

// EncodeRecord writes one record as a single JSONL line.
func EncodeRecord(w io.Writer, r Record) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("could not encode %s record: %w", r.What(), err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return err
	}
	return nil
}

// EncodeLedger writes the whole event log as JSONL, one collection after the
// other, each in chronological order.
func (l *Ledger) EncodeLedger(w io.Writer) error {
	for _, h := range l.Harvests() {
		if err := EncodeRecord(w, h); err != nil {
			return err
		}
	}
	for _, a := range l.BulkActions() {
		if err := EncodeRecord(w, a); err != nil {
			return err
		}
	}
	for _, p := range l.Packages() {
		if err := EncodeRecord(w, p); err != nil {
			return err
		}
	}
	for _, a := range l.PackageActions() {
		if err := EncodeRecord(w, a); err != nil {
			return err
		}
	}
	return nil
}

// DecodeLedger reads a JSONL event log, dispatching each line into its
// collection, and returns the ledger with all collections chronologically
// sorted. The price table is left zeroed; see DecodePrices.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var identifier struct {
			Record RecordType `json:"record"`
		}
		if err := json.Unmarshal(line, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record in line %q: %w", string(line), err)
		}
		switch identifier.Record {
		case RecHarvest:
			var t harvestLine
			if err := json.Unmarshal(line, &t); err != nil {
				return nil, fmt.Errorf("invalid harvest line: %w", err)
			}
			ledger.harvests = append(ledger.harvests, HarvestRecord{
				ID: t.ID, Date: t.Date, Item: t.Item,
				TotalGrams: t.TotalGrams, FreshGrams: t.FreshG, FrozenGrams: t.FrozenG,
				PickerCost: t.PickerPYG, Note: t.Note,
			})
		case RecBulkAction:
			var t bulkActionLine
			if err := json.Unmarshal(line, &t); err != nil {
				return nil, fmt.Errorf("invalid bulk action line: %w", err)
			}
			ledger.bulkActions = append(ledger.bulkActions, BulkActionRecord{
				ID: t.ID, Date: t.Date, Item: t.Item, Product: t.Product,
				Kind: t.Action, AmountGrams: t.AmountGrams,
				Note: t.Note, PriceSnapshot: t.PriceSnapshot,
			})
		case RecPackage:
			var t packageLine
			if err := json.Unmarshal(line, &t); err != nil {
				return nil, fmt.Errorf("invalid package line: %w", err)
			}
			ledger.packages = append(ledger.packages, PackageRecord{
				ID: t.ID, Date: t.Date, Product: t.Product,
				SizeGrams: t.SizeGrams, Count: t.Count, Mix: t.Mix,
				CostPerBag: t.CostPerBag,
			})
		case RecPackageAction:
			var t packageActionLine
			if err := json.Unmarshal(line, &t); err != nil {
				return nil, fmt.Errorf("invalid package action line: %w", err)
			}
			ledger.packActions = append(ledger.packActions, PackageActionRecord{
				ID: t.ID, Date: t.Date, Product: t.Product,
				SizeGrams: t.SizeGrams, MixSignature: t.MixSignature,
				Kind: t.Action, Count: t.Count,
				Note: t.Note, PriceSnapshot: t.PriceSnapshot,
			})
		default:
			return nil, fmt.Errorf("unknown record type %q in line %q", identifier.Record, string(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	sortByDate(ledger.harvests)
	sortByDate(ledger.bulkActions)
	sortByDate(ledger.packages)
	sortByDate(ledger.packActions)
	return ledger, nil
}

// EncodePrices writes the price table as an indented JSON object keyed by
// item.
func EncodePrices(w io.Writer, p Prices) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

// DecodePrices reads a price table, normalizing every amount onto the price
// step grid and filling missing catalog items with zero prices.
func DecodePrices(r io.Reader) (Prices, error) {
	p := Prices{}
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("invalid price table: %w", err)
	}
	for item := range Items() {
		if _, ok := p[item]; !ok {
			p[item] = ItemPrices{}
		}
	}
	p.normalize()
	return p, nil
}
