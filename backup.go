package berrytally

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// BackupMeta identifies a backup payload.
type BackupMeta struct {
	App        string `json:"app"`
	Version    int    `json:"version"`
	ExportedAt string `json:"exportedAt"`
}

// BackupData carries the full contents of the ledger.
type BackupData struct {
	Harvests    []HarvestRecord       `json:"harvests"`
	BulkActions []BulkActionRecord    `json:"bulkActions"`
	Packages    []PackageRecord       `json:"packages"`
	PackActions []PackageActionRecord `json:"packActions"`
	Prices      Prices                `json:"prices"`
}

// Backup is a full-log snapshot: every collection and the price table in one
// self-describing JSON document.
type Backup struct {
	Meta BackupMeta `json:"meta"`
	Data BackupData `json:"data"`
}

// ExportBackup writes a complete snapshot of the ledger.
func (l *Ledger) ExportBackup(w io.Writer) error {
	payload := Backup{
		Meta: BackupMeta{
			App:        "berrytally",
			Version:    DataVersion,
			ExportedAt: time.Now().Format(time.RFC3339),
		},
		Data: BackupData{
			Harvests:    l.harvests,
			BulkActions: l.bulkActions,
			Packages:    l.packages,
			PackActions: l.packActions,
			Prices:      l.prices,
		},
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

// RestoreBackup replaces the whole ledger with the payload's contents. There
// is no merge: the backup wins wholesale, as the last full snapshot of a
// single user's data. An unreadable payload leaves the ledger untouched.
func (l *Ledger) RestoreBackup(r io.Reader) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	var payload backupIn
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	if payload.Data == nil {
		return fmt.Errorf("%w: missing data section", ErrInvalidBackup)
	}
	if payload.Meta.Version > DataVersion {
		return fmt.Errorf("%w: version %d is newer than supported %d", ErrInvalidBackup, payload.Meta.Version, DataVersion)
	}

	restored, err := decodeBackupData(*payload.Data)
	if err != nil {
		return err
	}
	l.harvests = restored.harvests
	l.bulkActions = restored.bulkActions
	l.packages = restored.packages
	l.packActions = restored.packActions
	if restored.prices != nil {
		l.prices = restored.prices
	}
	l.mutated()
	return nil
}

// backupIn mirrors Backup with raw collections, so a malformed record is
// reported per record instead of failing the unmarshal of the whole document.
type backupIn struct {
	Meta BackupMeta         `json:"meta"`
	Data *backupCollections `json:"data"`
}

type backupCollections struct {
	Harvests    []json.RawMessage `json:"harvests"`
	BulkActions []json.RawMessage `json:"bulkActions"`
	Packages    []json.RawMessage `json:"packages"`
	PackActions []json.RawMessage `json:"packActions"`
	Prices      Prices            `json:"prices"`
}

type restoredData struct {
	harvests    []HarvestRecord
	bulkActions []BulkActionRecord
	packages    []PackageRecord
	packActions []PackageActionRecord
	prices      Prices
}

func decodeBackupData(data backupCollections) (restoredData, error) {
	var out restoredData
	for i, raw := range data.Harvests {
		var t harvestLine
		if err := json.Unmarshal(raw, &t); err != nil {
			return out, fmt.Errorf("%w: harvest %d: %v", ErrInvalidBackup, i, err)
		}
		out.harvests = append(out.harvests, HarvestRecord{
			ID: t.ID, Date: t.Date, Item: t.Item,
			TotalGrams: t.TotalGrams, FreshGrams: t.FreshG, FrozenGrams: t.FrozenG,
			PickerCost: t.PickerPYG, Note: t.Note,
		})
	}
	for i, raw := range data.BulkActions {
		var t bulkActionLine
		if err := json.Unmarshal(raw, &t); err != nil {
			return out, fmt.Errorf("%w: bulk action %d: %v", ErrInvalidBackup, i, err)
		}
		out.bulkActions = append(out.bulkActions, BulkActionRecord{
			ID: t.ID, Date: t.Date, Item: t.Item, Product: t.Product,
			Kind: t.Action, AmountGrams: t.AmountGrams,
			Note: t.Note, PriceSnapshot: t.PriceSnapshot,
		})
	}
	for i, raw := range data.Packages {
		var t packageLine
		if err := json.Unmarshal(raw, &t); err != nil {
			return out, fmt.Errorf("%w: package %d: %v", ErrInvalidBackup, i, err)
		}
		out.packages = append(out.packages, PackageRecord{
			ID: t.ID, Date: t.Date, Product: t.Product,
			SizeGrams: t.SizeGrams, Count: t.Count, Mix: t.Mix,
			CostPerBag: t.CostPerBag,
		})
	}
	for i, raw := range data.PackActions {
		var t packageActionLine
		if err := json.Unmarshal(raw, &t); err != nil {
			return out, fmt.Errorf("%w: package action %d: %v", ErrInvalidBackup, i, err)
		}
		out.packActions = append(out.packActions, PackageActionRecord{
			ID: t.ID, Date: t.Date, Product: t.Product,
			SizeGrams: t.SizeGrams, MixSignature: t.MixSignature,
			Kind: t.Action, Count: t.Count,
			Note: t.Note, PriceSnapshot: t.PriceSnapshot,
		})
	}
	if data.Prices != nil {
		for item := range Items() {
			if _, ok := data.Prices[item]; !ok {
				data.Prices[item] = ItemPrices{}
			}
		}
		data.Prices.normalize()
		out.prices = data.Prices
	}
	sortByDate(out.harvests)
	sortByDate(out.bulkActions)
	sortByDate(out.packages)
	sortByDate(out.packActions)
	return out, nil
}
