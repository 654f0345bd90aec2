package berrytally

import (
	"encoding/csv"
	"io"
	"strconv"
)

// this file contains the CSV export formats. They are meant for spreadsheets,
// not for re-import: the JSONL log and the backup payload are the only
// formats the engine reads back.

// ExportHarvestsCSV writes every harvest as one CSV row.
func (l *Ledger) ExportHarvestsCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := []string{"record_type", "date", "item", "weight_total_g", "fresh_g", "frozen_g", "picker_pyg", "note"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, h := range l.Harvests() {
		row := []string{
			"harvest",
			h.Date.String(),
			string(h.Item),
			strconv.FormatInt(int64(h.TotalGrams), 10),
			strconv.FormatInt(int64(h.FreshGrams), 10),
			strconv.FormatInt(int64(h.FrozenGrams), 10),
			strconv.FormatInt(int64(h.PickerCost), 10),
			h.Note,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportSalesCSV writes the rows of an already-computed sales view, so the
// exported file matches exactly what the sales report displayed, filters
// included.
func ExportSalesCSV(w io.Writer, view SalesView) error {
	cw := csv.NewWriter(w)
	header := []string{"record_type", "date", "item", "product", "amount_kg", "price_pyg_kg", "value_pyg", "note"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range view.Rows {
		record := []string{
			"sale",
			row.Date.String(),
			row.Label,
			string(row.Product),
			row.Kg.String(),
			strconv.FormatInt(int64(row.UnitPrice), 10),
			strconv.FormatInt(int64(row.Value), 10),
			row.Note,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
