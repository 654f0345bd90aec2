package berrytally

import (
	"strings"
	"testing"
	"time"
)

func TestEncodeRecordFormat(t *testing.T) {
	h := HarvestRecord{
		ID: "h1", Date: NewDate(2025, time.July, 5), Item: Blueberries,
		TotalGrams: 1800, FrozenGrams: 1800,
	}
	var b strings.Builder
	if err := EncodeRecord(&b, h); err != nil {
		t.Fatal(err)
	}
	want := `{"record":"harvest","id":"h1","date":"2025-07-05","item":"blueberries","total_g":1800,"fresh_g":0,"frozen_g":1800}` + "\n"
	if b.String() != want {
		t.Errorf("encoded line:\n got %s\nwant %s", b.String(), want)
	}
}

func TestEncodeRecordOptionalFields(t *testing.T) {
	a := BulkActionRecord{
		ID: "a1", Date: NewDate(2025, time.July, 5), Item: Blueberries,
		Product: Frozen, Kind: Sold, AmountGrams: 500,
		Note: "market", PriceSnapshot: 70000,
	}
	var b strings.Builder
	if err := EncodeRecord(&b, a); err != nil {
		t.Fatal(err)
	}
	line := b.String()
	if !strings.Contains(line, `"note":"market"`) || !strings.Contains(line, `"price_snapshot":70000`) {
		t.Errorf("optional fields missing: %s", line)
	}

	a.Note, a.PriceSnapshot = "", 0
	b.Reset()
	if err := EncodeRecord(&b, a); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(b.String(), "note") || strings.Contains(b.String(), "price_snapshot") {
		t.Errorf("zero optional fields written: %s", b.String())
	}
}

func TestLedgerRoundTrip(t *testing.T) {
	l := testLedger()
	day := NewDate(2025, time.July, 1)
	harvestOn(l, day, Blueberries, Frozen, 1800)
	bulkOn(l, day.Add(1), Blueberries, Frozen, Sold, 500, 70000)
	l.packages = append(l.packages, PackageRecord{
		ID: "p1", Date: day.Add(2), Product: Frozen, SizeGrams: 500, Count: 4,
		Mix: Mix{Blueberries: 300, Raspberries: 200}, CostPerBag: 37000,
	})
	l.packActions = append(l.packActions, PackageActionRecord{
		ID: "a2", Date: day.Add(3), Product: Frozen, SizeGrams: 500,
		MixSignature: "blueberries:300|raspberries:200", Kind: Sold, Count: 2,
		PriceSnapshot: 74000,
	})

	var b strings.Builder
	if err := l.EncodeLedger(&b); err != nil {
		t.Fatal(err)
	}
	back, err := DecodeLedger(strings.NewReader(b.String()))
	if err != nil {
		t.Fatal(err)
	}

	if len(back.harvests) != 1 || back.harvests[0] != l.harvests[0] {
		t.Errorf("harvests differ: %+v", back.harvests)
	}
	if len(back.bulkActions) != 1 || back.bulkActions[0] != l.bulkActions[0] {
		t.Errorf("bulk actions differ: %+v", back.bulkActions)
	}
	if len(back.packActions) != 1 || back.packActions[0] != l.packActions[0] {
		t.Errorf("package actions differ: %+v", back.packActions)
	}
	if len(back.packages) != 1 {
		t.Fatalf("packages differ: %+v", back.packages)
	}
	p := back.packages[0]
	if p.ID != "p1" || p.Mix.Signature() != "blueberries:300|raspberries:200" || p.CostPerBag != 37000 {
		t.Errorf("package differs: %+v", p)
	}
}

func TestDecodeLedgerRejectsUnknownRecord(t *testing.T) {
	_, err := DecodeLedger(strings.NewReader(`{"record":"mystery","id":"x"}` + "\n"))
	if err == nil {
		t.Error("unknown record type accepted")
	}
}

func TestDecodeLedgerSkipsBlankLines(t *testing.T) {
	input := "\n" + `{"record":"harvest","id":"h1","date":"2025-07-05","item":"blueberries","total_g":100,"fresh_g":0,"frozen_g":100}` + "\n\n"
	l, err := DecodeLedger(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(l.harvests) != 1 {
		t.Errorf("got %d harvests, want 1", len(l.harvests))
	}
}

func TestDecodeLedgerSorts(t *testing.T) {
	lines := `{"record":"harvest","id":"h2","date":"2025-07-06","item":"blueberries","total_g":100,"fresh_g":0,"frozen_g":100}
{"record":"harvest","id":"h1","date":"2025-07-05","item":"blueberries","total_g":100,"fresh_g":0,"frozen_g":100}
`
	l, err := DecodeLedger(strings.NewReader(lines))
	if err != nil {
		t.Fatal(err)
	}
	if l.harvests[0].ID != "h1" || l.harvests[1].ID != "h2" {
		t.Errorf("harvests not chronologically sorted: %v, %v", l.harvests[0].ID, l.harvests[1].ID)
	}
}

func TestPricesRoundTrip(t *testing.T) {
	p := Prices{Blueberries: {Fresh: 80000, Frozen: 70000}}
	var b strings.Builder
	if err := EncodePrices(&b, p); err != nil {
		t.Fatal(err)
	}
	back, err := DecodePrices(strings.NewReader(b.String()))
	if err != nil {
		t.Fatal(err)
	}
	if back.Price(Blueberries, Fresh) != 80000 || back.Price(Blueberries, Frozen) != 70000 {
		t.Errorf("prices differ: %+v", back)
	}
	// Missing catalog items are filled with zero entries.
	for item := range Items() {
		if _, ok := back[item]; !ok {
			t.Errorf("missing entry for %s", item)
		}
	}
}

func TestDecodePricesNormalizes(t *testing.T) {
	back, err := DecodePrices(strings.NewReader(`{"blueberries":{"fresh_pyg_kg":82300,"frozen_pyg_kg":0}}`))
	if err != nil {
		t.Fatal(err)
	}
	if got := back.Price(Blueberries, Fresh); got != 80000 {
		t.Errorf("unrounded stored price read as %d, want 80000", got)
	}
}
