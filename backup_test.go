package berrytally

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestBackupRoundTrip(t *testing.T) {
	l := testLedger()
	day := NewDate(2025, time.July, 1)
	harvestOn(l, day, Blueberries, Frozen, 1800)
	bulkOn(l, day.Add(1), Blueberries, Frozen, Sold, 500, 70000)
	l.packages = append(l.packages, PackageRecord{
		ID: "p1", Date: day.Add(2), Product: Frozen, SizeGrams: 500, Count: 4,
		Mix: Mix{Blueberries: 300, Raspberries: 200}, CostPerBag: 37000,
	})

	var b bytes.Buffer
	if err := l.ExportBackup(&b); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), `"app": "berrytally"`) {
		t.Errorf("backup meta missing app name:\n%s", b.String())
	}

	restored := NewLedger()
	if err := restored.RestoreBackup(&b); err != nil {
		t.Fatal(err)
	}
	if len(restored.harvests) != 1 || len(restored.bulkActions) != 1 || len(restored.packages) != 1 {
		t.Errorf("restored collections: %d harvests, %d actions, %d packages",
			len(restored.harvests), len(restored.bulkActions), len(restored.packages))
	}
	if got := restored.prices.Price(Blueberries, Frozen); got != 70000 {
		t.Errorf("restored price = %d, want 70000", got)
	}
}

func TestRestoreReplacesWholesale(t *testing.T) {
	source := testLedger()
	harvestOn(source, NewDate(2025, time.July, 1), Blueberries, Frozen, 1000)
	var b bytes.Buffer
	if err := source.ExportBackup(&b); err != nil {
		t.Fatal(err)
	}

	target := testLedger()
	harvestOn(target, NewDate(2025, time.June, 1), Raspberries, Fresh, 9000)
	bulkOn(target, NewDate(2025, time.June, 2), Raspberries, Fresh, Sold, 1000, 90000)

	if err := target.RestoreBackup(&b); err != nil {
		t.Fatal(err)
	}
	if len(target.harvests) != 1 || target.harvests[0].Item != Blueberries {
		t.Errorf("pre-restore records survived: %+v", target.harvests)
	}
	if len(target.bulkActions) != 0 {
		t.Errorf("pre-restore actions survived: %+v", target.bulkActions)
	}
}

func TestRestoreRejectsMalformed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", "not json at all"},
		{"missing data", `{"meta":{"app":"berrytally","version":1}}`},
		{"newer version", `{"meta":{"version":99},"data":{}}`},
		{"malformed record", `{"meta":{"version":1},"data":{"harvests":[{"date":12345}]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := testLedger()
			harvestOn(l, NewDate(2025, time.July, 1), Blueberries, Frozen, 1000)

			err := l.RestoreBackup(strings.NewReader(tt.payload))
			if !errors.Is(err, ErrInvalidBackup) {
				t.Fatalf("err = %v, want ErrInvalidBackup", err)
			}
			if len(l.harvests) != 1 {
				t.Error("failed restore modified the ledger")
			}
		})
	}
}

func TestRestoreNotifiesMutation(t *testing.T) {
	source := testLedger()
	var b bytes.Buffer
	if err := source.ExportBackup(&b); err != nil {
		t.Fatal(err)
	}

	l := NewLedger()
	var called bool
	l.OnMutate(func() { called = true })
	if err := l.RestoreBackup(&b); err != nil {
		t.Fatal(err)
	}
	if !called {
		t.Error("restore did not fire the mutation hook")
	}
}
