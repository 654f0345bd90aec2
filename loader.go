package berrytally

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DataVersion is the on-disk format version. Bump it when the layout below
// changes and add a migration in migrate.
const DataVersion = 1

// On-disk layout of a data directory: the event log, the price table and a
// version tag, each an independent file so a partial write can only ever lose
// one of them.
const (
	ledgerFile  = "berry.jsonl"
	pricesFile  = "prices.json"
	versionFile = "version"
)

// Load reads the ledger from a data directory. A missing directory or
// missing files yield an empty ledger: first launch needs no setup step.
func Load(dir string) (*Ledger, error) {
	if err := migrate(dir); err != nil {
		return nil, err
	}

	ledger := NewLedger()
	f, err := os.Open(filepath.Join(dir, ledgerFile))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// keep the empty ledger
	case err != nil:
		return nil, fmt.Errorf("could not open event log: %w", err)
	default:
		defer f.Close()
		ledger, err = DecodeLedger(f)
		if err != nil {
			return nil, fmt.Errorf("could not read event log: %w", err)
		}
	}

	pf, err := os.Open(filepath.Join(dir, pricesFile))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// keep the zeroed table
	case err != nil:
		return nil, fmt.Errorf("could not open price table: %w", err)
	default:
		defer pf.Close()
		prices, err := DecodePrices(pf)
		if err != nil {
			return nil, fmt.Errorf("could not read price table: %w", err)
		}
		ledger.prices = prices
	}
	return ledger, nil
}

// Save writes the whole ledger and price table back to the data directory.
// Files are written to a temporary name then renamed, so a failed write
// never truncates existing data.
func Save(dir string, l *Ledger) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create data directory: %w", err)
	}
	var log strings.Builder
	if err := l.EncodeLedger(&log); err != nil {
		return err
	}
	if err := writeFileAtomic(filepath.Join(dir, ledgerFile), []byte(log.String())); err != nil {
		return fmt.Errorf("could not write event log: %w", err)
	}
	var prices strings.Builder
	if err := EncodePrices(&prices, l.prices); err != nil {
		return err
	}
	if err := writeFileAtomic(filepath.Join(dir, pricesFile), []byte(prices.String())); err != nil {
		return fmt.Errorf("could not write price table: %w", err)
	}
	return writeFileAtomic(filepath.Join(dir, versionFile), []byte(strconv.Itoa(DataVersion)))
}

// migrate checks the stored data version and upgrades older layouts in
// place. There is no migration yet: version 1 is the first layout, and an
// unknown newer version is refused rather than misread.
func migrate(dir string) error {
	raw, err := os.ReadFile(filepath.Join(dir, versionFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not read data version: %w", err)
	}
	version, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil {
		return fmt.Errorf("invalid data version %q: %w", raw, err)
	}
	if version > DataVersion {
		return fmt.Errorf("data directory version %d is newer than supported version %d", version, DataVersion)
	}
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
