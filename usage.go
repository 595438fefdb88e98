package cartera

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// UsageRecord is one AI-assistant API call charged against the budget. Cost
// is denominated in USD, the ledger's accounting currency. Metadata is an
// opaque mapping (model name, token counts, ...) the engine never interprets;
// unknown keys survive a persistence round-trip.
type UsageRecord struct {
	Timestamp time.Time
	Cost      decimal.Decimal
	Metadata  map[string]string
}

// NewUsageRecord creates a record stamped now.
func NewUsageRecord(cost decimal.Decimal, metadata map[string]string) UsageRecord {
	return UsageRecord{Timestamp: time.Now(), Cost: cost, Metadata: metadata}
}

// UsageLedger is an append-only sequence of usage records. Append is the only
// mutator; records are never updated or removed, and every total is derived
// from the records on each query.
//
// A ledger opened with a path persists each append durably before returning.
// The zero-path ledger is memory-only, which is the seam tests use.
type UsageLedger struct {
	path    string
	records []UsageRecord
}

// NewUsageLedger creates an empty in-memory ledger.
func NewUsageLedger() *UsageLedger {
	return &UsageLedger{}
}

// OpenUsageLedger loads the ledger persisted at path, creating an empty
// file-backed ledger when the file does not exist yet.
func OpenUsageLedger(path string) (*UsageLedger, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return &UsageLedger{path: path}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open usage ledger %q: %w", path, err)
	}
	defer f.Close()

	records, err := DecodeUsageRecords(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode usage ledger %q: %w", path, err)
	}
	return &UsageLedger{path: path, records: records}, nil
}

// Append adds a record to the ledger. For a file-backed ledger the record is
// written and synced to disk before Append returns, so a crash cannot lose an
// acknowledged cost.
func (l *UsageLedger) Append(rec UsageRecord) error {
	if rec.Cost.IsNegative() {
		return fmt.Errorf("usage record cost %s is negative", rec.Cost)
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}

	if l.path != "" {
		f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("could not open usage ledger %q: %w", l.path, err)
		}
		defer f.Close()
		if err := EncodeUsageRecord(f, rec); err != nil {
			return fmt.Errorf("could not append to usage ledger %q: %w", l.path, err)
		}
		if err := f.Sync(); err != nil {
			return fmt.Errorf("could not sync usage ledger %q: %w", l.path, err)
		}
	}

	l.records = append(l.records, rec)
	return nil
}

// Len returns the number of records.
func (l *UsageLedger) Len() int { return len(l.records) }

// TotalCost sums the cost of every record.
func (l *UsageLedger) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for _, rec := range l.records {
		total = total.Add(rec.Cost)
	}
	return total
}

// DailyCost sums the cost of records whose timestamp falls on day, in the
// record's local calendar.
func (l *UsageLedger) DailyCost(day Date) decimal.Decimal {
	total := decimal.Zero
	for _, rec := range l.records {
		if DateOf(rec.Timestamp.Local()) == day {
			total = total.Add(rec.Cost)
		}
	}
	return total
}

// History returns records in append order. A non-zero since keeps only
// records at or after that instant.
func (l *UsageLedger) History(since time.Time) []UsageRecord {
	if since.IsZero() {
		return slices.Clone(l.records)
	}
	var out []UsageRecord
	for _, rec := range l.records {
		if !rec.Timestamp.Before(since) {
			out = append(out, rec)
		}
	}
	return out
}
