package cartera

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestUsageLedger_InMemory(t *testing.T) {
	ledger := NewUsageLedger()

	day := NewDate(2025, time.March, 3)
	appendCost(t, ledger, day, "0.01")
	appendCost(t, ledger, day, "0.02")
	appendCost(t, ledger, day.Add(1), "0.10")

	if got := ledger.TotalCost(); !got.Equal(decimal.RequireFromString("0.13")) {
		t.Errorf("TotalCost() = %s, want 0.13", got)
	}
	if got := ledger.DailyCost(day); !got.Equal(decimal.RequireFromString("0.03")) {
		t.Errorf("DailyCost(%s) = %s, want 0.03", day, got)
	}
	if got := ledger.DailyCost(day.Add(2)); !got.IsZero() {
		t.Errorf("DailyCost on an empty day = %s, want 0", got)
	}
}

func TestUsageLedger_RejectsNegativeCost(t *testing.T) {
	ledger := NewUsageLedger()
	err := ledger.Append(UsageRecord{Timestamp: time.Now(), Cost: decimal.RequireFromString("-0.01")})
	if err == nil {
		t.Fatal("Append() with a negative cost should have failed")
	}
	if ledger.Len() != 0 {
		t.Errorf("rejected record was kept, Len() = %d", ledger.Len())
	}
}

func TestUsageLedger_History(t *testing.T) {
	ledger := NewUsageLedger()
	base := time.Date(2025, time.March, 3, 10, 0, 0, 0, time.Local)
	for i := range 5 {
		err := ledger.Append(UsageRecord{
			Timestamp: base.Add(time.Duration(i) * time.Hour),
			Cost:      decimal.RequireFromString("0.01"),
			Metadata:  map[string]string{"call": string(rune('a' + i))},
		})
		if err != nil {
			t.Fatalf("Append(): %v", err)
		}
	}

	all := ledger.History(time.Time{})
	if len(all) != 5 {
		t.Fatalf("History() has %d records, want 5", len(all))
	}
	for i, rec := range all {
		if want := string(rune('a' + i)); rec.Metadata["call"] != want {
			t.Errorf("History()[%d] is call %q, want %q (append order)", i, rec.Metadata["call"], want)
		}
	}

	// since is inclusive
	since := base.Add(2 * time.Hour)
	recent := ledger.History(since)
	if len(recent) != 3 {
		t.Fatalf("History(since) has %d records, want 3", len(recent))
	}
	if recent[0].Metadata["call"] != "c" {
		t.Errorf("History(since)[0] is call %q, want c", recent[0].Metadata["call"])
	}
}

func TestUsageLedger_FileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usage.jsonl")

	ledger, err := OpenUsageLedger(path)
	if err != nil {
		t.Fatalf("OpenUsageLedger() on a fresh path: %v", err)
	}

	ts := time.Date(2025, time.March, 3, 9, 30, 0, 0, time.Local)
	records := []UsageRecord{
		{Timestamp: ts, Cost: decimal.RequireFromString("0.0123"), Metadata: map[string]string{
			"model":        "gemini-2.5-flash",
			"inputTokens":  "812",
			"outputTokens": "97",
		}},
		{Timestamp: ts.Add(time.Minute), Cost: decimal.RequireFromString("0.2")},
	}
	for _, rec := range records {
		if err := ledger.Append(rec); err != nil {
			t.Fatalf("Append(): %v", err)
		}
	}

	// A fresh open must see exactly what was appended.
	reopened, err := OpenUsageLedger(path)
	if err != nil {
		t.Fatalf("OpenUsageLedger() reopening: %v", err)
	}
	if reopened.Len() != len(records) {
		t.Fatalf("reopened ledger has %d records, want %d", reopened.Len(), len(records))
	}

	got := reopened.History(time.Time{})
	for i, rec := range got {
		if !rec.Cost.Equal(records[i].Cost) {
			t.Errorf("record %d cost = %s, want %s", i, rec.Cost, records[i].Cost)
		}
		if !rec.Timestamp.Equal(records[i].Timestamp) {
			t.Errorf("record %d timestamp = %s, want %s", i, rec.Timestamp, records[i].Timestamp)
		}
		for k, v := range records[i].Metadata {
			if rec.Metadata[k] != v {
				t.Errorf("record %d metadata[%q] = %q, want %q", i, k, rec.Metadata[k], v)
			}
		}
	}

	if !reopened.TotalCost().Equal(decimal.RequireFromString("0.2123")) {
		t.Errorf("TotalCost() after reload = %s, want 0.2123", reopened.TotalCost())
	}
}
