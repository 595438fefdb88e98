package cartera

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The persisted usage ledger is JSONL: one record per line, fields in a fixed
// order (timestamp, cost, then metadata keys sorted) so appends are stable and
// the file diffs cleanly. Metadata keys the engine does not know are carried
// through decode and encode untouched.

// EncodeUsageRecord writes one record as a single JSONL line.
func EncodeUsageRecord(w io.Writer, rec UsageRecord) error {
	var obj jsonObjectWriter
	obj.Append("timestamp", rec.Timestamp.Format(time.RFC3339))
	obj.Append("cost", rec.Cost)

	keys := make([]string, 0, len(rec.Metadata))
	for k := range rec.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		obj.Append(k, rec.Metadata[k])
	}

	line, err := obj.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", line)
	return err
}

// EncodeUsageRecords writes all records, one line each, in order.
func EncodeUsageRecords(w io.Writer, records []UsageRecord) error {
	for _, rec := range records {
		if err := EncodeUsageRecord(w, rec); err != nil {
			return err
		}
	}
	return nil
}

// DecodeUsageRecords reads a JSONL stream of usage records. Every key other
// than timestamp and cost lands in the record's metadata; scalar values that
// are not strings (token counts written by older versions, say) are kept as
// their literal text.
func DecodeUsageRecords(r io.Reader) ([]UsageRecord, error) {
	var records []UsageRecord
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue // Skip empty lines
		}

		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, fmt.Errorf("usage ledger line %d is not a JSON object: %w", line, err)
		}

		rec, err := decodeUsageFields(fields)
		if err != nil {
			return nil, fmt.Errorf("usage ledger line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func decodeUsageFields(fields map[string]json.RawMessage) (UsageRecord, error) {
	var rec UsageRecord

	tsRaw, ok := fields["timestamp"]
	if !ok {
		return rec, fmt.Errorf("missing timestamp")
	}
	var tsStr string
	if err := json.Unmarshal(tsRaw, &tsStr); err != nil {
		return rec, fmt.Errorf("invalid timestamp: %w", err)
	}
	ts, err := time.Parse(time.RFC3339, tsStr)
	if err != nil {
		return rec, fmt.Errorf("invalid timestamp %q: %w", tsStr, err)
	}
	rec.Timestamp = ts

	costRaw, ok := fields["cost"]
	if !ok {
		return rec, fmt.Errorf("missing cost")
	}
	if err := rec.Cost.UnmarshalJSON(costRaw); err != nil {
		return rec, fmt.Errorf("invalid cost %s: %w", costRaw, err)
	}
	if rec.Cost.IsNegative() {
		return rec, fmt.Errorf("negative cost %s", rec.Cost)
	}

	for k, v := range fields {
		if k == "timestamp" || k == "cost" {
			continue
		}
		if rec.Metadata == nil {
			rec.Metadata = make(map[string]string)
		}
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			// not a JSON string; keep the literal text
			s = strings.TrimSpace(string(v))
		}
		rec.Metadata[k] = s
	}
	return rec, nil
}
