package cartera

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// appendCost adds an in-memory record on the given day at noon local time.
func appendCost(t *testing.T, l *UsageLedger, day Date, cost string) {
	t.Helper()
	ts := time.Date(day.Year(), day.Month(), day.Day(), 12, 0, 0, 0, time.Local)
	err := l.Append(UsageRecord{Timestamp: ts, Cost: decimal.RequireFromString(cost)})
	if err != nil {
		t.Fatalf("Append(%s): %v", cost, err)
	}
}

func TestNewBudgetPolicy_Validation(t *testing.T) {
	if _, err := NewBudgetPolicy(decimal.NewFromInt(10), decimal.NewFromInt(5)); err != nil {
		t.Fatalf("NewBudgetPolicy(10, 5) returned an unexpected error: %v", err)
	}

	testCases := []struct {
		name         string
		total, daily string
	}{
		{"zero total", "0", "5"},
		{"negative total", "-1", "5"},
		{"zero daily", "10", "0"},
		{"negative daily", "10", "-0.5"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBudgetPolicy(decimal.RequireFromString(tc.total), decimal.RequireFromString(tc.daily))
			var conf *ConfigurationError
			if !errors.As(err, &conf) {
				t.Errorf("NewBudgetPolicy(%s, %s) error = %v, want *ConfigurationError", tc.total, tc.daily, err)
			}
		})
	}
}

func TestBudgetPolicy_Level_DailyRatioDominates(t *testing.T) {
	day := NewDate(2025, time.June, 10)
	ledger := NewUsageLedger()
	for _, c := range []string{"1.0", "1.5", "2.0"} {
		appendCost(t, ledger, day, c)
	}

	policy, err := NewBudgetPolicy(decimal.NewFromInt(10), decimal.NewFromInt(5))
	if err != nil {
		t.Fatalf("NewBudgetPolicy(): %v", err)
	}

	if got := ledger.DailyCost(day); !got.Equal(decimal.RequireFromString("4.5")) {
		t.Fatalf("DailyCost() = %s, want 4.5", got)
	}
	// 4.5 of 5.0 daily is 90%, more severe than 45% of the total limit.
	if got := policy.Level(ledger, day); got != LevelWarn80 {
		t.Errorf("Level() = %s, want WARN_80", got)
	}

	// One more 0.5 brings the day to exactly its limit.
	appendCost(t, ledger, day, "0.5")
	if got := policy.Level(ledger, day); got != LevelExceeded {
		t.Errorf("Level() after reaching the daily limit = %s, want EXCEEDED", got)
	}
}

func TestBudgetPolicy_InclusiveBoundaries(t *testing.T) {
	day := NewDate(2025, time.June, 10)
	policy, err := NewBudgetPolicy(decimal.NewFromInt(100), decimal.NewFromInt(100))
	if err != nil {
		t.Fatalf("NewBudgetPolicy(): %v", err)
	}

	testCases := []struct {
		spent string
		want  AlertLevel
	}{
		{"0", LevelOK},
		{"49.99", LevelOK},
		{"50", LevelWarn50}, // exactly 50.00% is WARN_50, not OK
		{"79.99", LevelWarn50},
		{"80", LevelWarn80},
		{"94.99", LevelWarn80},
		{"95", LevelWarn95},
		{"99.99", LevelWarn95},
		{"100", LevelExceeded},
		{"250", LevelExceeded},
	}
	for _, tc := range testCases {
		ledger := NewUsageLedger()
		appendCost(t, ledger, day, tc.spent)
		if got := policy.Level(ledger, day); got != tc.want {
			t.Errorf("Level() with %s spent = %s, want %s", tc.spent, got, tc.want)
		}
	}
}

// Appending a record never decreases the reported level.
func TestBudgetPolicy_Monotonic(t *testing.T) {
	day := NewDate(2025, time.June, 10)
	policy, err := NewBudgetPolicy(decimal.NewFromInt(10), decimal.NewFromInt(8))
	if err != nil {
		t.Fatalf("NewBudgetPolicy(): %v", err)
	}

	ledger := NewUsageLedger()
	previous := policy.Level(ledger, day)
	for range 20 {
		appendCost(t, ledger, day, "0.75")
		level := policy.Level(ledger, day)
		if level < previous {
			t.Fatalf("Level() decreased from %s to %s after an append", previous, level)
		}
		previous = level
	}
	if previous != LevelExceeded {
		t.Errorf("final Level() = %s, want EXCEEDED", previous)
	}
}

func TestBudgetPolicy_Status(t *testing.T) {
	day := NewDate(2025, time.June, 10)
	ledger := NewUsageLedger()
	appendCost(t, ledger, day.Add(-1), "2.0")
	appendCost(t, ledger, day, "1.0")

	policy, err := NewBudgetPolicy(decimal.NewFromInt(10), decimal.NewFromInt(5))
	if err != nil {
		t.Fatalf("NewBudgetPolicy(): %v", err)
	}

	status := policy.Status(ledger, day)
	if !status.TotalSpent.Equal(decimal.NewFromInt(3)) {
		t.Errorf("TotalSpent = %s, want 3", status.TotalSpent)
	}
	if !status.DailySpent.Equal(decimal.NewFromInt(1)) {
		t.Errorf("DailySpent = %s, want 1", status.DailySpent)
	}
	if !status.Remaining().Equal(decimal.NewFromInt(7)) {
		t.Errorf("Remaining() = %s, want 7", status.Remaining())
	}
	if !status.DailyRemaining().Equal(decimal.NewFromInt(4)) {
		t.Errorf("DailyRemaining() = %s, want 4", status.DailyRemaining())
	}
	if status.Level != LevelOK {
		t.Errorf("Level = %s, want OK", status.Level)
	}
}
