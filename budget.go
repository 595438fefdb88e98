package cartera

import (
	"github.com/shopspring/decimal"
)

// AlertLevel is the ordered severity of budget consumption.
type AlertLevel int

const (
	LevelOK AlertLevel = iota
	LevelWarn50
	LevelWarn80
	LevelWarn95
	LevelExceeded
)

func (l AlertLevel) String() string {
	switch l {
	case LevelOK:
		return "OK"
	case LevelWarn50:
		return "WARN_50"
	case LevelWarn80:
		return "WARN_80"
	case LevelWarn95:
		return "WARN_95"
	case LevelExceeded:
		return "EXCEEDED"
	default:
		return "unknown"
	}
}

// BudgetPolicy evaluates usage ledger totals against configured spending
// limits. The alert level is a pure classification of the total and daily
// ratios, recomputed fresh on every query: there is no stored state that
// could drift away from the ledger.
type BudgetPolicy struct {
	totalLimit decimal.Decimal
	dailyLimit decimal.Decimal
}

// NewBudgetPolicy creates a policy. Both limits must be strictly positive.
func NewBudgetPolicy(totalLimit, dailyLimit decimal.Decimal) (BudgetPolicy, error) {
	if !totalLimit.IsPositive() {
		return BudgetPolicy{}, &ConfigurationError{Setting: "total budget limit", Value: totalLimit.String()}
	}
	if !dailyLimit.IsPositive() {
		return BudgetPolicy{}, &ConfigurationError{Setting: "daily budget limit", Value: dailyLimit.String()}
	}
	return BudgetPolicy{totalLimit: totalLimit, dailyLimit: dailyLimit}, nil
}

// TotalLimit returns the lifetime spending limit.
func (p BudgetPolicy) TotalLimit() decimal.Decimal { return p.totalLimit }

// DailyLimit returns the per-day spending limit.
func (p BudgetPolicy) DailyLimit() decimal.Decimal { return p.dailyLimit }

// Level reports the more severe of the total and daily classifications for
// the given day. Boundaries are inclusive: exactly 50.00% of a limit is
// WARN_50, exactly 100% is EXCEEDED.
func (p BudgetPolicy) Level(ledger *UsageLedger, day Date) AlertLevel {
	total := classify(ledger.TotalCost(), p.totalLimit)
	daily := classify(ledger.DailyCost(day), p.dailyLimit)
	return max(total, daily)
}

// Status is a full budget report for one day.
type Status struct {
	Day        Date
	TotalSpent decimal.Decimal
	TotalLimit decimal.Decimal
	DailySpent decimal.Decimal
	DailyLimit decimal.Decimal
	Level      AlertLevel
}

// Remaining reports how much of the lifetime budget is left. It can be
// negative once the limit is exceeded.
func (s Status) Remaining() decimal.Decimal { return s.TotalLimit.Sub(s.TotalSpent) }

// DailyRemaining reports how much of today's budget is left.
func (s Status) DailyRemaining() decimal.Decimal { return s.DailyLimit.Sub(s.DailySpent) }

// Status derives the full budget report for the given day.
func (p BudgetPolicy) Status(ledger *UsageLedger, day Date) Status {
	return Status{
		Day:        day,
		TotalSpent: ledger.TotalCost(),
		TotalLimit: p.totalLimit,
		DailySpent: ledger.DailyCost(day),
		DailyLimit: p.dailyLimit,
		Level:      p.Level(ledger, day),
	}
}

var hundred = decimal.NewFromInt(100)

// classify maps spent/limit onto an alert level with inclusive lower bounds.
// The comparison is cross-multiplied so exact boundary values (4.5 of 9.0 is
// precisely 50%) classify without division rounding.
func classify(spent, limit decimal.Decimal) AlertLevel {
	scaled := spent.Mul(hundred)
	switch {
	case scaled.GreaterThanOrEqual(limit.Mul(hundred)):
		return LevelExceeded
	case scaled.GreaterThanOrEqual(limit.Mul(decimal.NewFromInt(95))):
		return LevelWarn95
	case scaled.GreaterThanOrEqual(limit.Mul(decimal.NewFromInt(80))):
		return LevelWarn80
	case scaled.GreaterThanOrEqual(limit.Mul(decimal.NewFromInt(50))):
		return LevelWarn50
	default:
		return LevelOK
	}
}
