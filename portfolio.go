package cartera

import (
	"iter"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// ReportingCurrency is the single currency all aggregates are expressed in.
const ReportingCurrency = COP

// Portfolio is an ordered, immutable collection of positions. It is rebuilt
// from freshly parsed rows on every read cycle; aggregation methods are pure
// functions of the positions and the supplied rate table.
type Portfolio struct {
	positions []Position
}

// NewPortfolio creates a portfolio preserving the insertion order of positions.
func NewPortfolio(positions ...Position) Portfolio {
	return Portfolio{positions: slices.Clone(positions)}
}

// Len returns the number of positions.
func (p Portfolio) Len() int { return len(p.positions) }

// Positions iterates over positions in insertion order.
func (p Portfolio) Positions() iter.Seq[Position] {
	return slices.Values(p.positions)
}

// TotalValue converts every position into the reporting currency and sums.
// A nil rate table means only the built-in USD→COP fallback is available.
func (p Portfolio) TotalValue(rates RateTable) (Money, error) {
	total := M(decimal.Zero, ReportingCurrency)
	for _, pos := range p.positions {
		converted, err := ConvertMoney(pos.Value(), ReportingCurrency, rates)
		if err != nil {
			return Money{}, err
		}
		total = total.Add(converted)
	}
	return total, nil
}

// AllocationBy groups positions by the given classifier, sums converted
// values per group, and expresses each group as a percentage of the total,
// rounded half-up to 2 decimals. When the grand total is zero every group
// reports 0 rather than failing on division.
func (p Portfolio) AllocationBy(key func(Position) string, rates RateTable) (map[string]decimal.Decimal, error) {
	groups := make(map[string]decimal.Decimal)
	grand := decimal.Zero
	for _, pos := range p.positions {
		converted, err := Convert(pos.Value().Amount(), pos.Currency(), ReportingCurrency, rates)
		if err != nil {
			return nil, err
		}
		k := key(pos)
		groups[k] = groups[k].Add(converted)
		grand = grand.Add(converted)
	}

	result := make(map[string]decimal.Decimal, len(groups))
	for k, v := range groups {
		if grand.IsZero() {
			result[k] = decimal.Zero
			continue
		}
		result[k] = v.Mul(hundred).Div(grand).Round(2)
	}
	return result, nil
}

// AllocationByPlatform breaks down the portfolio value per holding venue.
func (p Portfolio) AllocationByPlatform(rates RateTable) (map[string]decimal.Decimal, error) {
	return p.AllocationBy(Position.Platform, rates)
}

// AllocationByCurrency breaks down the portfolio value per denomination currency.
func (p Portfolio) AllocationByCurrency(rates RateTable) (map[string]decimal.Decimal, error) {
	return p.AllocationBy(Position.Currency, rates)
}

// AllocationByAssetType breaks down the portfolio value per asset class.
func (p Portfolio) AllocationByAssetType(rates RateTable) (map[string]decimal.Decimal, error) {
	return p.AllocationBy(Position.AssetType, rates)
}

// FilterByPlatform returns a new portfolio with only the positions held on
// the named platform (case-insensitive exact match). Idempotent and
// non-mutating.
func (p Portfolio) FilterByPlatform(name string) Portfolio {
	var filtered []Position
	for _, pos := range p.positions {
		if strings.EqualFold(pos.Platform(), name) {
			filtered = append(filtered, pos)
		}
	}
	return Portfolio{positions: filtered}
}

// PositionsInCurrency returns the positions denominated in code, order preserved.
func (p Portfolio) PositionsInCurrency(code string) []Position {
	var out []Position
	for _, pos := range p.positions {
		if pos.Currency() == code {
			out = append(out, pos)
		}
	}
	return out
}
