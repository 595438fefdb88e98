package cartera

import (
	"fmt"
	"strings"
)

// DefaultAssetType is assumed when a row leaves the asset type blank: most
// holdings on Colombian platforms are collective investment funds.
const DefaultAssetType = "fund"

// Position is a single validated investment record. Positions are immutable:
// every instance that exists satisfies symbol and platform non-empty,
// currency in the supported set, and value non-negative.
type Position struct {
	symbol    string
	platform  string
	value     Money
	assetType string
}

// NewPosition builds a Position from one spreadsheet row. The currency match
// is case-insensitive and stored uppercase; rawValue goes through ParseAmount;
// assetType defaults to "fund" when blank.
//
// A malformed row is never silently dropped: the *ParseError or
// *InvalidCurrencyError is returned for the caller to decide between skipping
// and aborting.
func NewPosition(symbol, platform, currency, rawValue, assetType string) (Position, error) {
	symbol = strings.TrimSpace(symbol)
	platform = strings.TrimSpace(platform)
	if symbol == "" {
		return Position{}, fmt.Errorf("position has empty symbol")
	}
	if platform == "" {
		return Position{}, fmt.Errorf("position %q has empty platform", symbol)
	}

	code := strings.ToUpper(strings.TrimSpace(currency))
	if err := ValidateCurrency(code); err != nil {
		return Position{}, err
	}

	value, err := ParseAmount(rawValue)
	if err != nil {
		return Position{}, err
	}
	if value.IsNegative() {
		return Position{}, &ParseError{Input: rawValue, Reason: "negative position value"}
	}

	assetType = strings.TrimSpace(assetType)
	if assetType == "" {
		assetType = DefaultAssetType
	}

	return Position{
		symbol:    symbol,
		platform:  platform,
		value:     M(value, code),
		assetType: assetType,
	}, nil
}

// Symbol returns the asset identifier.
func (p Position) Symbol() string { return p.symbol }

// Platform returns the holding venue.
func (p Position) Platform() string { return p.platform }

// Currency returns the currency the position is denominated in.
func (p Position) Currency() string { return p.value.Currency() }

// Value returns the position's value in its own currency.
func (p Position) Value() Money { return p.value }

// AssetType returns the asset class tag.
func (p Position) AssetType() string { return p.assetType }

func (p Position) String() string {
	return fmt.Sprintf("%s@%s %s (%s)", p.symbol, p.platform, p.value, p.assetType)
}
