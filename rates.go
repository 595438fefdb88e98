package cartera

import (
	"github.com/shopspring/decimal"
)

// Pair identifies a conversion from one currency to another.
type Pair struct {
	From, To string
}

// RateTable maps currency pairs to a positive multiplier: the value of one
// unit of From expressed in To. Callers supply a fresh table per call; a
// supplied table fully replaces the built-in default, it is never merged.
type RateTable map[Pair]decimal.Decimal

// FallbackUSDCOP is the engine's single built-in exchange rate, used as a
// last resort when no table entry covers USD→COP. Callers are expected to
// supply a live table for accuracy.
var FallbackUSDCOP = decimal.NewFromInt(4000)

// Convert expresses amount, denominated in from, in the to currency using the
// supplied table. Identity when from == to. When the exact pair USD→COP is
// requested and absent from the table, the built-in fallback applies; any
// other missing pair is a *MissingRateError. A non-positive table rate is a
// *ConfigurationError, never silently treated as 1.
func Convert(amount decimal.Decimal, from, to string, rates RateTable) (decimal.Decimal, error) {
	if from == to {
		return amount, nil
	}

	rate, ok := rates[Pair{From: from, To: to}]
	if !ok {
		if from == USD && to == COP {
			return amount.Mul(FallbackUSDCOP), nil
		}
		return decimal.Zero, &MissingRateError{From: from, To: to}
	}
	if !rate.IsPositive() {
		return decimal.Zero, &ConfigurationError{
			Setting: "rate " + from + "→" + to,
			Value:   rate.String(),
		}
	}
	return amount.Mul(rate), nil
}

// ConvertMoney is Convert for Money values; the result is denominated in to.
func ConvertMoney(m Money, to string, rates RateTable) (Money, error) {
	converted, err := Convert(m.Amount(), m.Currency(), to, rates)
	if err != nil {
		return Money{}, err
	}
	return M(converted, to), nil
}
