package cartera

import "fmt"

// ParseError reports a numeric string that could not be interpreted as an
// exact decimal amount.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse amount %q: %s", e.Input, e.Reason)
}

// InvalidCurrencyError reports a currency code outside the supported set.
type InvalidCurrencyError struct {
	Code string
}

func (e *InvalidCurrencyError) Error() string {
	return fmt.Sprintf("invalid currency %q: supported currencies are %s and %s", e.Code, COP, USD)
}

// MissingRateError reports a conversion for a currency pair absent from both
// the supplied rate table and the built-in fallback.
type MissingRateError struct {
	From, To string
}

func (e *MissingRateError) Error() string {
	return fmt.Sprintf("no exchange rate for %s→%s", e.From, e.To)
}

// ConfigurationError reports an invalid configuration value, such as a
// non-positive budget limit or exchange rate.
type ConfigurationError struct {
	Setting string
	Value   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s = %s must be positive", e.Setting, e.Value)
}
