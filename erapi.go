package cartera

import (
	"fmt"
	"log"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// open.er-api.com publishes daily USD reference rates on a free tier; the
// daily() client keeps us at one request a day.
const erapiLatestUSD = "https://open.er-api.com/v6/latest/USD"

// FetchRates retrieves the current USD→COP rate and returns it as a rate
// table for valuation calls. On any transport or shape error it logs a
// warning and falls back to the built-in rate, so a report is always
// possible offline.
func FetchRates() RateTable {
	rate, err := fetchUSDCOP(daily())
	if err != nil {
		log.Printf("warning: could not fetch USD→COP rate, using fallback %s: %v", FallbackUSDCOP, err)
		rate = FallbackUSDCOP
	}
	return RateTable{{From: USD, To: COP}: rate}
}

/*
	{
	    "result": "success",
	    "base_code": "USD",
	    "rates": {
	        "USD": 1,
	        "COP": 4011.27,
	        ...
	    }
	}
*/
func fetchUSDCOP(client *http.Client) (decimal.Decimal, error) {
	var jobj any
	if err := jwget(client, erapiLatestUSD, &jobj); err != nil {
		return decimal.Zero, fmt.Errorf("error in wget %q: %w", erapiLatestUSD, err)
	}
	return extractCOPRate(jobj)
}

// extractCOPRate pulls $.rates.COP out of the er-api response object.
func extractCOPRate(jobj any) (decimal.Decimal, error) {
	jres, err := jsonpath.Get("$.result", jobj)
	if err != nil || jres != "success" {
		return decimal.Zero, fmt.Errorf("exchange rate service did not answer success: %v", jres)
	}

	path := "$.rates.COP"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error parsing %q: %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of 1 answer or a
	// single answer; keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return decimal.Zero, fmt.Errorf("error parsing %q: not a number: %v", path, jval)
	}
	rate := decimal.NewFromFloat(val)
	if !rate.IsPositive() {
		return decimal.Zero, &ConfigurationError{Setting: "fetched USD→COP rate", Value: rate.String()}
	}
	return rate, nil
}
